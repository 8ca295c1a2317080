package station

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/permit-management/internal/transport"
	"github.com/frahmantamala/permit-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateMarket(dto *CreateMarketDTO) (*MarketView, error)
	ListMarkets() ([]*MarketView, error)
	DeleteMarket(id int64) error

	CreateRegion(dto *CreateRegionDTO) (*RegionView, error)
	ListRegions() ([]*RegionView, error)
	DeleteRegion(id int64) error

	CreateStation(dto *CreateStationDTO) (*StationView, error)
	GetStation(id int64) (*StationView, error)
	ListStations(nameFilter string) ([]*StationView, error)
	UpdateStation(id int64, dto *UpdateStationDTO) (*StationView, error)
	DeleteStation(id int64) error

	AddContact(stationID int64, dto *CreateContactDTO) (*ContactView, error)
	DeleteContact(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *Handler) CreateMarket(w http.ResponseWriter, r *http.Request) {
	var dto CreateMarketDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.Service.CreateMarket(&dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) ListMarkets(w http.ResponseWriter, r *http.Request) {
	markets, err := h.Service.ListMarkets()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"markets": markets})
}

func (h *Handler) DeleteMarket(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid market ID")
		return
	}
	if err := h.Service.DeleteMarket(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateRegion(w http.ResponseWriter, r *http.Request) {
	var dto CreateRegionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rg, err := h.Service.CreateRegion(&dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, rg)
}

func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.Service.ListRegions()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"regions": regions})
}

func (h *Handler) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid region ID")
		return
	}
	if err := h.Service.DeleteRegion(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var dto CreateStationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.Service.CreateStation(&dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, st)
}

func (h *Handler) GetStation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid station ID")
		return
	}

	st, err := h.Service.GetStation(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Service.ListStations(r.URL.Query().Get("name"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"stations": stations})
}

func (h *Handler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid station ID")
		return
	}

	var dto UpdateStationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.Service.UpdateStation(id, &dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid station ID")
		return
	}
	if err := h.Service.DeleteStation(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddContact(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid station ID")
		return
	}

	var dto CreateContactDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.AddContact(id, &dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid contact ID")
		return
	}
	if err := h.Service.DeleteContact(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
