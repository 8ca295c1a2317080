package personnel

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/permit-management/internal/transport"
	"github.com/frahmantamala/permit-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreatePerson(dto *CreatePersonDTO) (*PersonView, error)
	GetPerson(id int64) (*PersonView, error)
	ListPeople(limit, offset int) ([]*PersonView, error)
	UpdatePerson(id int64, dto *UpdatePersonDTO) (*PersonView, error)
	SetAllowed(id int64, allowed bool) (*PersonView, error)
	DeletePerson(id int64) error

	CreateContractor(dto *CreateContractorDTO) (*ContractorView, error)
	ListContractors() ([]*ContractorView, error)
	DeleteContractor(id int64) error
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

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var dto CreatePersonDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreatePerson(&dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid person ID")
		return
	}

	p, err := h.Service.GetPerson(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ListPeople(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	people, err := h.Service.ListPeople(limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"people": people,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid person ID")
		return
	}

	var dto UpdatePersonDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.UpdatePerson(id, &dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

// SetAllowed handles PATCH /people/{id}/allow.
func (h *Handler) SetAllowed(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid person ID")
		return
	}

	var dto SetAllowedDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.SetAllowed(id, dto.IsAllowed)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid person ID")
		return
	}
	if err := h.Service.DeletePerson(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateContractor(w http.ResponseWriter, r *http.Request) {
	var dto CreateContractorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.CreateContractor(&dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) ListContractors(w http.ResponseWriter, r *http.Request) {
	contractors, err := h.Service.ListContractors()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"contractors": contractors})
}

func (h *Handler) DeleteContractor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid contractor ID")
		return
	}
	if err := h.Service.DeleteContractor(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
