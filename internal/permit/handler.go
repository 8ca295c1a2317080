package permit

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/permit-management/internal/auth"
	"github.com/frahmantamala/permit-management/internal/transport"
	"github.com/frahmantamala/permit-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(dto *CreatePermitDTO, requesterID int64) (*PermitView, error)
	GetByID(id int64) (*PermitView, error)
	List(status string, limit, offset int) ([]*PermitView, error)
	ListByStation(stationID int64) ([]*PermitView, error)
	ListByPerson(personID int64) ([]*PermitView, error)
	Approve(id int64, approverID int64) (*PermitView, error)
	Reject(id int64, approverID int64) (*PermitView, error)
	Attach(id int64, dto *AttachDTO) (*PermitView, error)
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreatePermitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Create(&dto, principal.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("permit created",
		"permit_id", p.ID,
		"control_number", p.ControlNumber,
		"requester_id", principal.ID)

	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid permit ID")
		return
	}

	p, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
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

	permits, err := h.Service.List(r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"permits": permits,
		"limit":   limit,
		"offset":  offset,
	})
}

// Approve handles PATCH /permits/{id}/approve. The approver is the
// authenticated user.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Approve)
}

// Reject handles PATCH /permits/{id}/reject.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Reject)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, fn func(int64, int64) (*PermitView, error)) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid permit ID")
		return
	}

	p, err := fn(id, principal.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("permit decided",
		"permit_id", p.ID,
		"status", p.Status,
		"approver_id", principal.ID)

	h.WriteJSON(w, http.StatusOK, p)
}

// Attach handles POST /permits/{id}/attach.
func (h *Handler) Attach(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid permit ID")
		return
	}

	var dto AttachDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Attach(id, &dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

// ListForStation handles GET /stations/{id}/permits.
func (h *Handler) ListForStation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid station ID")
		return
	}

	permits, err := h.Service.ListByStation(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"permits": permits})
}

// ListForPerson handles GET /people/{id}/permits.
func (h *Handler) ListForPerson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid person ID")
		return
	}

	permits, err := h.Service.ListByPerson(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"permits": permits})
}
