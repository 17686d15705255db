package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/upkeep/internal/domain/complaint"
	"github.com/rpggio/upkeep/internal/domain/resident"
)

// ComplaintService defines the complaint operations the transport consumes.
type ComplaintService interface {
	Create(ctx context.Context, req complaint.CreateRequest) (*complaint.Complaint, error)
	List(ctx context.Context, q complaint.ListQuery) ([]complaint.Complaint, error)
	Get(ctx context.Context, id int64) (*complaint.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*complaint.Complaint, error)
}

// ResidentService defines the resident operations the transport consumes.
type ResidentService interface {
	Get(ctx context.Context, id int64) (*resident.Resident, error)
	ListAll(ctx context.Context) ([]resident.Resident, error)
}

// Handler is the thin HTTP layer. It binds JSON to typed inputs, delegates
// to the domain services, and translates typed failures to status codes; no
// business logic lives here.
type Handler struct {
	complaints ComplaintService
	residents  ResidentService
	logger     *slog.Logger
}

// NewHandler constructs the transport handler with its dependencies.
func NewHandler(complaints ComplaintService, residents ResidentService, logger *slog.Logger) *Handler {
	return &Handler{
		complaints: complaints,
		residents:  residents,
		logger:     logger,
	}
}

// Routes wires all public endpoints.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/complaints", h.handleCreateComplaint)
		r.Get("/complaints", h.handleListComplaints)
		r.Get("/complaints/{id}", h.handleGetComplaint)
		r.Put("/complaints/{id}/status", h.handleUpdateStatus)

		r.Get("/residents", h.handleListResidents)
		r.Get("/residents/{id}", h.handleGetResident)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type createComplaintRequest struct {
	ResidentID   int64    `json:"resident_id"`
	Subject      string   `json:"subject"`
	Description  string   `json:"description"`
	Priority     string   `json:"priority,omitempty"`
	Attachments  []string `json:"attachments,omitempty"`
	LocationNote string   `json:"location_note,omitempty"`
}

func (h *Handler) handleCreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req createComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	c, err := h.complaints.Create(r.Context(), complaint.CreateRequest{
		ResidentID:   req.ResidentID,
		Subject:      req.Subject,
		Description:  req.Description,
		Priority:     req.Priority,
		Attachments:  req.Attachments,
		LocationNote: req.LocationNote,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListComplaints(w http.ResponseWriter, r *http.Request) {
	q := complaint.ListQuery{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}

	if raw := r.URL.Query().Get("residentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "residentId must be an integer"})
			return
		}
		q.ResidentID = &id
	}

	complaints, err := h.complaints.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if complaints == nil {
		complaints = []complaint.Complaint{}
	}

	writeJSON(w, http.StatusOK, complaints)
}

func (h *Handler) handleGetComplaint(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	c, err := h.complaints.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	c, err := h.complaints.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleListResidents(w http.ResponseWriter, r *http.Request) {
	residents, err := h.residents.ListAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if residents == nil {
		residents = []resident.Resident{}
	}

	writeJSON(w, http.StatusOK, residents)
}

func (h *Handler) handleGetResident(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	res, err := h.residents.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
