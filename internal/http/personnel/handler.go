package personnel

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
)

type Handler struct {
	svc *personnel.Service
}

func NewHandler(svc *personnel.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.hire)
	r.Get("/", h.list)
	r.Get("/removed", h.listRemoved)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.remove)
	r.Post("/{id}/restore", h.restore)
	r.Delete("/{id}/purge", h.purge)
	r.Post("/{id}/advances", h.addAdvance)
	r.Post("/{id}/presences", h.addPresence)
	r.Put("/{id}/presences/{date}", h.editPresence)
	r.Delete("/{id}/presences/{date}", h.deletePresence)
}

type hireRequest struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Role               string `json:"role"`
	SalaryPerDay       int64  `json:"salary_per_day"`
	FixedMonthlySalary *int64 `json:"fixed_monthly_salary,omitempty"`
	SickAllowance      *int   `json:"sick_allowance,omitempty"`
}

func (h *Handler) hire(w http.ResponseWriter, r *http.Request) {
	var req hireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Hire(r.Context(), personnel.HireParams{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Role:               req.Role,
		SalaryPerDay:       req.SalaryPerDay,
		FixedMonthlySalary: req.FixedMonthlySalary,
		SickAllowance:      req.SickAllowance,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(employees))
}

func (h *Handler) listRemoved(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.ListRemoved(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(employees))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type updateRequest struct {
	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	Role               *string `json:"role,omitempty"`
	SalaryPerDay       *int64  `json:"salary_per_day,omitempty"`
	FixedMonthlySalary *int64  `json:"fixed_monthly_salary,omitempty"`
	SickAllowance      *int    `json:"sick_allowance,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Update(r.Context(), id, personnel.UpdateParams{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Role:               req.Role,
		SalaryPerDay:       req.SalaryPerDay,
		FixedMonthlySalary: req.FixedMonthlySalary,
		SickAllowance:      req.SickAllowance,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Restore(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) purge(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Purge(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type advanceRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) addAdvance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.AddAdvance(r.Context(), id, req.Amount)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type presenceRequest struct {
	Date   string           `json:"date"`
	Status personnel.Status `json:"status"`
}

func (h *Handler) addPresence(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req presenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	e, err := h.svc.AddPresence(r.Context(), id, date, req.Status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) editPresence(w http.ResponseWriter, r *http.Request) {
	id, date, ok := presenceKey(w, r)
	if !ok {
		return
	}

	var req presenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.EditPresence(r.Context(), id, date, req.Status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) deletePresence(w http.ResponseWriter, r *http.Request) {
	id, date, ok := presenceKey(w, r)
	if !ok {
		return
	}

	e, err := h.svc.DeletePresence(r.Context(), id, date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func presenceKey(w http.ResponseWriter, r *http.Request) (uuid.UUID, time.Time, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, time.Time{}, false
	}

	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return uuid.Nil, time.Time{}, false
	}

	return id, date, true
}
