package matching

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/suggest", h.suggest)
	r.Post("/", h.learn)
	r.Delete("/{id}", h.forget)
}

type aliasResponse struct {
	ID        uuid.UUID `json:"id"`
	Pattern   string    `json:"pattern"`
	Article   string    `json:"article"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(a *matching.Alias) aliasResponse {
	return aliasResponse{ID: a.ID, Pattern: a.Pattern, Article: a.Article, CreatedAt: a.CreatedAt}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	aliases, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]aliasResponse, len(aliases))
	for i, a := range aliases {
		resp[i] = toResponse(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type suggestResponse struct {
	Raw     string `json:"raw"`
	Article string `json:"article"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("raw")
	if raw == "" {
		http.Error(w, "raw query parameter is required", http.StatusBadRequest)
		return
	}

	article, err := h.svc.Suggest(r.Context(), raw)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, suggestResponse{Raw: raw, Article: article})
}

type learnRequest struct {
	Pattern string `json:"pattern"`
	Article string `json:"article"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Learn(r.Context(), matching.LearnParams{Pattern: req.Pattern, Article: req.Article})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) forget(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Forget(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
