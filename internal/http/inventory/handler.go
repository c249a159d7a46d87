package inventory

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/inventory"
)

type Handler struct {
	svc *inventory.Service
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{svc: svc}
}

// StockRoutes mounts the stock endpoints. Stock only grows through purchases.
func (h *Handler) StockRoutes(r chi.Router) {
	r.Get("/", h.listStock)
	r.Delete("/{id}", h.deleteStock)
}

func (h *Handler) ArticleRoutes(r chi.Router) {
	r.Get("/", h.listArticles)
	r.Post("/", h.createArticle)
	r.Delete("/{id}", h.deleteArticle)
}

type stockResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Level    inventory.Level `json:"level"`
	AddedAt  time.Time       `json:"added_at"`
}

func (h *Handler) listStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListStock(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]stockResponse, len(items))
	for i, item := range items {
		resp[i] = stockResponse{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Level:    item.Level(),
			AddedAt:  item.AddedAt,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteStockItem(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type componentDTO struct {
	StockItemID   uuid.UUID       `json:"stock_item_id"`
	StockItemName string          `json:"stock_item_name,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
}

type createArticleRequest struct {
	Name       string         `json:"name"`
	Components []componentDTO `json:"components"`
}

type articleResponse struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Components []componentDTO `json:"components"`
}

func toArticleResponse(a *inventory.Article) articleResponse {
	components := make([]componentDTO, len(a.Components))
	for i, c := range a.Components {
		components[i] = componentDTO{
			StockItemID:   c.StockItemID,
			StockItemName: c.StockItemName,
			Quantity:      c.Quantity,
		}
	}

	return articleResponse{ID: a.ID, Name: a.Name, Components: components}
}

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.ListArticles(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]articleResponse, len(articles))
	for i, a := range articles {
		resp[i] = toArticleResponse(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := inventory.CreateArticleParams{Name: req.Name}
	for _, c := range req.Components {
		params.Components = append(params.Components, inventory.ComponentParams{
			StockItemID: c.StockItemID,
			Quantity:    c.Quantity,
		})
	}

	a, err := h.svc.CreateArticle(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toArticleResponse(a))
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteArticle(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
