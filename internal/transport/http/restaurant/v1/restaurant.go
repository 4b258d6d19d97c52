package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/you-humble/restaurant-inventory/internal/converter"
	"github.com/you-humble/restaurant-inventory/internal/model"
	restaurantv1 "github.com/you-humble/restaurant-inventory/pkg/api/restaurant/v1"
)

type InventoryService interface {
	CreateItem(ctx context.Context, params model.CreateInventoryItemParams) (*model.InventoryItem, error)
	ListItems(ctx context.Context, filter model.InventoryFilter) ([]*model.InventoryItem, error)
}

type PurchaseOrderService interface {
	Create(ctx context.Context, supplier string) (*model.PurchaseOrder, error)
	OrderByID(ctx context.Context, id string) (*model.PurchaseOrder, error)
}

type ReportService interface {
	CostPerUnit(ctx context.Context) ([]model.CostPerUnitEntry, error)
}

type handler struct {
	inventory InventoryService
	orders    PurchaseOrderService
	reports   ReportService
	validate  *validator.Validate
}

func NewRestaurantHandler(
	inventory InventoryService,
	orders PurchaseOrderService,
	reports ReportService,
) *handler {
	return &handler{
		inventory: inventory,
		orders:    orders,
		reports:   reports,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/inventory", h.CreateInventoryItem)
	r.Get("/inventory", h.ListInventoryItems)
	r.Post("/purchase-orders", h.CreatePurchaseOrder)
	r.Get("/purchase-orders/{orderID}", h.GetPurchaseOrder)
	r.Get("/cost-per-unit", h.CostPerUnit)
}

func (h *handler) CreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed form body: %w", model.ErrValidation, err))
		return
	}

	form := restaurantv1.CreateInventoryItemForm{
		Name:     r.PostForm.Get("name"),
		Yield:    strings.TrimSpace(r.PostForm.Get("yield")),
		Unit:     r.PostForm.Get("unit"),
		Supplier: r.PostForm.Get("supplier"),
		Cost:     strings.TrimSpace(r.PostForm.Get("cost")),
		Quantity: strings.TrimSpace(r.PostForm.Get("quantity")),
	}
	if err := h.validate.Struct(form); err != nil {
		writeError(ctx, w, validationError(err))
		return
	}

	params, err := converter.FormToCreateInventoryItemParams(form)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.inventory.CreateItem(ctx, params)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.InventoryItemToAPI(item))
}

func (h *handler) ListInventoryItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter model.InventoryFilter
	if q := r.URL.Query(); q.Has("supplier") {
		supplier := q.Get("supplier")
		filter.Supplier = &supplier
	}

	items, err := h.inventory.ListItems(ctx, filter)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.InventoryItemsToAPI(items))
}

func (h *handler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed form body: %w", model.ErrValidation, err))
		return
	}
	form := restaurantv1.CreatePurchaseOrderForm{Supplier: r.PostForm.Get("supplier")}

	order, err := h.orders.Create(ctx, form.Supplier)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.PurchaseOrderToAPI(order))
}

func (h *handler) GetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.orders.OrderByID(ctx, chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.PurchaseOrderToAPI(order))
}

func (h *handler) CostPerUnit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.reports.CostPerUnit(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.CostPerUnitToAPI(entries))
}
