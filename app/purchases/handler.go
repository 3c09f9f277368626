package purchases

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Radmir1876/Zadaniedek1/app/api"
	"github.com/Radmir1876/Zadaniedek1/models"
	"github.com/shopspring/decimal"
)

type PurchaseOrderResponse struct {
	ID        uint                            `json:"id"`
	Timestamp time.Time                       `json:"timestamp"`
	User      uint                            `json:"user"`
	Username  string                          `json:"username,omitempty"`
	Cart      bool                            `json:"cart"`
	Items     []PurchaseItemResponse          `json:"items,omitempty"`
	Payments  []PurchasePaymentMethodResponse `json:"payments,omitempty"`
}

type PurchaseItemResponse struct {
	ID            uint            `json:"id"`
	Barcode       string          `json:"barcode"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	Price         decimal.Decimal `json:"price"`
	Category      uint            `json:"category"`
	PurchaseOrder uint            `json:"purchase_order"`
	Quantity      decimal.Decimal `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

type PurchasePaymentMethodResponse struct {
	ID            uint            `json:"id"`
	PurchaseOrder uint            `json:"purchase_order"`
	PaymentMethod uint            `json:"payment_method"`
	Description   string          `json:"payment_method_description,omitempty"`
	Value         decimal.Decimal `json:"value"`
}

type PurchaseProvider interface {
	CreatePurchaseOrder(ctx context.Context, order *models.PurchaseOrder) error
	GetPurchaseOrder(ctx context.Context, id uint) (*models.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, filters models.PurchaseOrderFilters) ([]models.PurchaseOrder, error)
	CreatePurchaseItem(ctx context.Context, item *models.PurchaseItem) error
	GetPurchaseItem(ctx context.Context, id uint) (*models.PurchaseItem, error)
	CreatePurchasePaymentMethod(ctx context.Context, payment *models.PurchasePaymentMethod) error
	GetPurchasePaymentMethod(ctx context.Context, id uint) (*models.PurchasePaymentMethod, error)
}

type PurchaseHandler struct {
	repo PurchaseProvider
}

func NewPurchaseHandler(r PurchaseProvider) *PurchaseHandler {
	return &PurchaseHandler{repo: r}
}

type purchaseOrderInput struct {
	Timestamp *time.Time `json:"timestamp"`
	User      uint       `json:"user"`
	Cart      bool       `json:"cart"`
}

type purchaseItemInput struct {
	Barcode       string          `json:"barcode"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	Price         json.RawMessage `json:"price"`
	Category      uint            `json:"category"`
	PurchaseOrder uint            `json:"purchase_order"`
	Quantity      json.RawMessage `json:"quantity"`
	TotalPrice    json.RawMessage `json:"total_price"`
}

type purchasePaymentMethodInput struct {
	PurchaseOrder uint            `json:"purchase_order"`
	PaymentMethod uint            `json:"payment_method"`
	Value         json.RawMessage `json:"value"`
}

func orderResponse(o *models.PurchaseOrder) PurchaseOrderResponse {
	resp := PurchaseOrderResponse{
		ID:        o.ID,
		Timestamp: o.Timestamp,
		User:      o.UserID,
		Username:  o.User.Username,
		Cart:      o.Cart,
	}
	for i := range o.Items {
		resp.Items = append(resp.Items, itemResponse(&o.Items[i]))
	}
	for i := range o.Payments {
		resp.Payments = append(resp.Payments, paymentResponse(&o.Payments[i]))
	}
	return resp
}

func itemResponse(i *models.PurchaseItem) PurchaseItemResponse {
	return PurchaseItemResponse{
		ID:            i.ID,
		Barcode:       i.Barcode,
		Title:         i.Title,
		Description:   i.Description,
		Image:         i.Image,
		Price:         i.Price,
		Category:      i.CategoryID,
		PurchaseOrder: i.PurchaseOrderID,
		Quantity:      i.Quantity,
		TotalPrice:    i.TotalPrice,
	}
}

func paymentResponse(p *models.PurchasePaymentMethod) PurchasePaymentMethodResponse {
	return PurchasePaymentMethodResponse{
		ID:            p.ID,
		PurchaseOrder: p.PurchaseOrderID,
		PaymentMethod: p.PaymentMethodID,
		Description:   p.PaymentMethod.Description,
		Value:         p.Value,
	}
}

func (h *PurchaseHandler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var input purchaseOrderInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order := &models.PurchaseOrder{
		UserID: input.User,
		Cart:   input.Cart,
	}
	if input.Timestamp != nil {
		order.Timestamp = *input.Timestamp
	}

	if err := h.repo.CreatePurchaseOrder(r.Context(), order); err != nil {
		api.WriteError(w, r, err, "Purchase order not found", "Failed to create purchase order")
		return
	}
	api.CreatedResponse(w, orderResponse(order))
}

func (h *PurchaseHandler) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Purchase order not found")
		return
	}
	order, err := h.repo.GetPurchaseOrder(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, err, "Purchase order not found", "Failed to retrieve purchase order")
		return
	}
	api.OKResponse(w, orderResponse(order))
}

// HandleListOrders lists orders, optionally narrowed by ?user= and ?cart=.
func (h *PurchaseHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	var filters models.PurchaseOrderFilters

	if uStr := r.URL.Query().Get("user"); uStr != "" {
		if u, err := strconv.ParseUint(uStr, 10, 0); err == nil {
			id := uint(u)
			filters.UserID = &id
		}
	}
	if cStr := r.URL.Query().Get("cart"); cStr != "" {
		if c, err := strconv.ParseBool(cStr); err == nil {
			filters.Cart = &c
		}
	}

	orders, err := h.repo.ListPurchaseOrders(r.Context(), filters)
	if err != nil {
		api.WriteError(w, r, err, "Purchase order not found", "failed to fetch purchase orders")
		return
	}

	response := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		response[i] = orderResponse(&orders[i])
	}
	api.OKResponse(w, response)
}

func (h *PurchaseHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var input purchaseItemInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var decimals api.DecimalFields
	item := &models.PurchaseItem{
		Barcode: input.Barcode,
		ProductFields: models.ProductFields{
			Title:       input.Title,
			Description: input.Description,
			Image:       input.Image,
			Price:       decimals.Parse("price", input.Price, true),
		},
		PurchaseOrderID: input.PurchaseOrder,
		Quantity:        decimals.Parse("quantity", input.Quantity, true),
		TotalPrice:      decimals.Parse("total_price", input.TotalPrice, false),
		CategoryID:      input.Category,
	}

	err := decimals.Err()
	if err == nil {
		err = h.repo.CreatePurchaseItem(r.Context(), item)
	}
	if err != nil {
		api.WriteError(w, r, err, "Purchase item not found", "Failed to create purchase item")
		return
	}
	api.CreatedResponse(w, itemResponse(item))
}

func (h *PurchaseHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Purchase item not found")
		return
	}
	item, err := h.repo.GetPurchaseItem(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, err, "Purchase item not found", "Failed to retrieve purchase item")
		return
	}
	api.OKResponse(w, itemResponse(item))
}

func (h *PurchaseHandler) HandleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var input purchasePaymentMethodInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var decimals api.DecimalFields
	payment := &models.PurchasePaymentMethod{
		PurchaseOrderID: input.PurchaseOrder,
		PaymentMethodID: input.PaymentMethod,
		Value:           decimals.Parse("value", input.Value, true),
	}

	err := decimals.Err()
	if err == nil {
		err = h.repo.CreatePurchasePaymentMethod(r.Context(), payment)
	}
	if err != nil {
		api.WriteError(w, r, err, "Purchase payment method not found", "Failed to create purchase payment method")
		return
	}
	api.CreatedResponse(w, paymentResponse(payment))
}

func (h *PurchaseHandler) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Purchase payment method not found")
		return
	}
	payment, err := h.repo.GetPurchasePaymentMethod(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, err, "Purchase payment method not found", "Failed to retrieve purchase payment method")
		return
	}
	api.OKResponse(w, paymentResponse(payment))
}
