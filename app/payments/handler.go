package payments

import (
	"context"
	"net/http"

	"github.com/Radmir1876/Zadaniedek1/app/api"
	"github.com/Radmir1876/Zadaniedek1/models"
)

type PaymentMethodResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
}

type PaymentMethodProvider interface {
	GetAllPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id uint) (*models.PaymentMethod, error)
	GetPaymentMethodByDescription(ctx context.Context, description string) (*models.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id uint) error
}

type PaymentMethodHandler struct {
	repo PaymentMethodProvider
}

func NewPaymentMethodHandler(r PaymentMethodProvider) *PaymentMethodHandler {
	return &PaymentMethodHandler{repo: r}
}

type paymentMethodInput struct {
	Description string `json:"description"`
}

func toResponse(m *models.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{ID: m.ID, Description: m.Description}
}

func (h *PaymentMethodHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	methods, err := h.repo.GetAllPaymentMethods(r.Context())
	if err != nil {
		api.WriteError(w, r, err, "Payment method not found", "failed to fetch payment methods")
		return
	}

	response := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		response[i] = toResponse(&methods[i])
	}
	api.OKResponse(w, response)
}

func (h *PaymentMethodHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	method, err := h.repo.GetPaymentMethodByDescription(r.Context(), r.PathValue("description"))
	if err != nil {
		api.WriteError(w, r, err, "Payment method not found", "Failed to retrieve payment method")
		return
	}
	api.OKResponse(w, toResponse(method))
}

func (h *PaymentMethodHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input paymentMethodInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	method := &models.PaymentMethod{Description: input.Description}
	if err := h.repo.CreatePaymentMethod(r.Context(), method); err != nil {
		api.WriteError(w, r, err, "Payment method not found", "Failed to create payment method")
		return
	}
	api.CreatedResponse(w, toResponse(method))
}

func (h *PaymentMethodHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Payment method not found")
		return
	}

	var input paymentMethodInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	method := &models.PaymentMethod{ID: id, Description: input.Description}
	if err := h.repo.UpdatePaymentMethod(r.Context(), method); err != nil {
		api.WriteError(w, r, err, "Payment method not found", "Failed to update payment method")
		return
	}
	api.OKResponse(w, toResponse(method))
}

func (h *PaymentMethodHandler) HandleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Payment method not found")
		return
	}
	method, err := h.repo.GetPaymentMethod(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, err, "Payment method not found", "Failed to retrieve payment method")
		return
	}
	api.ConfirmDelete(w, method)
}

// HandleDelete answers 409 while purchases still reference the method.
func (h *PaymentMethodHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Payment method not found")
		return
	}
	if err := h.repo.DeletePaymentMethod(r.Context(), id); err != nil {
		api.WriteError(w, r, err, "Payment method not found", "Failed to delete payment method")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
