package categories

import (
	"context"
	"net/http"

	"github.com/Radmir1876/Zadaniedek1/app/api"
	"github.com/Radmir1876/Zadaniedek1/models"
)

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
}

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	GetCategoryByDescription(ctx context.Context, description string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

type categoryInput struct {
	Description string `json:"description"`
}

func toResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Description: c.Description,
	}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories(r.Context())
	if err != nil {
		api.WriteError(w, r, err, "Category not found", "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i := range categories {
		response[i] = toResponse(&categories[i])
	}
	api.OKResponse(w, response)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	category, ok := h.lookupByID(w, r)
	if !ok {
		return
	}
	api.OKResponse(w, toResponse(category))
}

// HandleLookup finds a category by its description.
func (h *CategoryHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	category, err := h.repo.GetCategoryByDescription(r.Context(), r.PathValue("description"))
	if err != nil {
		api.WriteError(w, r, err, "Category not found", "Failed to retrieve category")
		return
	}
	api.OKResponse(w, toResponse(category))
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input categoryInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	category := &models.Category{
		Description: input.Description,
	}

	if err := h.repo.CreateCategory(r.Context(), category); err != nil {
		api.WriteError(w, r, err, "Category not found", "Failed to create category")
		return
	}

	api.CreatedResponse(w, toResponse(category))
}

func (h *CategoryHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}

	var input categoryInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	category := &models.Category{ID: id, Description: input.Description}
	if err := h.repo.UpdateCategory(r.Context(), category); err != nil {
		api.WriteError(w, r, err, "Category not found", "Failed to update category")
		return
	}
	api.OKResponse(w, toResponse(category))
}

// HandleConfirmDelete is the first step of the delete flow.
func (h *CategoryHandler) HandleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	category, ok := h.lookupByID(w, r)
	if !ok {
		return
	}
	api.ConfirmDelete(w, category)
}

// HandleDelete removes the category and, with it, its products.
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}
	if err := h.repo.DeleteCategory(r.Context(), id); err != nil {
		api.WriteError(w, r, err, "Category not found", "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) lookupByID(w http.ResponseWriter, r *http.Request) (*models.Category, bool) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return nil, false
	}
	category, err := h.repo.GetCategory(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, err, "Category not found", "Failed to retrieve category")
		return nil, false
	}
	return category, true
}
