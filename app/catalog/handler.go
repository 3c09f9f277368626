package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Radmir1876/Zadaniedek1/app/api"
	"github.com/Radmir1876/Zadaniedek1/models"
	"github.com/shopspring/decimal"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
}

type Product struct {
	Barcode     string          `json:"barcode"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
}

type ProductProvider interface {
	GetFilteredProducts(ctx context.Context, offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, slug string, changes *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, slug string) error
}

type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

// productInput is the editable part of a product. The slug is never accepted from
// clients; it is generated on creation.
type productInput struct {
	Barcode     string          `json:"barcode"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       json.RawMessage `json:"price"`
	Category    uint            `json:"category"`
}

func (in productInput) toModel() (*models.Product, error) {
	var decimals api.DecimalFields
	price := decimals.Parse("price", in.Price, true)
	if err := decimals.Err(); err != nil {
		return nil, err
	}
	return &models.Product{
		Barcode: in.Barcode,
		ProductFields: models.ProductFields{
			Title:       in.Title,
			Description: in.Description,
			Image:       in.Image,
			Price:       price,
		},
		CategoryID: in.Category,
	}, nil
}

func toResponse(p *models.Product) Product {
	return Product{
		Barcode:     p.Barcode,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Category: Category{
			ID:          p.Category.ID,
			Description: p.Category.Description,
		},
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	// Parse filters
	var filters models.ProductFilters

	if cStr := r.URL.Query().Get("category"); cStr != "" {
		if c, err := strconv.ParseUint(cStr, 10, 0); err == nil {
			id := uint(c)
			filters.CategoryID = &id
		}
	}

	if priceStr := r.URL.Query().Get("price_lt"); priceStr != "" {
		if val, err := decimal.NewFromString(priceStr); err == nil {
			filters.PriceLessThan = &val
		}
	}

	res, total, err := h.repo.GetFilteredProducts(r.Context(), offset, limit, filters)
	if err != nil {
		api.WriteError(w, r, err, "Product not found", "failed to get products")
		return
	}

	products := make([]Product, len(res))
	for i := range res {
		products[i] = toResponse(&res[i])
	}

	api.OKResponse(w, Response{
		Total:    int(total),
		Products: products,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		api.WriteError(w, r, err, "Product not found", "Failed to retrieve product")
		return
	}
	api.OKResponse(w, toResponse(product))
}

// HandleLookup finds a product by barcode.
func (h *CatalogHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetByBarcode(r.Context(), r.PathValue("barcode"))
	if err != nil {
		api.WriteError(w, r, err, "Product not found", "Failed to retrieve product")
		return
	}
	api.OKResponse(w, toResponse(product))
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input productInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, err := input.toModel()
	if err == nil {
		err = h.repo.CreateProduct(r.Context(), product)
	}
	if err != nil {
		api.WriteError(w, r, err, "Product not found", "Failed to create product")
		return
	}

	// Reload to return the category alongside the generated slug.
	created, err := h.repo.GetByBarcode(r.Context(), product.Barcode)
	if err != nil {
		created = product
	}
	api.CreatedResponse(w, toResponse(created))
}

func (h *CatalogHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var input productInput
	if err := api.DecodeJSON(r, &input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	changes, err := input.toModel()
	if err != nil {
		api.WriteError(w, r, err, "Product not found", "Failed to update product")
		return
	}

	updated, err := h.repo.UpdateProduct(r.Context(), r.PathValue("slug"), changes)
	if err != nil {
		api.WriteError(w, r, err, "Product not found", "Failed to update product")
		return
	}
	api.OKResponse(w, toResponse(updated))
}

func (h *CatalogHandler) HandleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		api.WriteError(w, r, err, "Product not found", "Failed to retrieve product")
		return
	}
	api.ConfirmDelete(w, product)
}

func (h *CatalogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteProduct(r.Context(), r.PathValue("slug")); err != nil {
		api.WriteError(w, r, err, "Product not found", "Failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
