package models

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxCreateAttempts bounds how often CreateProduct regenerates a slug that lost an
// insert race against a concurrent request.
const maxCreateAttempts = 3

// SlugGenerator picks the slug of a product that is about to be created.
// exists reports whether a candidate is already taken.
type SlugGenerator interface {
	Generate(ctx context.Context, title string, exists func(ctx context.Context, candidate string) (bool, error)) (string, error)
}

type ProductsRepository struct {
	db    *gorm.DB
	slugs SlugGenerator
}

type ProductFilters struct {
	CategoryID    *uint
	PriceLessThan *decimal.Decimal
}

func NewProductsRepository(db *gorm.DB, slugs SlugGenerator) *ProductsRepository {
	return &ProductsRepository{
		db:    db,
		slugs: slugs,
	}
}

func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("barcode").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetFilteredProducts(ctx context.Context, offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.WithContext(ctx).Model(&Product{})

	// Filter
	if filters.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filters.CategoryID)
	}
	if filters.PriceLessThan != nil {
		query = query.Where("products.price < ?", *filters.PriceLessThan)
	}
	query = query.Session(&gorm.Session{})

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	if err := query.
		Preload("Category").
		Order("products.barcode").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductsRepository) GetByBarcode(ctx context.Context, barcode string) (*Product, error) {
	return r.getBy(ctx, "barcode", barcode)
}

func (r *ProductsRepository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	return r.getBy(ctx, "slug", slug)
}

func (r *ProductsRepository) getBy(ctx context.Context, column, value string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		First(&product).Error; err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	return &product, nil
}

// SlugExists reports whether a product already uses slug.
func (r *ProductsRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return ExistsWithField(ctx, r.db, &Product{}, "slug", slug, nil)
}

// CreateProduct validates and inserts product. A product without a slug gets one
// generated from its title right before the insert; a slug that was taken between the
// check and the insert is regenerated.
func (r *ProductsRepository) CreateProduct(ctx context.Context, product *Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if err := checkReference(ctx, r.db, &Category{}, "category_id", product.CategoryID); err != nil {
		return err
	}
	if err := r.checkBarcodeFree(ctx, product.Barcode, nil); err != nil {
		return err
	}

	explicit := product.Slug != ""
	if explicit {
		taken, err := r.SlugExists(ctx, product.Slug)
		if err != nil {
			return err
		}
		if taken {
			return duplicateField("slug", "product")
		}
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		if !explicit {
			slug, err := r.slugs.Generate(ctx, product.Title, r.SlugExists)
			if err != nil {
				return fmt.Errorf("generate slug: %w", err)
			}
			product.Slug = slug
		}

		err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			return err
		}
		if err := r.checkBarcodeFree(ctx, product.Barcode, nil); err != nil {
			return err
		}
		if explicit {
			return duplicateField("slug", "product")
		}
		slog.WarnContext(ctx, "product slug taken concurrently, regenerating",
			"slug", product.Slug,
			"barcode", product.Barcode,
			"attempt", attempt,
		)
	}

	product.Slug = ""
	return ErrSlugConflict
}

// UpdateProduct applies the editable fields of changes to the product addressed by slug.
// The slug itself never changes once assigned.
func (r *ProductsRepository) UpdateProduct(ctx context.Context, slug string, changes *Product) (*Product, error) {
	current, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	changes.Slug = current.Slug
	if err := changes.Validate(); err != nil {
		return nil, err
	}
	if err := checkReference(ctx, r.db, &Category{}, "category_id", changes.CategoryID); err != nil {
		return nil, err
	}
	if changes.Barcode != current.Barcode {
		if err := r.checkBarcodeFree(ctx, changes.Barcode, current.Barcode); err != nil {
			return nil, err
		}
	}

	err = r.db.WithContext(ctx).
		Model(&Product{}).
		Where("barcode = ?", current.Barcode).
		Updates(map[string]any{
			"barcode":     changes.Barcode,
			"title":       changes.Title,
			"description": changes.Description,
			"image":       changes.Image,
			"price":       changes.Price,
			"category_id": changes.CategoryID,
		}).Error
	if err != nil {
		if isDuplicateKey(err) {
			return nil, duplicateField("barcode", "product")
		}
		return nil, err
	}

	return r.GetBySlug(ctx, current.Slug)
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductsRepository) checkBarcodeFree(ctx context.Context, barcode string, excludeKey any) error {
	taken, err := ExistsWithField(ctx, r.db, &Product{}, "barcode", barcode, excludeKey)
	if err != nil {
		return err
	}
	if taken {
		return duplicateField("barcode", "product")
	}
	return nil
}
