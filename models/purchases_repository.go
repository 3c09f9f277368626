package models

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchasesRepository stores orders together with their item and payment lines.
// Records are created by checkout and only queried afterwards.
type PurchasesRepository struct {
	db *gorm.DB
}

type PurchaseOrderFilters struct {
	UserID *uint
	Cart   *bool
}

func NewPurchasesRepository(db *gorm.DB) *PurchasesRepository {
	return &PurchasesRepository{
		db: db,
	}
}

func (r *PurchasesRepository) CreatePurchaseOrder(ctx context.Context, order *PurchaseOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if err := checkReference(ctx, r.db, &User{}, "user_id", order.UserID); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(&order.User, order.UserID).Error
}

func (r *PurchasesRepository) GetPurchaseOrder(ctx context.Context, id uint) (*PurchaseOrder, error) {
	var order PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Payments.PaymentMethod").
		First(&order, id).Error; err != nil {
		return nil, notFound(err, ErrPurchaseOrderNotFound)
	}
	return &order, nil
}

func (r *PurchasesRepository) ListPurchaseOrders(ctx context.Context, filters PurchaseOrderFilters) ([]PurchaseOrder, error) {
	query := r.db.WithContext(ctx).Preload("User")
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Cart != nil {
		query = query.Where("cart = ?", *filters.Cart)
	}

	var orders []PurchaseOrder
	if err := query.Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreatePurchaseItem stores a line of an order. An omitted total price is filled in
// as quantity times unit price.
func (r *PurchasesRepository) CreatePurchaseItem(ctx context.Context, item *PurchaseItem) error {
	if item.TotalPrice.IsZero() {
		item.TotalPrice = item.ExpectedTotal()
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if err := checkReference(ctx, r.db, &PurchaseOrder{}, "purchase_order_id", item.PurchaseOrderID); err != nil {
		return err
	}
	if err := checkReference(ctx, r.db, &Category{}, "category_id", item.CategoryID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *PurchasesRepository) GetPurchaseItem(ctx context.Context, id uint) (*PurchaseItem, error) {
	var item PurchaseItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err, ErrPurchaseItemNotFound)
	}
	return &item, nil
}

func (r *PurchasesRepository) CreatePurchasePaymentMethod(ctx context.Context, payment *PurchasePaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	if err := checkReference(ctx, r.db, &PurchaseOrder{}, "purchase_order_id", payment.PurchaseOrderID); err != nil {
		return err
	}
	if err := checkReference(ctx, r.db, &PaymentMethod{}, "payment_method_id", payment.PaymentMethodID); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(payment).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(&payment.PaymentMethod, payment.PaymentMethodID).Error
}

func (r *PurchasesRepository) GetPurchasePaymentMethod(ctx context.Context, id uint) (*PurchasePaymentMethod, error) {
	var payment PurchasePaymentMethod
	if err := r.db.WithContext(ctx).
		Preload("PaymentMethod").
		First(&payment, id).Error; err != nil {
		return nil, notFound(err, ErrPurchasePaymentNotFound)
	}
	return &payment, nil
}
