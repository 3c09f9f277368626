package models

import (
	"context"

	"gorm.io/gorm"
)

type PaymentMethodsRepository struct {
	db *gorm.DB
}

func NewPaymentMethodsRepository(db *gorm.DB) *PaymentMethodsRepository {
	return &PaymentMethodsRepository{
		db: db,
	}
}

func (r *PaymentMethodsRepository) GetAllPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	if err := r.db.WithContext(ctx).Order("id").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *PaymentMethodsRepository) GetPaymentMethod(ctx context.Context, id uint) (*PaymentMethod, error) {
	var method PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, id).Error; err != nil {
		return nil, notFound(err, ErrPaymentMethodNotFound)
	}
	return &method, nil
}

func (r *PaymentMethodsRepository) GetPaymentMethodByDescription(ctx context.Context, description string) (*PaymentMethod, error) {
	var method PaymentMethod
	if err := r.db.WithContext(ctx).
		Where("description = ?", description).
		First(&method).Error; err != nil {
		return nil, notFound(err, ErrPaymentMethodNotFound)
	}
	return &method, nil
}

func (r *PaymentMethodsRepository) CreatePaymentMethod(ctx context.Context, method *PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if err := r.checkDescriptionFree(ctx, method.Description, nil); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(method).Error; err != nil {
		if isDuplicateKey(err) {
			return duplicateField("description", "payment method")
		}
		return err
	}
	return nil
}

func (r *PaymentMethodsRepository) UpdatePaymentMethod(ctx context.Context, method *PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	existing, err := r.GetPaymentMethod(ctx, method.ID)
	if err != nil {
		return err
	}
	if err := r.checkDescriptionFree(ctx, method.Description, method.ID); err != nil {
		return err
	}
	err = r.db.WithContext(ctx).
		Model(existing).
		Update("description", method.Description).Error
	if isDuplicateKey(err) {
		return duplicateField("description", "payment method")
	}
	return err
}

// DeletePaymentMethod removes a payment method no purchase has used.
// It returns ErrReferenced and leaves the row in place otherwise.
func (r *PaymentMethodsRepository) DeletePaymentMethod(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var method PaymentMethod
		if err := tx.First(&method, id).Error; err != nil {
			return notFound(err, ErrPaymentMethodNotFound)
		}

		var refs int64
		if err := tx.Model(&PurchasePaymentMethod{}).
			Where("payment_method_id = ?", id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrReferenced
		}

		if err := tx.Delete(&method).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrReferenced
			}
			return err
		}
		return nil
	})
}

func (r *PaymentMethodsRepository) checkDescriptionFree(ctx context.Context, description string, excludeKey any) error {
	taken, err := ExistsWithField(ctx, r.db, &PaymentMethod{}, "description", description, excludeKey)
	if err != nil {
		return err
	}
	if taken {
		return duplicateField("description", "payment method")
	}
	return nil
}
