package database

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/Radmir1876/Zadaniedek1/models"
)

var (
	defaultPaymentMethods = []string{"Cash", "Card"}
	defaultCategories     = []string{"General"}
	defaultUsers          = []string{"admin"}
)

// Seed inserts the default payment methods, categories and users that are missing.
// Existing rows are left alone, so it is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB) error {
	methods := models.NewPaymentMethodsRepository(db)
	for _, description := range defaultPaymentMethods {
		_, err := methods.GetPaymentMethodByDescription(ctx, description)
		switch {
		case err == nil:
			slog.DebugContext(ctx, "payment method already exists", "description", description)
			continue
		case !errors.Is(err, models.ErrNotFound):
			return err
		}
		if err := methods.CreatePaymentMethod(ctx, &models.PaymentMethod{Description: description}); err != nil {
			return err
		}
		slog.InfoContext(ctx, "payment method seeded", "description", description)
	}

	categories := models.NewCategoriesRepository(db)
	for _, description := range defaultCategories {
		_, err := categories.GetCategoryByDescription(ctx, description)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, models.ErrNotFound):
			return err
		}
		if err := categories.CreateCategory(ctx, &models.Category{Description: description}); err != nil {
			return err
		}
		slog.InfoContext(ctx, "category seeded", "description", description)
	}

	users := models.NewUsersRepository(db)
	for _, username := range defaultUsers {
		_, err := users.GetUserByUsername(ctx, username)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, models.ErrNotFound):
			return err
		}
		if err := users.CreateUser(ctx, &models.User{Username: username}); err != nil {
			return err
		}
		slog.InfoContext(ctx, "user seeded", "username", username)
	}

	return nil
}
