package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExistsWithField reports whether any row of model's table has field equal to value.
// field is a Go field name or column name of model. When excludeKey is not nil, the row
// whose primary key equals excludeKey is ignored, so updates do not collide with themselves.
func ExistsWithField(ctx context.Context, db *gorm.DB, model any, field string, value any, excludeKey any) (bool, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return false, fmt.Errorf("parse model: %w", err)
	}

	f := stmt.Schema.LookUpField(field)
	if f == nil || f.DBName == "" {
		return false, fmt.Errorf("%s has no column %q", stmt.Schema.Name, field)
	}

	query := db.WithContext(ctx).
		Table(stmt.Schema.Table).
		Where(clause.Eq{Column: clause.Column{Name: f.DBName}, Value: value})

	if excludeKey != nil {
		pk := stmt.Schema.PrioritizedPrimaryField
		if pk == nil {
			return false, fmt.Errorf("%s has no primary key to exclude", stmt.Schema.Name)
		}
		query = query.Where(clause.Neq{Column: clause.Column{Name: pk.DBName}, Value: excludeKey})
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// checkReference rejects a foreign key that points at no row of model's table.
func checkReference(ctx context.Context, db *gorm.DB, model any, field string, id uint) error {
	ok, err := ExistsWithField(ctx, db, model, "id", id, nil)
	if err != nil {
		return err
	}
	if !ok {
		return NewValidationError(field, fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(id)))
	}
	return nil
}
