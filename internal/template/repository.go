// AngelaMos | 2026
// repository.go

package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CodeSancho/GeospartialLib/internal/core"
)

type Repository interface {
	ListByCommodity(ctx context.Context, commodityType string) ([]Template, error)
	Create(ctx context.Context, t *Template) error
	Update(ctx context.Context, id int64, changes Changes) (*Template, error)
	Delete(ctx context.Context, id int64) (*Template, error)
}

const templateColumns = `template_id, commodity_type, property_name, units,
		property_category, is_required, display_order, created_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListByCommodity(
	ctx context.Context,
	commodityType string,
) ([]Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM property_templates
		WHERE commodity_type = $1
		ORDER BY display_order, template_id`

	templates := []Template{}
	if err := r.db.SelectContext(ctx, &templates, query, commodityType); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	return templates, nil
}

func (r *repository) Create(ctx context.Context, t *Template) error {
	query := `
		INSERT INTO property_templates (
			commodity_type, property_name, units, property_category,
			is_required, display_order
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING template_id, created_at`

	err := r.db.GetContext(ctx, t, query,
		t.CommodityType,
		t.PropertyName,
		t.Units,
		t.PropertyCategory,
		t.IsRequired,
		t.DisplayOrder,
	)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create template: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create template: %w", err)
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	changes Changes,
) (*Template, error) {
	query := `
		UPDATE property_templates
		SET commodity_type    = COALESCE($2, commodity_type),
		    property_name     = COALESCE($3, property_name),
		    units             = COALESCE($4, units),
		    property_category = COALESCE($5, property_category),
		    is_required       = COALESCE($6, is_required),
		    display_order     = COALESCE($7, display_order)
		WHERE template_id = $1
		RETURNING ` + templateColumns

	var t Template
	err := r.db.GetContext(ctx, &t, query,
		id,
		changes.CommodityType,
		changes.PropertyName,
		changes.Units,
		changes.PropertyCategory,
		changes.IsRequired,
		changes.DisplayOrder,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update template: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("update template: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update template: %w", err)
	}

	return &t, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*Template, error) {
	query := `DELETE FROM property_templates WHERE template_id = $1 RETURNING ` + templateColumns

	var t Template
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("delete template: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete template: %w", err)
	}

	return &t, nil
}
