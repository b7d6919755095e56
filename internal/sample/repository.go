// AngelaMos | 2026
// repository.go

package sample

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/CodeSancho/GeospartialLib/internal/core"
)

// ErrUnknownSample marks a property that points at a sample that does not exist.
var ErrUnknownSample = fmt.Errorf("unknown sample: %w", core.ErrValidation)

type Repository interface {
	Create(ctx context.Context, p *Property) error
	CreateBatch(ctx context.Context, props []*Property) error
	GetByID(ctx context.Context, id int64) (*Property, error)
	List(ctx context.Context, filter Filter) ([]Property, error)
	Update(ctx context.Context, id int64, changes Changes) (*Property, error)
	Delete(ctx context.Context, id int64) (*Property, error)
}

const propertyColumns = `property_id, sample_id, property_name, property_value,
		units, property_category, notes, created_at`

const insertProperty = `
	INSERT INTO sample_properties (
		sample_id, property_name, property_value, units,
		property_category, notes
	) VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING property_id, created_at`

type repository struct {
	db *sqlx.DB
}

// NewRepository needs the pool itself rather than core.DBTX because batch
// inserts open their own transaction.
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Property) error {
	if err := insert(ctx, r.db, p); err != nil {
		return fmt.Errorf("create property: %w", err)
	}
	return nil
}

// CreateBatch inserts every property in one transaction. Any failure rolls
// the whole batch back.
func (r *repository) CreateBatch(ctx context.Context, props []*Property) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for i, p := range props {
			if err := insert(ctx, tx, p); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create property batch: %w", err)
	}

	return nil
}

func insert(ctx context.Context, db core.DBTX, p *Property) error {
	err := db.GetContext(ctx, p, insertProperty,
		p.SampleID,
		p.PropertyName,
		p.PropertyValue,
		p.Units,
		p.PropertyCategory,
		p.Notes,
	)
	if err != nil {
		if core.IsForeignKeyError(err) {
			return fmt.Errorf("sample %d: %w", p.SampleID, ErrUnknownSample)
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM sample_properties WHERE property_id = $1`

	var p Property
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get property: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	return &p, nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Property, error) {
	var (
		query string
		args  []any
	)

	switch {
	case filter.SampleID != nil:
		query = `SELECT ` + propertyColumns + `
			FROM sample_properties
			WHERE sample_id = $1
			ORDER BY property_category, property_name`
		args = append(args, *filter.SampleID)
	case filter.Category != nil:
		query = `SELECT ` + propertyColumns + `
			FROM sample_properties
			WHERE property_category = $1
			ORDER BY sample_id`
		args = append(args, *filter.Category)
	default:
		query = `
			SELECT sp.property_id, sp.sample_id, sp.property_name, sp.property_value,
			       sp.units, sp.property_category, sp.notes, sp.created_at,
			       s.sample_code
			FROM sample_properties sp
			LEFT JOIN samples s ON sp.sample_id = s.sample_id
			ORDER BY sp.property_id`
	}

	props := []Property{}
	if err := r.db.SelectContext(ctx, &props, query, args...); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	return props, nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	changes Changes,
) (*Property, error) {
	query := `
		UPDATE sample_properties
		SET sample_id         = COALESCE($2, sample_id),
		    property_name     = COALESCE($3, property_name),
		    property_value    = COALESCE($4, property_value),
		    units             = COALESCE($5, units),
		    property_category = COALESCE($6, property_category),
		    notes             = COALESCE($7, notes)
		WHERE property_id = $1
		RETURNING ` + propertyColumns

	var p Property
	err := r.db.GetContext(ctx, &p, query,
		id,
		changes.SampleID,
		changes.PropertyName,
		changes.PropertyValue,
		changes.Units,
		changes.PropertyCategory,
		changes.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update property: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsForeignKeyError(err) {
			return nil, fmt.Errorf("update property: %w", ErrUnknownSample)
		}
		return nil, fmt.Errorf("update property: %w", err)
	}

	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (*Property, error) {
	query := `DELETE FROM sample_properties WHERE property_id = $1 RETURNING ` + propertyColumns

	var p Property
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("delete property: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete property: %w", err)
	}

	return &p, nil
}
