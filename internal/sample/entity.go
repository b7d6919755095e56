// AngelaMos | 2026
// entity.go

package sample

import (
	"time"
)

// Property is one recorded attribute of a sample. SampleCode is filled only
// by listings that join the samples table.
type Property struct {
	ID               int64     `db:"property_id"`
	SampleID         int64     `db:"sample_id"`
	PropertyName     string    `db:"property_name"`
	PropertyValue    Value     `db:"property_value"`
	Units            *string   `db:"units"`
	PropertyCategory *string   `db:"property_category"`
	Notes            *string   `db:"notes"`
	CreatedAt        time.Time `db:"created_at"`
	SampleCode       *string   `db:"sample_code"`
}

type Changes struct {
	SampleID         *int64
	PropertyName     *string
	PropertyValue    *Value
	Units            *string
	PropertyCategory *string
	Notes            *string
}

func (c Changes) Empty() bool {
	return c.SampleID == nil &&
		c.PropertyName == nil &&
		c.PropertyValue == nil &&
		c.Units == nil &&
		c.PropertyCategory == nil &&
		c.Notes == nil
}

// Filter selects a listing. At most one of SampleID and Category is honoured,
// SampleID first.
type Filter struct {
	SampleID *int64
	Category *string
}
