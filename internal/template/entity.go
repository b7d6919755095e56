// AngelaMos | 2026
// entity.go

package template

import (
	"time"
)

// Template declares one attribute recognised for a commodity type.
type Template struct {
	ID               int64     `db:"template_id"`
	CommodityType    string    `db:"commodity_type"`
	PropertyName     string    `db:"property_name"`
	Units            *string   `db:"units"`
	PropertyCategory *string   `db:"property_category"`
	IsRequired       bool      `db:"is_required"`
	DisplayOrder     int       `db:"display_order"`
	CreatedAt        time.Time `db:"created_at"`
}

type Changes struct {
	CommodityType    *string
	PropertyName     *string
	Units            *string
	PropertyCategory *string
	IsRequired       *bool
	DisplayOrder     *int
}

func (c Changes) Empty() bool {
	return c.CommodityType == nil &&
		c.PropertyName == nil &&
		c.Units == nil &&
		c.PropertyCategory == nil &&
		c.IsRequired == nil &&
		c.DisplayOrder == nil
}
