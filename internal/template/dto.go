// AngelaMos | 2026
// dto.go

package template

import (
	"time"
)

type CreateTemplateRequest struct {
	CommodityType    string  `json:"commodity_type"    validate:"required,max=100"`
	PropertyName     string  `json:"property_name"     validate:"required,max=100"`
	Units            *string `json:"units"             validate:"omitempty,max=50"`
	PropertyCategory *string `json:"property_category" validate:"omitempty,max=100"`
	IsRequired       bool    `json:"is_required"`
	DisplayOrder     int     `json:"display_order"`
}

type UpdateTemplateRequest struct {
	CommodityType    *string `json:"commodity_type"    validate:"omitempty,min=1,max=100"`
	PropertyName     *string `json:"property_name"     validate:"omitempty,min=1,max=100"`
	Units            *string `json:"units"             validate:"omitempty,max=50"`
	PropertyCategory *string `json:"property_category" validate:"omitempty,max=100"`
	IsRequired       *bool   `json:"is_required"`
	DisplayOrder     *int    `json:"display_order"`
}

type ValidatePropertiesRequest struct {
	PropertyNames []string `json:"property_names" validate:"dive,max=100"`
}

// ValidationReport is advisory; nothing rejects a write because of it.
type ValidationReport struct {
	CommodityType   string   `json:"commodity_type"`
	Valid           bool     `json:"valid"`
	Unknown         []string `json:"unknown"`
	MissingRequired []string `json:"missing_required"`
}

type TemplateResponse struct {
	ID               int64     `json:"template_id"`
	CommodityType    string    `json:"commodity_type"`
	PropertyName     string    `json:"property_name"`
	Units            *string   `json:"units"`
	PropertyCategory *string   `json:"property_category"`
	IsRequired       bool      `json:"is_required"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateTemplateResponse struct {
	Message  string           `json:"message"`
	Template TemplateResponse `json:"template"`
}

func ToTemplateResponse(t *Template) TemplateResponse {
	return TemplateResponse{
		ID:               t.ID,
		CommodityType:    t.CommodityType,
		PropertyName:     t.PropertyName,
		Units:            t.Units,
		PropertyCategory: t.PropertyCategory,
		IsRequired:       t.IsRequired,
		DisplayOrder:     t.DisplayOrder,
		CreatedAt:        t.CreatedAt,
	}
}

func ToTemplateResponseList(templates []Template) []TemplateResponse {
	responses := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, ToTemplateResponse(&templates[i]))
	}
	return responses
}
