// AngelaMos | 2026
// dto.go

package sample

import (
	"time"
)

type CreatePropertyRequest struct {
	SampleID         int64   `json:"sample_id"         validate:"required,gt=0"`
	PropertyName     string  `json:"property_name"     validate:"required,max=100"`
	PropertyValue    Value   `json:"property_value"`
	Units            *string `json:"units"             validate:"omitempty,max=50"`
	PropertyCategory *string `json:"property_category" validate:"omitempty,max=100"`
	Notes            *string `json:"notes"`
}

type BatchItem struct {
	PropertyName     string  `json:"property_name"     validate:"required,max=100"`
	PropertyValue    Value   `json:"property_value"`
	Units            *string `json:"units"             validate:"omitempty,max=50"`
	PropertyCategory *string `json:"property_category" validate:"omitempty,max=100"`
	Notes            *string `json:"notes"`
}

type BatchRequest struct {
	SampleID   int64       `json:"sample_id"  validate:"required,gt=0"`
	Properties []BatchItem `json:"properties" validate:"required,dive"`
}

type UpdatePropertyRequest struct {
	SampleID         *int64  `json:"sample_id"         validate:"omitempty,gt=0"`
	PropertyName     *string `json:"property_name"     validate:"omitempty,min=1,max=100"`
	PropertyValue    *Value  `json:"property_value"`
	Units            *string `json:"units"             validate:"omitempty,max=50"`
	PropertyCategory *string `json:"property_category" validate:"omitempty,max=100"`
	Notes            *string `json:"notes"`
}

type PropertyResponse struct {
	ID               int64     `json:"property_id"`
	SampleID         int64     `json:"sample_id"`
	SampleCode       *string   `json:"sample_code,omitempty"`
	PropertyName     string    `json:"property_name"`
	PropertyValue    Value     `json:"property_value"`
	Units            *string   `json:"units"`
	PropertyCategory *string   `json:"property_category"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

type PropertyMessageResponse struct {
	Message  string           `json:"message"`
	Property PropertyResponse `json:"property"`
}

type BatchResponse struct {
	Message    string             `json:"message"`
	Properties []PropertyResponse `json:"properties"`
}

type DeletedResponse struct {
	Message string           `json:"message"`
	Deleted PropertyResponse `json:"deleted"`
}

func ToPropertyResponse(p *Property) PropertyResponse {
	return PropertyResponse{
		ID:               p.ID,
		SampleID:         p.SampleID,
		SampleCode:       p.SampleCode,
		PropertyName:     p.PropertyName,
		PropertyValue:    p.PropertyValue,
		Units:            p.Units,
		PropertyCategory: p.PropertyCategory,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
	}
}

func ToPropertyResponseList(props []Property) []PropertyResponse {
	responses := make([]PropertyResponse, 0, len(props))
	for i := range props {
		responses = append(responses, ToPropertyResponse(&props[i]))
	}
	return responses
}
