// AngelaMos | 2026
// service.go

package sample

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/CodeSancho/GeospartialLib/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateProperty(
	ctx context.Context,
	req CreatePropertyRequest,
) (*Property, error) {
	name := strings.TrimSpace(req.PropertyName)
	if req.SampleID <= 0 || name == "" {
		return nil, fmt.Errorf("create property: %w", core.ErrValidation)
	}

	p := &Property{
		SampleID:         req.SampleID,
		PropertyName:     name,
		PropertyValue:    req.PropertyValue,
		Units:            req.Units,
		PropertyCategory: req.PropertyCategory,
		Notes:            req.Notes,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// CreatePropertiesBatch stores all properties for one sample or none of
// them. The result holds exactly one row per requested property.
func (s *Service) CreatePropertiesBatch(
	ctx context.Context,
	req BatchRequest,
) (_ []Property, err error) {
	ctx, span := core.StartSpan(ctx, "sample.CreatePropertiesBatch",
		attribute.Int64("sample.id", req.SampleID),
		attribute.Int("batch.size", len(req.Properties)),
	)
	defer func() { core.EndSpan(span, err) }()

	if req.SampleID <= 0 || req.Properties == nil {
		return nil, fmt.Errorf("create property batch: %w", core.ErrValidation)
	}

	props := make([]*Property, 0, len(req.Properties))
	for _, item := range req.Properties {
		name := strings.TrimSpace(item.PropertyName)
		if name == "" {
			return nil, fmt.Errorf("create property batch: %w", core.ErrValidation)
		}

		props = append(props, &Property{
			SampleID:         req.SampleID,
			PropertyName:     name,
			PropertyValue:    item.PropertyValue,
			Units:            item.Units,
			PropertyCategory: item.PropertyCategory,
			Notes:            item.Notes,
		})
	}

	if len(props) == 0 {
		return []Property{}, nil
	}

	if err := s.repo.CreateBatch(ctx, props); err != nil {
		return nil, err
	}

	created := make([]Property, 0, len(props))
	for _, p := range props {
		created = append(created, *p)
	}

	return created, nil
}

func (s *Service) ListProperties(ctx context.Context, filter Filter) ([]Property, error) {
	if filter.Category != nil && strings.TrimSpace(*filter.Category) == "" {
		return nil, fmt.Errorf("list properties: %w", core.ErrValidation)
	}

	return s.repo.List(ctx, filter)
}

func (s *Service) GetProperty(ctx context.Context, id int64) (*Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProperty(
	ctx context.Context,
	id int64,
	req UpdatePropertyRequest,
) (*Property, error) {
	changes := Changes{
		SampleID:         req.SampleID,
		PropertyName:     req.PropertyName,
		PropertyValue:    req.PropertyValue,
		Units:            req.Units,
		PropertyCategory: req.PropertyCategory,
		Notes:            req.Notes,
	}

	if changes.PropertyName != nil {
		name := strings.TrimSpace(*changes.PropertyName)
		if name == "" {
			return nil, fmt.Errorf("update property: %w", core.ErrValidation)
		}
		changes.PropertyName = &name
	}

	if changes.Empty() {
		return nil, fmt.Errorf("update property: %w", core.ErrValidation)
	}

	return s.repo.Update(ctx, id, changes)
}

func (s *Service) DeleteProperty(ctx context.Context, id int64) (*Property, error) {
	return s.repo.Delete(ctx, id)
}
