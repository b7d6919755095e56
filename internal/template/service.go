// AngelaMos | 2026
// service.go

package template

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

// ListTemplates queries afresh on every call, ordered by display order with
// ties in insertion order.
func (s *Service) ListTemplates(
	ctx context.Context,
	commodityType string,
) ([]Template, error) {
	commodityType = strings.TrimSpace(commodityType)
	if commodityType == "" {
		return nil, fmt.Errorf("list templates: %w", core.ErrValidation)
	}

	return s.repo.ListByCommodity(ctx, commodityType)
}

func (s *Service) CreateTemplate(
	ctx context.Context,
	req CreateTemplateRequest,
) (_ *Template, err error) {
	ctx, span := core.StartSpan(ctx, "template.Create",
		attribute.String("commodity_type", req.CommodityType),
	)
	defer func() { core.EndSpan(span, err) }()

	commodityType := strings.TrimSpace(req.CommodityType)
	propertyName := strings.TrimSpace(req.PropertyName)
	if commodityType == "" || propertyName == "" {
		return nil, fmt.Errorf("create template: %w", core.ErrValidation)
	}

	t := &Template{
		CommodityType:    commodityType,
		PropertyName:     propertyName,
		Units:            req.Units,
		PropertyCategory: req.PropertyCategory,
		IsRequired:       req.IsRequired,
		DisplayOrder:     req.DisplayOrder,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) UpdateTemplate(
	ctx context.Context,
	id int64,
	req UpdateTemplateRequest,
) (*Template, error) {
	changes := Changes{
		CommodityType:    trimmedOrNil(req.CommodityType),
		PropertyName:     trimmedOrNil(req.PropertyName),
		Units:            req.Units,
		PropertyCategory: req.PropertyCategory,
		IsRequired:       req.IsRequired,
		DisplayOrder:     req.DisplayOrder,
	}

	if changes.Empty() {
		return nil, fmt.Errorf("update template: %w", core.ErrValidation)
	}

	return s.repo.Update(ctx, id, changes)
}

func (s *Service) DeleteTemplate(ctx context.Context, id int64) (*Template, error) {
	return s.repo.Delete(ctx, id)
}

// ValidateProperties compares property names against the commodity's
// templates. Names are matched case-insensitively.
func (s *Service) ValidateProperties(
	ctx context.Context,
	commodityType string,
	names []string,
) (*ValidationReport, error) {
	templates, err := s.ListTemplates(ctx, commodityType)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(templates))
	for _, t := range templates {
		known[strings.ToLower(t.PropertyName)] = true
	}

	present := make(map[string]bool, len(names))
	report := &ValidationReport{
		CommodityType:   strings.TrimSpace(commodityType),
		Unknown:         []string{},
		MissingRequired: []string{},
	}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || present[key] {
			continue
		}
		present[key] = true

		if !known[key] {
			report.Unknown = append(report.Unknown, name)
		}
	}

	for _, t := range templates {
		if t.IsRequired && !present[strings.ToLower(t.PropertyName)] {
			report.MissingRequired = append(report.MissingRequired, t.PropertyName)
		}
	}

	report.Valid = len(report.Unknown) == 0 && len(report.MissingRequired) == 0

	return report, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
