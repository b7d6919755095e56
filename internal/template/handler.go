// AngelaMos | 2026
// handler.go

package template

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/CodeSancho/GeospartialLib/internal/core"
	"github.com/CodeSancho/GeospartialLib/internal/middleware"
	"github.com/CodeSancho/GeospartialLib/internal/user"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/propertyTemplates", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/templates/{commodityType}", h.ListTemplates)
		r.Post("/templates", h.CreateTemplate)
		r.Post("/templates/{commodityType}/validate", h.ValidateProperties)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleGeologist))
			r.Patch("/templates/{templateID}", h.UpdateTemplate)
			r.Delete("/templates/{templateID}", h.DeleteTemplate)
		})
	})
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListTemplates(
		r.Context(),
		chi.URLParam(r, "commodityType"),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToTemplateResponseList(templates))
}

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.CreateTemplate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.Created(w, CreateTemplateResponse{
		Message:  "Property template created",
		Template: ToTemplateResponse(t),
	})
}

func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTemplateID(w, r)
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.UpdateTemplate(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToTemplateResponse(t))
}

func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTemplateID(w, r)
	if !ok {
		return
	}

	t, err := h.service.DeleteTemplate(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToTemplateResponse(t))
}

func (h *Handler) ValidateProperties(w http.ResponseWriter, r *http.Request) {
	var req ValidatePropertiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	report, err := h.service.ValidateProperties(
		r.Context(),
		chi.URLParam(r, "commodityType"),
		req.PropertyNames,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, report)
}

func parseTemplateID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "templateID"), 10, 64)
	if err != nil || id < 1 {
		core.BadRequest(w, "invalid template id")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		core.BadRequest(w, "missing required fields")
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "template")
	case errors.Is(err, core.ErrDuplicateKey):
		core.JSONError(w, core.DuplicateError("template"))
	default:
		core.InternalServerError(w, err)
	}
}
