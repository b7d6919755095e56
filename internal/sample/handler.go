// AngelaMos | 2026
// handler.go

package sample

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/CodeSancho/GeospartialLib/internal/core"
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
	r.Route("/sampleProperties", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.CreateProperty)
		r.Post("/batch", h.CreateBatch)
		r.Get("/", h.ListAll)
		r.Get("/sample/{sampleID}", h.ListBySample)
		r.Get("/category/{category}", h.ListByCategory)
		r.Get("/{propertyID}", h.GetProperty)
		r.Patch("/{propertyID}", h.UpdateProperty)
		r.Delete("/{propertyID}", h.DeleteProperty)
	})
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.CreateProperty(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.Created(w, PropertyMessageResponse{
		Message:  "Sample property created",
		Property: ToPropertyResponse(p),
	})
}

func (h *Handler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	props, err := h.service.CreatePropertiesBatch(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.Created(w, BatchResponse{
		Message:    fmt.Sprintf("%d properties created", len(props)),
		Properties: ToPropertyResponseList(props),
	})
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, Filter{})
}

func (h *Handler) ListBySample(w http.ResponseWriter, r *http.Request) {
	sampleID, ok := parseIDParam(w, r, "sampleID", "invalid sample id")
	if !ok {
		return
	}
	h.list(w, r, Filter{SampleID: &sampleID})
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.list(w, r, Filter{Category: &category})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, filter Filter) {
	props, err := h.service.ListProperties(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToPropertyResponseList(props))
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "propertyID", "invalid property id")
	if !ok {
		return
	}

	p, err := h.service.GetProperty(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToPropertyResponse(p))
}

func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "propertyID", "invalid property id")
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.UpdateProperty(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, PropertyMessageResponse{
		Message:  "Sample property updated",
		Property: ToPropertyResponse(p),
	})
}

func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "propertyID", "invalid property id")
	if !ok {
		return
	}

	p, err := h.service.DeleteProperty(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, DeletedResponse{
		Message: "Sample property deleted",
		Deleted: ToPropertyResponse(p),
	})
}

func parseIDParam(
	w http.ResponseWriter,
	r *http.Request,
	key, message string,
) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id < 1 {
		core.BadRequest(w, message)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnknownSample):
		core.BadRequest(w, "unknown sample")
	case errors.Is(err, core.ErrValidation):
		core.BadRequest(w, "missing required fields")
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "sample property")
	default:
		core.InternalServerError(w, err)
	}
}
