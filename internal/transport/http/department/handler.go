package department

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/dto"
	"github.com/procurehq/procure/internal/presentation/http/response"
	service "github.com/procurehq/procure/internal/service/department"
	"github.com/procurehq/procure/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/procurehq/procure/transport/http/department")

// Handler exposes department endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a department Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/departments")
	g.GET("/:committeeId", h.listByCommittee)
	g.POST("", h.create)
}

func (h *Handler) listByCommittee(c echo.Context) error {
	b := response.New(c)

	committeeID, err := strconv.ParseInt(c.Param("committeeId"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid committee id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "departments.list", trace.WithAttributes(
		attribute.Int64("committee.id", committeeID),
	))
	defer span.End()

	departments, err := h.svc.ListByCommittee(ctx, committeeID)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		out = append(out, dto.DepartmentResponse{
			ID:          department.ID,
			Name:        department.Name,
			CommitteeID: department.CommitteeID,
		})
	}
	return b.WithData(out).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateDepartmentRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "departments.create", trace.WithAttributes(
		attribute.Int64("department.id", payload.ID),
	))
	defer span.End()

	if err := h.svc.Create(ctx, service.CreateInput{
		ID:          payload.ID,
		Name:        payload.Name,
		CommitteeID: payload.CommitteeID,
	}); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.DepartmentResponse{
		ID:          payload.ID,
		Name:        payload.Name,
		CommitteeID: payload.CommitteeID,
	}).Build()
}
