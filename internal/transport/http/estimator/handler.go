package estimator

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/dto"
	"github.com/procurehq/procure/internal/entity"
	"github.com/procurehq/procure/internal/presentation/http/response"
	service "github.com/procurehq/procure/internal/service/estimator"
	"github.com/procurehq/procure/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/procurehq/procure/transport/http/estimator")

// Handler exposes estimator endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an estimator Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/estimators")
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "estimators.list")
	defer span.End()

	estimators, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.EstimatorResponse, 0, len(estimators))
	for i := range estimators {
		out = append(out, toEstimatorDTO(&estimators[i]))
	}
	return b.WithData(out).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.UpsertEstimatorRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "estimators.create")
	defer span.End()

	id, err := h.svc.Create(ctx, toUpsertInput(payload))
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.CreateEstimatorResponse{EstimatorID: id}).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	var payload dto.UpsertEstimatorRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "estimators.update", trace.WithAttributes(
		attribute.Int64("estimator.id", id),
	))
	defer span.End()

	if err := h.svc.Update(ctx, id, toUpsertInput(payload)); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusOK).WithData(dto.CreateEstimatorResponse{EstimatorID: id}).Build()
}

func toUpsertInput(payload dto.UpsertEstimatorRequest) service.UpsertInput {
	return service.UpsertInput{
		Name:         payload.Name,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		Status:       payload.Status,
		CommitteeID:  payload.CommitteeID,
		DepartmentID: payload.DepartmentID,
	}
}

func toEstimatorDTO(estimator *entity.Estimator) dto.EstimatorResponse {
	resp := dto.EstimatorResponse{
		ID:           estimator.ID,
		Name:         estimator.Name,
		Status:       estimator.Status,
		CommitteeID:  estimator.CommitteeID,
		DepartmentID: estimator.DepartmentID,
	}
	if estimator.StartDate != nil {
		resp.StartDate = estimator.StartDate.Format(service.DateLayout)
	}
	if estimator.EndDate != nil {
		resp.EndDate = estimator.EndDate.Format(service.DateLayout)
	}
	return resp
}
