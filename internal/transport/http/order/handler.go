package order

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
	service "github.com/procurehq/procure/internal/service/order"
	"github.com/procurehq/procure/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/procurehq/procure/transport/http/order")

// Handler exposes order endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/orders")
	g.POST("", h.create)
	g.GET("/countAllOrderNo", h.count)
	g.GET("/:id/details", h.details)
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateOrderRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.create", trace.WithAttributes(
		attribute.String("order.no", payload.OrderNo),
		attribute.String("order.year", payload.OrderYear),
	))
	defer span.End()

	orderID, err := h.svc.Create(ctx, service.CreateInput{
		OrderNo:              payload.OrderNo,
		OrderYear:            payload.OrderYear,
		OrderDate:            payload.OrderDate,
		OrderType:            payload.OrderType,
		CommitteeID:          payload.CommitteeID,
		DepartmentID:         payload.DepartmentID,
		MaterialName:         payload.MaterialName,
		EstimatorID:          payload.EstimatorID,
		ProcedureID:          payload.ProcedureID,
		OrderStatus:          payload.OrderStatus,
		Notes:                payload.Notes,
		AchievedDate:         payload.AchievedDate,
		RequestedDestination: payload.RequestedDestination,
		FinalPrice:           payload.FinalPrice,
		CurrencyType:         payload.CurrencyType,
		CheckOrderLink:       payload.CheckOrderLink,
		UserID:               payload.UserID,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.CreateOrderResponse{OrderID: orderID}).Build()
}

func (h *Handler) details(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.details", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	details, err := h.svc.Details(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(toDetailsDTO(details)).Build()
}

func (h *Handler) count(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.count")
	defer span.End()

	count, err := h.svc.Count(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.OrderCountResponse{Count: count}).Build()
}

func toDetailsDTO(details *entity.OrderDetails) dto.OrderDetailsResponse {
	resp := dto.OrderDetailsResponse{
		OrderID:              details.ID,
		OrderNo:              details.OrderNo,
		OrderYear:            details.OrderYear,
		OrderDate:            details.OrderDate.Format(service.DateLayout),
		OrderType:            details.OrderType,
		MaterialName:         details.MaterialName,
		OrderStatus:          details.OrderStatus,
		Notes:                details.Notes,
		RequestedDestination: details.RequestedDestination,
		FinalPrice:           details.FinalPrice,
		CurrencyType:         details.CurrencyType,
		Color:                details.Color,
		CheckOrderLink:       details.CheckOrderLink,
		ProcedureName:        details.ProcedureName,
		Committee:            details.Committee,
		Department:           details.Department,
		Username:             details.Username,
		CreatedAt:            details.CreatedAt.Format(service.DateLayout),
	}
	if details.AchievedDate != nil {
		resp.AchievedDate = details.AchievedDate.Format(service.DateLayout)
	}
	return resp
}
