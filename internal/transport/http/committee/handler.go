package committee

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/procurehq/procure/internal/dto"
	"github.com/procurehq/procure/internal/presentation/http/response"
	service "github.com/procurehq/procure/internal/service/committee"
	"github.com/procurehq/procure/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/procurehq/procure/transport/http/committee")

// Handler exposes committee endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a committee Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/committees")
	g.GET("", h.list)
	g.POST("", h.create)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "committees.list")
	defer span.End()

	committees, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.CommitteeResponse, 0, len(committees))
	for _, committee := range committees {
		out = append(out, dto.CommitteeResponse{ID: committee.ID, Name: committee.Name})
	}
	return b.WithData(out).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateCommitteeRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "committees.create")
	defer span.End()

	id, err := h.svc.Create(ctx, payload.Name)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.CommitteeResponse{ID: id, Name: payload.Name}).Build()
}
