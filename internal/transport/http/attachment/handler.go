package attachment

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/dto"
	"github.com/procurehq/procure/internal/presentation/http/response"
	service "github.com/procurehq/procure/internal/service/attachment"
	"github.com/procurehq/procure/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/procurehq/procure/transport/http/attachment")

// maxUploadBytes bounds how much of an uploaded PDF is read into memory.
const maxUploadBytes = 32 << 20

// Handler exposes the PDF upload endpoint over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an attachment Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.POST("/pdfs/upload", h.upload)
}

func (h *Handler) upload(c echo.Context) error {
	b := response.New(c)

	orderID, err := strconv.ParseInt(c.FormValue("orderID"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid orderID", errorbank.WithCause(err))).Build()
	}
	orderNo := c.FormValue("orderNo")
	orderYear := c.FormValue("orderYear")

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return b.WithError(errorbank.BadRequest("pdf file is required", errorbank.WithCause(err))).Build()
	}

	src, err := fileHeader.Open()
	if err != nil {
		return b.WithError(errorbank.BadRequest("failed to open uploaded file", errorbank.WithCause(err))).Build()
	}
	defer src.Close()

	// Read one byte past the limit so an oversized upload is detectable
	// instead of silently truncated.
	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return b.WithError(errorbank.Internal("failed to read uploaded file", errorbank.WithCause(err))).Build()
	}
	if len(data) > maxUploadBytes {
		return b.WithError(errorbank.BadRequest("pdf exceeds the 32 MiB upload limit")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "pdfs.upload", trace.WithAttributes(
		attribute.Int64("order.id", orderID),
		attribute.String("order.no", orderNo),
		attribute.String("order.year", orderYear),
	))
	defer span.End()

	attachment, err := h.svc.Attach(ctx, service.AttachInput{
		OrderID:   orderID,
		OrderNo:   orderNo,
		OrderYear: orderYear,
		FileName:  fileHeader.Filename,
		Data:      data,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(dto.UploadPdfResponse{
		PdfID:    attachment.ID,
		FilePath: attachment.FilePath,
	}).Build()
}
