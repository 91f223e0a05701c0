package attachment

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/procurehq/procure/internal/entity"
	"github.com/procurehq/procure/internal/storage"
	"github.com/procurehq/procure/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/procurehq/procure/service/attachment")

// Repository is the persistence surface the attachment workflow needs.
type Repository interface {
	NextSeq(ctx context.Context, orderID int64) (int, error)
	Insert(ctx context.Context, attachment *entity.Attachment) error
}

// Files abstracts the on-disk attachment store.
type Files interface {
	PathFor(orderNo, orderYear string, seq int) string
	Save(path string, data []byte) error
	Remove(path string) error
}

// AttachInput carries an upload request.
type AttachInput struct {
	OrderID   int64
	OrderNo   string
	OrderYear string
	FileName  string
	Data      []byte
}

// Service implements the PDF attachment workflow: sequence computation,
// deterministic path derivation, file write, metadata insert, and
// delete-on-failure compensation.
type Service struct {
	repo    Repository
	files   Files
	logger  *zap.Logger
	timeout time.Duration
}

// NewService constructs the attachment service.
func NewService(repository Repository, files Files, logger *zap.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		repo:    repository,
		files:   files,
		logger:  logger,
		timeout: timeout,
	}
}

// Attach validates the upload, writes the file to its sequenced path, and
// records the metadata row. If the insert fails after the file was
// written, the file is removed before the error is surfaced.
func (s *Service) Attach(ctx context.Context, input AttachInput) (*entity.Attachment, error) {
	ctx, span := serviceTracer.Start(ctx, "AttachmentService.Attach", trace.WithAttributes(
		attribute.Int64("order.id", input.OrderID),
	))
	defer span.End()

	if violations := validate(input); len(violations) > 0 {
		return nil, errorbank.Validation(violations)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	orderNo := storage.SafeSegment(input.OrderNo)
	orderYear := storage.SafeSegment(input.OrderYear)

	seq, err := s.repo.NextSeq(ctx, input.OrderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to compute attachment sequence", errorbank.WithCause(err))
	}

	path := s.files.PathFor(orderNo, orderYear, seq)
	if err := s.files.Save(path, input.Data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "file write failed")
		return nil, errorbank.Internal("failed to store attachment file", errorbank.WithCause(err))
	}

	attachment := &entity.Attachment{
		OrderID:   input.OrderID,
		OrderNo:   orderNo,
		OrderYear: orderYear,
		Seq:       seq,
		FilePath:  path,
	}
	if err := s.repo.Insert(ctx, attachment); err != nil {
		// Compensate: the row never landed, so the file must not either.
		if removeErr := s.files.Remove(path); removeErr != nil && s.logger != nil {
			s.logger.Error("orphaned attachment file could not be removed",
				zap.String("path", path), zap.Error(removeErr))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, errorbank.Internal("failed to record attachment", errorbank.WithCause(err))
	}

	return attachment, nil
}

func validate(input AttachInput) []string {
	var violations []string
	if input.OrderID <= 0 {
		violations = append(violations, "orderID is required")
	}
	if storage.SafeSegment(input.OrderNo) == "" {
		violations = append(violations, "orderNo is required")
	}
	if storage.SafeSegment(input.OrderYear) == "" {
		violations = append(violations, "orderYear is required")
	}
	if len(input.Data) == 0 {
		violations = append(violations, "file must not be empty")
	}
	if !strings.HasSuffix(strings.ToLower(input.FileName), ".pdf") {
		violations = append(violations, "only PDF files are allowed")
	}
	return violations
}
