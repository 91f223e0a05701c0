package estimator

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/entity"
	repo "github.com/procurehq/procure/internal/repository/estimator"
	"github.com/procurehq/procure/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/procurehq/procure/service/estimator")

// DateLayout is the wire format for estimator dates.
const DateLayout = "2006-01-02"

// Repository is the persistence surface for estimators.
type Repository interface {
	List(ctx context.Context) ([]entity.Estimator, error)
	Insert(ctx context.Context, estimator *entity.Estimator) error
	Update(ctx context.Context, estimator *entity.Estimator) error
}

// UpsertInput carries estimator create/update fields. Dates arrive as
// strings; an empty endDate clears the column on update.
type UpsertInput struct {
	Name         string
	StartDate    string
	EndDate      string
	Status       string
	CommitteeID  *int64
	DepartmentID *int64
}

// Service wraps estimator reference-data operations.
type Service struct {
	repo    Repository
	timeout time.Duration
}

// NewService constructs the estimator service.
func NewService(repository Repository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{repo: repository, timeout: timeout}
}

// List returns all estimators.
func (s *Service) List(ctx context.Context) ([]entity.Estimator, error) {
	ctx, span := serviceTracer.Start(ctx, "EstimatorService.List")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	estimators, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list estimators", errorbank.WithCause(err))
	}
	return estimators, nil
}

// Create validates and stores an estimator, returning the assigned id.
func (s *Service) Create(ctx context.Context, input UpsertInput) (int64, error) {
	ctx, span := serviceTracer.Start(ctx, "EstimatorService.Create")
	defer span.End()

	estimator, violations := buildEstimator(input)
	if len(violations) > 0 {
		return 0, errorbank.Validation(violations)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Insert(ctx, estimator); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return 0, errorbank.Internal("failed to create estimator", errorbank.WithCause(err))
	}
	return estimator.ID, nil
}

// Update overwrites an estimator row by id.
func (s *Service) Update(ctx context.Context, id int64, input UpsertInput) error {
	ctx, span := serviceTracer.Start(ctx, "EstimatorService.Update", trace.WithAttributes(attribute.Int64("estimator.id", id)))
	defer span.End()

	estimator, violations := buildEstimator(input)
	if id <= 0 {
		violations = append(violations, "estimatorID must be a positive integer")
	}
	if len(violations) > 0 {
		return errorbank.Validation(violations)
	}
	estimator.ID = id

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.repo.Update(ctx, estimator)
	if errors.Is(err, repo.ErrNotFound) {
		return errorbank.NotFound("estimator not found")
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to update estimator", errorbank.WithCause(err))
	}
	return nil
}

func buildEstimator(input UpsertInput) (*entity.Estimator, []string) {
	var violations []string
	if input.Name == "" {
		violations = append(violations, "estimatorName is required")
	}

	var startDate, endDate *time.Time
	if input.StartDate != "" {
		parsed, err := time.Parse(DateLayout, input.StartDate)
		if err != nil {
			violations = append(violations, "startDate must be a valid date (YYYY-MM-DD)")
		} else {
			startDate = &parsed
		}
	}
	if input.EndDate != "" {
		parsed, err := time.Parse(DateLayout, input.EndDate)
		if err != nil {
			violations = append(violations, "endDate must be a valid date (YYYY-MM-DD)")
		} else {
			endDate = &parsed
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}

	return &entity.Estimator{
		Name:         input.Name,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       input.Status,
		CommitteeID:  input.CommitteeID,
		DepartmentID: input.DepartmentID,
	}, nil
}
