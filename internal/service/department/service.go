package department

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/entity"
	"github.com/procurehq/procure/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/procurehq/procure/service/department")

// Repository is the persistence surface for departments.
type Repository interface {
	ListByCommittee(ctx context.Context, committeeID int64) ([]entity.Department, error)
	Insert(ctx context.Context, department *entity.Department) error
}

// CreateInput carries a department creation request; the id is assigned
// by the caller, matching the upstream data model.
type CreateInput struct {
	ID          int64
	Name        string
	CommitteeID int64
}

// Service wraps department reference-data operations.
type Service struct {
	repo    Repository
	timeout time.Duration
}

// NewService constructs the department service.
func NewService(repository Repository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{repo: repository, timeout: timeout}
}

// ListByCommittee returns the departments under a committee.
func (s *Service) ListByCommittee(ctx context.Context, committeeID int64) ([]entity.Department, error) {
	ctx, span := serviceTracer.Start(ctx, "DepartmentService.ListByCommittee", trace.WithAttributes(attribute.Int64("committee.id", committeeID)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	departments, err := s.repo.ListByCommittee(ctx, committeeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list departments", errorbank.WithCause(err))
	}
	return departments, nil
}

// Create validates and stores a department.
func (s *Service) Create(ctx context.Context, input CreateInput) error {
	ctx, span := serviceTracer.Start(ctx, "DepartmentService.Create")
	defer span.End()

	var violations []string
	if input.ID <= 0 {
		violations = append(violations, "deID must be a positive integer")
	}
	if input.Name == "" {
		violations = append(violations, "department name is required")
	}
	if input.CommitteeID <= 0 {
		violations = append(violations, "coID must be a positive integer")
	}
	if len(violations) > 0 {
		return errorbank.Validation(violations)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	department := &entity.Department{
		ID:          input.ID,
		Name:        input.Name,
		CommitteeID: input.CommitteeID,
	}
	if err := s.repo.Insert(ctx, department); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create department", errorbank.WithCause(err))
	}
	return nil
}
