package committee

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/procurehq/procure/internal/entity"
	"github.com/procurehq/procure/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/procurehq/procure/service/committee")

// Repository is the persistence surface for committees.
type Repository interface {
	List(ctx context.Context) ([]entity.Committee, error)
	Insert(ctx context.Context, committee *entity.Committee) error
}

// Service wraps committee reference-data operations.
type Service struct {
	repo    Repository
	timeout time.Duration
}

// NewService constructs the committee service.
func NewService(repository Repository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{repo: repository, timeout: timeout}
}

// List returns all committees ordered by id.
func (s *Service) List(ctx context.Context) ([]entity.Committee, error) {
	ctx, span := serviceTracer.Start(ctx, "CommitteeService.List")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	committees, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list committees", errorbank.WithCause(err))
	}
	return committees, nil
}

// Create validates and stores a committee, returning the assigned id.
func (s *Service) Create(ctx context.Context, name string) (int64, error) {
	ctx, span := serviceTracer.Start(ctx, "CommitteeService.Create")
	defer span.End()

	if name == "" {
		return 0, errorbank.Validation([]string{"committee name is required"})
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	committee := &entity.Committee{Name: name}
	if err := s.repo.Insert(ctx, committee); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return 0, errorbank.Internal("failed to create committee", errorbank.WithCause(err))
	}
	return committee.ID, nil
}
