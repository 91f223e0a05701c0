package estimator

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/database"
	"github.com/procurehq/procure/internal/entity"
)

var repoTracer = otel.Tracer("github.com/procurehq/procure/repository/estimator")

// ErrNotFound is returned when an update matches no estimator row.
var ErrNotFound = errors.New("estimator not found")

// Repository provides estimator lookups and writes.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{writer: conns.Writer, reader: conns.Reader}
}

// List returns all estimators.
func (r *Repository) List(ctx context.Context) ([]entity.Estimator, error) {
	ctx, span := repoTracer.Start(ctx, "EstimatorRepository.List")
	defer span.End()

	estimators := []entity.Estimator{}
	err := r.reader.NewSelect().Model(&estimators).Order("id ASC").Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return estimators, nil
}

// Insert stores an estimator; the assigned id is written back.
func (r *Repository) Insert(ctx context.Context, estimator *entity.Estimator) error {
	ctx, span := repoTracer.Start(ctx, "EstimatorRepository.Insert")
	defer span.End()

	_, err := r.writer.NewInsert().Model(estimator).Returning("id").Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// Update overwrites an estimator row by id. ErrNotFound when no row
// was affected.
func (r *Repository) Update(ctx context.Context, estimator *entity.Estimator) error {
	ctx, span := repoTracer.Start(ctx, "EstimatorRepository.Update", trace.WithAttributes(attribute.Int64("estimator.id", estimator.ID)))
	defer span.End()

	res, err := r.writer.NewUpdate().
		Model(estimator).
		Column("name", "start_date", "end_date", "status", "committee_id", "department_id").
		WherePK().
		Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		span.SetStatus(codes.Error, "not found")
		return ErrNotFound
	}
	return nil
}
