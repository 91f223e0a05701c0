package department

import (
	"context"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/database"
	"github.com/procurehq/procure/internal/entity"
)

var repoTracer = otel.Tracer("github.com/procurehq/procure/repository/department")

// Repository provides department lookups and inserts.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{writer: conns.Writer, reader: conns.Reader}
}

// ListByCommittee returns the departments belonging to a committee.
func (r *Repository) ListByCommittee(ctx context.Context, committeeID int64) ([]entity.Department, error) {
	ctx, span := repoTracer.Start(ctx, "DepartmentRepository.ListByCommittee", trace.WithAttributes(attribute.Int64("committee.id", committeeID)))
	defer span.End()

	departments := []entity.Department{}
	err := r.reader.NewSelect().
		Model(&departments).
		Where("committee_id = ?", committeeID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return departments, nil
}

// Insert stores a department row with its caller-assigned id.
func (r *Repository) Insert(ctx context.Context, department *entity.Department) error {
	ctx, span := repoTracer.Start(ctx, "DepartmentRepository.Insert")
	defer span.End()

	_, err := r.writer.NewInsert().Model(department).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}
