package committee

import (
	"context"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/procurehq/procure/internal/database"
	"github.com/procurehq/procure/internal/entity"
)

var repoTracer = otel.Tracer("github.com/procurehq/procure/repository/committee")

// Repository provides committee lookups and inserts.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{writer: conns.Writer, reader: conns.Reader}
}

// List returns all committees ordered by id.
func (r *Repository) List(ctx context.Context) ([]entity.Committee, error) {
	ctx, span := repoTracer.Start(ctx, "CommitteeRepository.List")
	defer span.End()

	committees := []entity.Committee{}
	err := r.reader.NewSelect().Model(&committees).Order("id ASC").Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return committees, nil
}

// Insert stores a committee; the assigned id is written back.
func (r *Repository) Insert(ctx context.Context, committee *entity.Committee) error {
	ctx, span := repoTracer.Start(ctx, "CommitteeRepository.Insert")
	defer span.End()

	_, err := r.writer.NewInsert().Model(committee).Returning("id").Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}
