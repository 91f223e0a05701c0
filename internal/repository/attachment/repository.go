package attachment

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/database"
	"github.com/procurehq/procure/internal/entity"
)

var repoTracer = otel.Tracer("github.com/procurehq/procure/repository/attachment")

// Repository provides attachment metadata reads and writes.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{writer: conns.Writer, reader: conns.Reader}
}

// NextSeq computes MAX(seq)+1 for an order; the first attachment gets 1.
func (r *Repository) NextSeq(ctx context.Context, orderID int64) (int, error) {
	ctx, span := repoTracer.Start(ctx, "AttachmentRepository.NextSeq", trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	var max sql.NullInt64
	err := r.reader.NewSelect().
		Model((*entity.Attachment)(nil)).
		ColumnExpr("MAX(seq)").
		Where("order_id = ?", orderID).
		Scan(ctx, &max)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return 0, err
	}
	return int(max.Int64) + 1, nil
}

// Insert stores an attachment row; the assigned id is written back.
func (r *Repository) Insert(ctx context.Context, attachment *entity.Attachment) error {
	ctx, span := repoTracer.Start(ctx, "AttachmentRepository.Insert", trace.WithAttributes(attribute.Int64("order.id", attachment.OrderID)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(attachment).Returning("id").Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}
