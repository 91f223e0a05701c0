package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/procurehq/procure/internal/database"
	"github.com/procurehq/procure/internal/entity"
)

var repoTracer = otel.Tracer("github.com/procurehq/procure/repository/order")

// ErrNotFound is returned when an order is missing.
var ErrNotFound = errors.New("order not found")

// ErrDuplicate is returned when an insert violates the
// (order_no, order_year) unique constraint.
var ErrDuplicate = errors.New("order already exists")

// Repository encapsulates read/write access for orders.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// Insert persists a new order; the assigned id is written back into order.
// A unique-constraint violation surfaces as ErrDuplicate so callers can
// treat the storage layer as the authoritative conflict guard.
func (r *Repository) Insert(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Insert", trace.WithAttributes(
		attribute.String("order.no", order.OrderNo),
		attribute.String("order.year", order.OrderYear),
	))
	defer span.End()

	_, err := r.writer.NewInsert().Model(order).Returning("id").Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			span.SetStatus(codes.Error, "duplicate")
			return ErrDuplicate
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return err
	}
	return nil
}

// Exists reports whether an order with the given number/year pair is
// already stored. Fast-path check only; Insert remains the authoritative
// guard.
func (r *Repository) Exists(ctx context.Context, orderNo, orderYear string) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Exists")
	defer span.End()

	count, err := r.reader.NewSelect().
		Model((*entity.Order)(nil)).
		Where("order_no = ?", orderNo).
		Where("order_year = ?", orderYear).
		Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count failed")
		return false, err
	}
	return count > 0, nil
}

// GetDetails fetches one order joined with its procedure, committee,
// department, and owning user names. Missing committee/department rows
// collapse to fixed sentinels.
func (r *Repository) GetDetails(ctx context.Context, id int64) (*entity.OrderDetails, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.GetDetails", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	details := new(entity.OrderDetails)
	err := r.reader.NewSelect().
		Model((*entity.Order)(nil)).
		ModelTableExpr("orders AS o").
		ColumnExpr("o.*").
		ColumnExpr("COALESCE(p.name, '') AS procedure_name").
		ColumnExpr("COALESCE(c.name, 'no committee') AS committee").
		ColumnExpr("COALESCE(d.name, 'no department') AS department").
		ColumnExpr("COALESCE(u.name, '') AS username").
		Join("LEFT JOIN procedures AS p ON p.id = o.procedure_id").
		Join("LEFT JOIN committees AS c ON c.id = o.committee_id").
		Join("LEFT JOIN departments AS d ON d.id = o.department_id").
		Join("LEFT JOIN users AS u ON u.id = o.user_id").
		Where("o.id = ?", id).
		Scan(ctx, details)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return details, nil
}

// Count returns the total number of stored orders.
func (r *Repository) Count(ctx context.Context) (int, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Count")
	defer span.End()

	count, err := r.reader.NewSelect().Model((*entity.Order)(nil)).Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count failed")
		return 0, err
	}
	return count, nil
}
