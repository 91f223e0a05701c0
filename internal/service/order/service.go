package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/procurehq/procure/internal/entity"
	"github.com/procurehq/procure/internal/messaging"
	repo "github.com/procurehq/procure/internal/repository/order"
	"github.com/procurehq/procure/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/procurehq/procure/service/order")

// DateLayout is the wire format for all order dates.
const DateLayout = "2006-01-02"

const defaultProcedureID = 1

// Repository is the persistence surface the order workflow needs.
type Repository interface {
	Insert(ctx context.Context, order *entity.Order) error
	Exists(ctx context.Context, orderNo, orderYear string) (bool, error)
	GetDetails(ctx context.Context, id int64) (*entity.OrderDetails, error)
	Count(ctx context.Context) (int, error)
}

// CreateInput carries the raw order fields accepted by Create. Dates
// arrive as strings so validation can report bad formats alongside
// missing fields.
type CreateInput struct {
	OrderNo              string
	OrderYear            string
	OrderDate            string
	OrderType            string
	CommitteeID          *int64
	DepartmentID         *int64
	MaterialName         string
	EstimatorID          *int64
	ProcedureID          *int64
	OrderStatus          string
	Notes                string
	AchievedDate         string
	RequestedDestination string
	FinalPrice           string
	CurrencyType         string
	CheckOrderLink       *bool
	UserID               *int64
}

// Options tunes service behavior.
type Options struct {
	Timeout        time.Duration
	PublishEnabled bool
	Topic          string
}

// Service implements the order creation workflow and read-side queries.
type Service struct {
	repo      Repository
	logger    *zap.Logger
	publisher messaging.Client
	opts      Options
}

// NewService constructs the order service.
func NewService(repository Repository, logger *zap.Logger, publisher messaging.Client, opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Service{
		repo:      repository,
		logger:    logger,
		publisher: publisher,
		opts:      opts,
	}
}

// Create validates the input, applies defaults, derives the display
// color, rejects duplicate (orderNo, orderYear) pairs, and inserts the
// order. Returns the assigned order id.
func (s *Service) Create(ctx context.Context, input CreateInput) (int64, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Create", trace.WithAttributes(
		attribute.String("order.no", input.OrderNo),
		attribute.String("order.year", input.OrderYear),
	))
	defer span.End()

	order, violations := buildOrder(input)
	if len(violations) > 0 {
		return 0, errorbank.Validation(violations)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	// Fast-path rejection; the unique constraint remains the real guard.
	exists, err := s.repo.Exists(ctx, order.OrderNo, order.OrderYear)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return 0, errorbank.Internal("failed to check order uniqueness", errorbank.WithCause(err))
	}
	if exists {
		return 0, conflictError(order.OrderNo, order.OrderYear)
	}

	order.CreatedAt = time.Now().UTC()
	if err := s.repo.Insert(ctx, order); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return 0, conflictError(order.OrderNo, order.OrderYear)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return 0, errorbank.Internal("failed to create order", errorbank.WithCause(err))
	}

	s.publishOrderCreated(ctx, order)
	return order.ID, nil
}

// Details returns the joined order read model, or a not_found error.
func (s *Service) Details(ctx context.Context, id int64) (*entity.OrderDetails, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Details", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load order details", errorbank.WithCause(err))
	}
	return details, nil
}

// Count returns the total number of orders.
func (s *Service) Count(ctx context.Context) (int, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Count")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	count, err := s.repo.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return 0, errorbank.Internal("failed to count orders", errorbank.WithCause(err))
	}
	return count, nil
}

// buildOrder validates input and assembles the entity with defaults and
// the derived color applied. All violations are reported, not just the
// first.
func buildOrder(input CreateInput) (*entity.Order, []string) {
	var violations []string

	if input.OrderNo == "" {
		violations = append(violations, "orderNo is required")
	}
	if input.OrderYear == "" {
		violations = append(violations, "orderYear is required")
	}

	var orderDate time.Time
	switch {
	case input.OrderDate == "":
		violations = append(violations, "orderDate is required")
	default:
		parsed, err := time.Parse(DateLayout, input.OrderDate)
		if err != nil {
			violations = append(violations, "orderDate must be a valid date (YYYY-MM-DD)")
		} else {
			orderDate = parsed
		}
	}

	var achievedDate *time.Time
	if input.AchievedDate != "" {
		parsed, err := time.Parse(DateLayout, input.AchievedDate)
		if err != nil {
			violations = append(violations, "achievedOrderDate must be a valid date (YYYY-MM-DD)")
		} else {
			achievedDate = &parsed
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}

	notes := input.Notes
	if notes == "" {
		notes = entity.NotesPlaceholder
	}
	finalPrice := input.FinalPrice
	if finalPrice == "" {
		finalPrice = "0"
	}
	procedureID := int64(defaultProcedureID)
	if input.ProcedureID != nil {
		procedureID = *input.ProcedureID
	}
	checkOrderLink := false
	if input.CheckOrderLink != nil {
		checkOrderLink = *input.CheckOrderLink
	}

	return &entity.Order{
		OrderNo:              input.OrderNo,
		OrderYear:            input.OrderYear,
		OrderDate:            orderDate,
		OrderType:            input.OrderType,
		CommitteeID:          input.CommitteeID,
		DepartmentID:         input.DepartmentID,
		MaterialName:         input.MaterialName,
		EstimatorID:          input.EstimatorID,
		ProcedureID:          procedureID,
		OrderStatus:          input.OrderStatus,
		Notes:                notes,
		AchievedDate:         achievedDate,
		RequestedDestination: input.RequestedDestination,
		FinalPrice:           finalPrice,
		CurrencyType:         input.CurrencyType,
		Color:                entity.ColorForStatus(input.OrderStatus),
		CheckOrderLink:       checkOrderLink,
		UserID:               input.UserID,
	}, nil
}

func conflictError(orderNo, orderYear string) *errorbank.AppError {
	return errorbank.Conflict(
		fmt.Sprintf("order %s/%s already exists", orderNo, orderYear),
		errorbank.WithDetail("orderNo", orderNo),
		errorbank.WithDetail("orderYear", orderYear),
	)
}

func (s *Service) publishOrderCreated(ctx context.Context, order *entity.Order) {
	if !s.opts.PublishEnabled || s.publisher == nil {
		return
	}
	event := OrderCreatedEvent{
		OrderID:   order.ID,
		OrderNo:   order.OrderNo,
		OrderYear: order.OrderYear,
		Status:    order.OrderStatus,
		Color:     order.Color,
		CreatedAt: order.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("marshal order created", zap.Error(err))
		}
		return
	}
	key := []byte(fmt.Sprintf("order-%d", order.ID))
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		if s.logger != nil {
			s.logger.Error("publish order created", zap.Error(err))
		}
	}
}

// OrderCreatedEvent is emitted when a new order is persisted.
type OrderCreatedEvent struct {
	OrderID   int64     `json:"orderID"`
	OrderNo   string    `json:"orderNo"`
	OrderYear string    `json:"orderYear"`
	Status    string    `json:"orderStatus"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
