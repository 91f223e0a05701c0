package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/procurehq/procure/internal/entity"
	repo "github.com/procurehq/procure/internal/repository/order"
	"github.com/procurehq/procure/pkg/errorbank"
)

type fakeRepo struct {
	exists    bool
	existsErr error
	insertErr error
	inserted  []*entity.Order
	nextID    int64

	details    *entity.OrderDetails
	detailsErr error
	count      int
	countErr   error
}

func (f *fakeRepo) Insert(ctx context.Context, order *entity.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	order.ID = f.nextID
	f.inserted = append(f.inserted, order)
	return nil
}

func (f *fakeRepo) Exists(ctx context.Context, orderNo, orderYear string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeRepo) GetDetails(ctx context.Context, id int64) (*entity.OrderDetails, error) {
	return f.details, f.detailsErr
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) {
	return f.count, f.countErr
}

func newTestService(r Repository) *Service {
	return NewService(r, zap.NewNop(), nil, Options{})
}

func validInput() CreateInput {
	return CreateInput{
		OrderNo:   "77",
		OrderYear: "2024",
		OrderDate: "2024-03-15",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	r := &fakeRepo{}
	svc := newTestService(r)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Len(t, r.inserted, 1)

	got := r.inserted[0]
	require.Equal(t, entity.NotesPlaceholder, got.Notes)
	require.Equal(t, "0", got.FinalPrice)
	require.Equal(t, int64(1), got.ProcedureID)
	require.False(t, got.CheckOrderLink)
	require.Equal(t, entity.ColorYellow, got.Color)
	require.False(t, got.CreatedAt.IsZero())
}

func TestCreateKeepsProvidedValues(t *testing.T) {
	r := &fakeRepo{}
	svc := newTestService(r)

	procedureID := int64(3)
	checkLink := true
	input := validInput()
	input.Notes = "urgent delivery"
	input.FinalPrice = "1250.50"
	input.ProcedureID = &procedureID
	input.CheckOrderLink = &checkLink
	input.AchievedDate = "2024-04-01"

	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	got := r.inserted[0]
	require.Equal(t, "urgent delivery", got.Notes)
	require.Equal(t, "1250.50", got.FinalPrice)
	require.Equal(t, int64(3), got.ProcedureID)
	require.True(t, got.CheckOrderLink)
	require.NotNil(t, got.AchievedDate)
	require.Equal(t, "2024-04-01", got.AchievedDate.Format(DateLayout))
}

func TestCreateColorDerivation(t *testing.T) {
	cases := []struct {
		status string
		color  string
	}{
		{entity.StatusCompleted, entity.ColorGreen},
		{entity.StatusCancelled, entity.ColorRed},
		{"pending", entity.ColorYellow},
		{"", entity.ColorYellow},
	}

	for _, tc := range cases {
		t.Run("status "+tc.status, func(t *testing.T) {
			r := &fakeRepo{}
			svc := newTestService(r)

			input := validInput()
			input.OrderStatus = tc.status
			_, err := svc.Create(context.Background(), input)
			require.NoError(t, err)
			require.Equal(t, tc.color, r.inserted[0].Color)
		})
	}
}

func TestCreateReportsAllViolations(t *testing.T) {
	r := &fakeRepo{}
	svc := newTestService(r)

	_, err := svc.Create(context.Background(), CreateInput{})
	require.Error(t, err)
	require.Equal(t, errorbank.KindBadRequest, errorbank.From(err).Kind())

	violations := errorbank.Violations(err)
	require.Len(t, violations, 3)
	require.Contains(t, violations, "orderNo is required")
	require.Contains(t, violations, "orderYear is required")
	require.Contains(t, violations, "orderDate is required")
	require.Empty(t, r.inserted)
}

func TestCreateRejectsBadDates(t *testing.T) {
	r := &fakeRepo{}
	svc := newTestService(r)

	input := validInput()
	input.OrderDate = "15/03/2024"
	input.AchievedDate = "not-a-date"

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	violations := errorbank.Violations(err)
	require.Contains(t, violations, "orderDate must be a valid date (YYYY-MM-DD)")
	require.Contains(t, violations, "achievedOrderDate must be a valid date (YYYY-MM-DD)")
	require.Empty(t, r.inserted)
}

func TestCreateConflictOnExistingPair(t *testing.T) {
	r := &fakeRepo{exists: true}
	svc := newTestService(r)

	_, err := svc.Create(context.Background(), validInput())
	require.Error(t, err)
	require.Equal(t, errorbank.KindConflict, errorbank.From(err).Kind())
	require.Empty(t, r.inserted)
}

func TestCreateConflictOnUniqueViolation(t *testing.T) {
	r := &fakeRepo{insertErr: repo.ErrDuplicate}
	svc := newTestService(r)

	_, err := svc.Create(context.Background(), validInput())
	require.Error(t, err)
	require.Equal(t, errorbank.KindConflict, errorbank.From(err).Kind())
}

func TestCreateWrapsRepositoryFailure(t *testing.T) {
	r := &fakeRepo{insertErr: errors.New("connection reset")}
	svc := newTestService(r)

	_, err := svc.Create(context.Background(), validInput())
	require.Error(t, err)
	require.Equal(t, errorbank.KindInternal, errorbank.From(err).Kind())
}

func TestDetailsNotFound(t *testing.T) {
	r := &fakeRepo{detailsErr: repo.ErrNotFound}
	svc := newTestService(r)

	_, err := svc.Details(context.Background(), 99)
	require.Error(t, err)
	require.Equal(t, errorbank.KindNotFound, errorbank.From(err).Kind())
}

func TestDetailsReturnsJoinedRow(t *testing.T) {
	details := &entity.OrderDetails{
		ProcedureName: "direct purchase",
		Committee:     "no committee",
		Department:    "no department",
	}
	details.ID = 7
	details.OrderNo = "77"

	r := &fakeRepo{details: details}
	svc := newTestService(r)

	got, err := svc.Details(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), got.ID)
	require.Equal(t, "no committee", got.Committee)
	require.Equal(t, "no department", got.Department)
}

func TestCount(t *testing.T) {
	r := &fakeRepo{count: 12}
	svc := newTestService(r)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12, count)
}
