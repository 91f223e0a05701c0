package estimator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procurehq/procure/internal/entity"
	repo "github.com/procurehq/procure/internal/repository/estimator"
	"github.com/procurehq/procure/pkg/errorbank"
)

type fakeRepo struct {
	rows      []entity.Estimator
	listErr   error
	insertErr error
	updateErr error
	inserted  []*entity.Estimator
	updated   []*entity.Estimator
}

func (f *fakeRepo) List(ctx context.Context) ([]entity.Estimator, error) {
	return f.rows, f.listErr
}

func (f *fakeRepo) Insert(ctx context.Context, estimator *entity.Estimator) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	estimator.ID = int64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, estimator)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, estimator *entity.Estimator) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, estimator)
	return nil
}

func TestCreateParsesDates(t *testing.T) {
	r := &fakeRepo{}
	svc := NewService(r, 0)

	id, err := svc.Create(context.Background(), UpsertInput{
		Name:      "alice",
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
		Status:    "active",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	got := r.inserted[0]
	require.NotNil(t, got.StartDate)
	require.Equal(t, "2024-01-01", got.StartDate.Format(DateLayout))
	require.NotNil(t, got.EndDate)
	require.Equal(t, "2024-12-31", got.EndDate.Format(DateLayout))
}

func TestCreateRequiresName(t *testing.T) {
	r := &fakeRepo{}
	svc := NewService(r, 0)

	_, err := svc.Create(context.Background(), UpsertInput{StartDate: "bad"})
	require.Error(t, err)

	violations := errorbank.Violations(err)
	require.Contains(t, violations, "estimatorName is required")
	require.Contains(t, violations, "startDate must be a valid date (YYYY-MM-DD)")
	require.Empty(t, r.inserted)
}

func TestUpdateRejectsBadID(t *testing.T) {
	r := &fakeRepo{}
	svc := NewService(r, 0)

	err := svc.Update(context.Background(), 0, UpsertInput{Name: "alice"})
	require.Error(t, err)
	require.Contains(t, errorbank.Violations(err), "estimatorID must be a positive integer")
	require.Empty(t, r.updated)
}

func TestUpdateMissingRow(t *testing.T) {
	r := &fakeRepo{updateErr: repo.ErrNotFound}
	svc := NewService(r, 0)

	err := svc.Update(context.Background(), 42, UpsertInput{Name: "alice"})
	require.Error(t, err)
	require.Equal(t, errorbank.KindNotFound, errorbank.From(err).Kind())
}

func TestUpdateSetsID(t *testing.T) {
	r := &fakeRepo{}
	svc := NewService(r, 0)

	require.NoError(t, svc.Update(context.Background(), 42, UpsertInput{Name: "alice"}))
	require.Len(t, r.updated, 1)
	require.Equal(t, int64(42), r.updated[0].ID)
}
