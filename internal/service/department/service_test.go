package department

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procurehq/procure/internal/entity"
	"github.com/procurehq/procure/pkg/errorbank"
)

type fakeRepo struct {
	rows      []entity.Department
	listErr   error
	insertErr error
	inserted  []*entity.Department
}

func (f *fakeRepo) ListByCommittee(ctx context.Context, committeeID int64) ([]entity.Department, error) {
	return f.rows, f.listErr
}

func (f *fakeRepo) Insert(ctx context.Context, department *entity.Department) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, department)
	return nil
}

func TestCreateStoresCallerAssignedID(t *testing.T) {
	r := &fakeRepo{}
	svc := NewService(r, 0)

	err := svc.Create(context.Background(), CreateInput{ID: 101, Name: "electrical department", CommitteeID: 1})
	require.NoError(t, err)
	require.Len(t, r.inserted, 1)
	require.Equal(t, int64(101), r.inserted[0].ID)
	require.Equal(t, int64(1), r.inserted[0].CommitteeID)
}

func TestCreateValidation(t *testing.T) {
	r := &fakeRepo{}
	svc := NewService(r, 0)

	err := svc.Create(context.Background(), CreateInput{})
	require.Error(t, err)

	violations := errorbank.Violations(err)
	require.Contains(t, violations, "deID must be a positive integer")
	require.Contains(t, violations, "department name is required")
	require.Contains(t, violations, "coID must be a positive integer")
	require.Empty(t, r.inserted)
}

func TestListByCommittee(t *testing.T) {
	r := &fakeRepo{rows: []entity.Department{{ID: 101, Name: "electrical department", CommitteeID: 1}}}
	svc := NewService(r, 0)

	rows, err := svc.ListByCommittee(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(101), rows[0].ID)
}
