package committee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procurehq/procure/internal/entity"
	"github.com/procurehq/procure/pkg/errorbank"
)

type fakeRepo struct {
	rows     []entity.Committee
	inserted []*entity.Committee
}

func (f *fakeRepo) List(ctx context.Context) ([]entity.Committee, error) {
	return f.rows, nil
}

func (f *fakeRepo) Insert(ctx context.Context, committee *entity.Committee) error {
	committee.ID = int64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, committee)
	return nil
}

func TestCreateReturnsAssignedID(t *testing.T) {
	r := &fakeRepo{}
	svc := NewService(r, 0)

	id, err := svc.Create(context.Background(), "general purchasing committee")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestCreateRequiresName(t *testing.T) {
	r := &fakeRepo{}
	svc := NewService(r, 0)

	_, err := svc.Create(context.Background(), "")
	require.Error(t, err)
	require.Equal(t, errorbank.KindBadRequest, errorbank.From(err).Kind())
	require.Empty(t, r.inserted)
}

func TestList(t *testing.T) {
	r := &fakeRepo{rows: []entity.Committee{{ID: 1, Name: "general purchasing committee"}}}
	svc := NewService(r, 0)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
