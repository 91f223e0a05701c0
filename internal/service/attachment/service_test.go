package attachment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/procurehq/procure/internal/entity"
	"github.com/procurehq/procure/pkg/errorbank"
)

type fakeRepo struct {
	seq       int
	seqErr    error
	insertErr error
	inserted  []*entity.Attachment
	nextID    int64
}

func (f *fakeRepo) NextSeq(ctx context.Context, orderID int64) (int, error) {
	if f.seqErr != nil {
		return 0, f.seqErr
	}
	f.seq++
	return f.seq, nil
}

func (f *fakeRepo) Insert(ctx context.Context, attachment *entity.Attachment) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	attachment.ID = f.nextID
	f.inserted = append(f.inserted, attachment)
	return nil
}

type fakeFiles struct {
	saved   map[string][]byte
	saveErr error
	removed []string
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{saved: make(map[string][]byte)}
}

func (f *fakeFiles) PathFor(orderNo, orderYear string, seq int) string {
	return fmt.Sprintf("/pdfs/%s.%s.%d.pdf", orderNo, orderYear, seq)
}

func (f *fakeFiles) Save(path string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[path] = data
	return nil
}

func (f *fakeFiles) Remove(path string) error {
	delete(f.saved, path)
	f.removed = append(f.removed, path)
	return nil
}

func validUpload() AttachInput {
	return AttachInput{
		OrderID:   5,
		OrderNo:   "77",
		OrderYear: "2024",
		FileName:  "scan.pdf",
		Data:      []byte("%PDF-1.4"),
	}
}

func TestAttachSequencesUploads(t *testing.T) {
	r := &fakeRepo{}
	files := newFakeFiles()
	svc := NewService(r, files, zap.NewNop(), 0)

	var paths []string
	for i := 0; i < 3; i++ {
		attachment, err := svc.Attach(context.Background(), validUpload())
		require.NoError(t, err)
		require.Equal(t, i+1, attachment.Seq)
		paths = append(paths, attachment.FilePath)
	}

	require.Equal(t, "/pdfs/77.2024.1.pdf", paths[0])
	require.Equal(t, "/pdfs/77.2024.2.pdf", paths[1])
	require.Equal(t, "/pdfs/77.2024.3.pdf", paths[2])
	require.Len(t, files.saved, 3)
	require.Len(t, r.inserted, 3)
}

func TestAttachRemovesFileWhenInsertFails(t *testing.T) {
	r := &fakeRepo{insertErr: errors.New("insert failed")}
	files := newFakeFiles()
	svc := NewService(r, files, zap.NewNop(), 0)

	_, err := svc.Attach(context.Background(), validUpload())
	require.Error(t, err)
	require.Equal(t, errorbank.KindInternal, errorbank.From(err).Kind())

	require.Empty(t, files.saved)
	require.Equal(t, []string{"/pdfs/77.2024.1.pdf"}, files.removed)
}

func TestAttachKeepsFileWhenInsertSucceeds(t *testing.T) {
	r := &fakeRepo{}
	files := newFakeFiles()
	svc := NewService(r, files, zap.NewNop(), 0)

	attachment, err := svc.Attach(context.Background(), validUpload())
	require.NoError(t, err)
	require.Empty(t, files.removed)
	require.Contains(t, files.saved, attachment.FilePath)
}

func TestAttachValidation(t *testing.T) {
	r := &fakeRepo{}
	files := newFakeFiles()
	svc := NewService(r, files, zap.NewNop(), 0)

	_, err := svc.Attach(context.Background(), AttachInput{FileName: "scan.txt"})
	require.Error(t, err)

	violations := errorbank.Violations(err)
	require.Contains(t, violations, "orderID is required")
	require.Contains(t, violations, "orderNo is required")
	require.Contains(t, violations, "orderYear is required")
	require.Contains(t, violations, "file must not be empty")
	require.Contains(t, violations, "only PDF files are allowed")
	require.Empty(t, files.saved)
	require.Empty(t, r.inserted)
}

func TestAttachSanitizesPathSegments(t *testing.T) {
	r := &fakeRepo{}
	files := newFakeFiles()
	svc := NewService(r, files, zap.NewNop(), 0)

	input := validUpload()
	input.OrderNo = "../77"
	input.OrderYear = "20 24"

	attachment, err := svc.Attach(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, "77", attachment.OrderNo)
	require.Equal(t, "2024", attachment.OrderYear)
	require.Equal(t, "/pdfs/77.2024.1.pdf", attachment.FilePath)
}

func TestAttachSeqFailureDoesNotWrite(t *testing.T) {
	r := &fakeRepo{seqErr: errors.New("select failed")}
	files := newFakeFiles()
	svc := NewService(r, files, zap.NewNop(), 0)

	_, err := svc.Attach(context.Background(), validUpload())
	require.Error(t, err)
	require.Empty(t, files.saved)
}
