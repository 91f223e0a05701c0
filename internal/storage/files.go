package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/fx"

	"github.com/procurehq/procure/internal/config"
)

// Module provides the attachment file store to Fx.
var Module = fx.Provide(NewFileStore)

// FileStore writes order attachments under a configured base directory
// using the deterministic {orderNo}.{orderYear}.{seq}.pdf layout.
type FileStore struct {
	baseDir string
}

// NewFileStore builds a FileStore rooted at the configured directory.
func NewFileStore(cfg config.Config) *FileStore {
	return &FileStore{baseDir: cfg.Storage.AttachmentDir}
}

// PathFor derives the attachment path for an order and sequence number.
func (s *FileStore) PathFor(orderNo, orderYear string, seq int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s.%s.%d.pdf", orderNo, orderYear, seq))
}

// Save creates the base directory when absent and writes the file bytes.
func (s *FileStore) Save(path string, data []byte) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("create attachment dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write attachment: %w", err)
	}
	return nil
}

// Remove deletes a previously written file. Missing files are not an error;
// the compensation path may run after a partial write.
func (s *FileStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove attachment: %w", err)
	}
	return nil
}

var unsafeSegment = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeSegment reduces untrusted input to a path-safe filename segment:
// separators and shell-hostile characters are dropped, leading dots trimmed.
func SafeSegment(s string) string {
	s = strings.TrimSpace(s)
	s = unsafeSegment.ReplaceAllString(s, "")
	return strings.TrimLeft(s, ".")
}
