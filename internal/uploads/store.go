package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrFileTooLarge marks an attachment over the configured size limit.
var ErrFileTooLarge = errors.New("uploaded file exceeds size limit")

// DefaultMaxBytes is the upload size limit when none is configured.
const DefaultMaxBytes = 10 << 20 // 10 MiB

// Store writes logo uploads into a fixed directory. It only stores files and
// hands back the generated filename; building the externally reachable URL is
// the handler's job, since only the handler knows the request's scheme and
// host.
type Store struct {
	Dir      string
	MaxBytes int64
}

func NewStore(dir string, maxBytes int64) *Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Store{Dir: dir, MaxBytes: maxBytes}
}

// Save writes one attachment to disk under a collision-resistant name,
// "<unix-millis>-<uuid><ext>", keeping the original extension. A file exactly
// at the limit is accepted; anything larger is rejected with ErrFileTooLarge
// before a byte is written. Concurrent uploads sharing an original filename
// never overwrite each other.
func (s *Store) Save(header *multipart.FileHeader) (string, error) {
	if header.Size > s.MaxBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, header.Size, s.MaxBytes)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", header.Filename, err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload %q: %w", name, err)
	}
	return name, nil
}
