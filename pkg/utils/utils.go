package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ReservationCode(t time.Time, seq int64) string
	ValidateDocumentFile(file *multipart.FileHeader) error
}

type utils struct {
	maxFileSize     int64
	documentFormats []string
}

func New() IUtils {
	return &utils{
		maxFileSize:     5 * 1024 * 1024,
		documentFormats: []string{".txt", ".md"},
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ReservationCode renders the human readable reservation number read back to
// callers, e.g. RES-20261018-0042.
func (u *utils) ReservationCode(t time.Time, seq int64) string {
	return fmt.Sprintf("RES-%s-%04d", t.Format("20060102"), seq)
}

func (u *utils) ValidateDocumentFile(file *multipart.FileHeader) error {
	if file == nil {
		return ErrNoFile
	}

	if file.Size > u.maxFileSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	for _, allowed := range u.documentFormats {
		if ext == allowed {
			return nil
		}
	}

	return ErrUnsupportedFile
}
