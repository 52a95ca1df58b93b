// Package storage persists uploaded binary assets to disk and generates
// profile picture derivatives.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hireflow/internal/apperrors"
	"hireflow/internal/metrics"
)

// Category classifies an uploaded asset. Profile pictures get a derivative;
// everything else is stored unmodified.
type Category string

const (
	CategoryCV             Category = "cv"
	CategoryCoverLetter    Category = "cover_letter"
	CategoryProfilePicture Category = "profile_picture"
)

const (
	derivativeSize    = 128
	derivativeQuality = 80
)

// Store writes assets under a single directory and addresses them by an
// opaque locator (the generated file name).
type Store struct {
	dir string
	log *zap.Logger
}

func New(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Save persists the upload and returns its locator. For profile pictures a
// 128x128 cover-cropped JPEG replaces the original; if derivative generation
// fails the original bytes are stored unmodified instead of failing the
// submission.
func (s *Store) Save(filename string, r io.Reader, category Category) (string, error) {
	if category == CategoryProfilePicture {
		return s.saveProfilePicture(filename, r)
	}

	locator := uniqueName(filename)
	if err := s.writeFile(locator, r); err != nil {
		return "", apperrors.NewDependency("Error storing file", err)
	}
	metrics.AssetsStored.WithLabelValues(string(category)).Inc()
	return locator, nil
}

func (s *Store) saveProfilePicture(filename string, r io.Reader) (string, error) {
	// Buffer the upload so the original is still available when
	// derivative generation fails partway through decoding.
	data, err := io.ReadAll(r)
	if err != nil {
		return "", apperrors.NewDependency("Error reading upload", err)
	}

	locator, err := s.saveDerivative(data)
	if err == nil {
		metrics.AssetsStored.WithLabelValues(string(CategoryProfilePicture)).Inc()
		return locator, nil
	}

	s.log.Warn("profile picture derivative generation failed, storing original",
		zap.String("filename", filename),
		zap.Error(err))
	metrics.DerivativeFallbacks.Inc()

	locator = uniqueName(filename)
	if err := s.writeFile(locator, bytes.NewReader(data)); err != nil {
		return "", apperrors.NewDependency("Error storing file", err)
	}
	metrics.AssetsStored.WithLabelValues(string(CategoryProfilePicture)).Inc()
	return locator, nil
}

// saveDerivative decodes, cover-crops and recompresses the image.
func (s *Store) saveDerivative(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	thumb := imaging.Fill(img, derivativeSize, derivativeSize, imaging.Center, imaging.Lanczos)

	locator := fmt.Sprintf("compressed-%d-%s.jpg", time.Now().UnixMilli(), shortID())
	path := filepath.Join(s.dir, locator)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create derivative: %w", err)
	}

	if err := imaging.Encode(f, thumb, imaging.JPEG, imaging.JPEGQuality(derivativeQuality)); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("encode derivative: %w", err)
	}
	return locator, f.Close()
}

func (s *Store) writeFile(locator string, r io.Reader) error {
	path := filepath.Join(s.dir, locator)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Read returns the asset bytes and a content type derived from the locator
// extension.
func (s *Store) Read(locator string) ([]byte, string, error) {
	if !validLocator(locator) {
		return nil, "", apperrors.NewNotFound("File not found")
	}
	data, err := os.ReadFile(filepath.Join(s.dir, locator))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", apperrors.NewNotFound("File not found")
		}
		return nil, "", apperrors.NewDependency("Error reading file", err)
	}
	return data, contentTypeFor(locator), nil
}

// Remove deletes the asset. Missing files are not an error.
func (s *Store) Remove(locator string) error {
	if !validLocator(locator) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, locator))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// validLocator rejects anything that could escape the upload directory.
func validLocator(locator string) bool {
	if locator == "" || locator == "." || locator == ".." {
		return false
	}
	return !strings.ContainsAny(locator, "/\\")
}

func contentTypeFor(locator string) string {
	if ct := mime.TypeByExtension(filepath.Ext(locator)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// uniqueName derives a destination name from the upload time and original
// file name. The random component keeps concurrent uploads of the same file
// from clobbering each other.
func uniqueName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "" || base == "/" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), shortID(), base)
}

func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
