package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-flight-booking/internal/config"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/utils"
)

// allowedPhotoExtensions lists the extensions kept on stored photo names.
// Any other extension is dropped.
var allowedPhotoExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// filePhotoStorage is the filesystem-backed implementation of
// [PhotoStorage]. Photos are written flat into dir under UUID names.
type filePhotoStorage struct {
	dir     string
	maxSize int64
	names   *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewFilePhotoStorage creates the photo directory if needed and returns a
// [PhotoStorage] writing into it.
func NewFilePhotoStorage(cfg config.Files, logger *logger.Logger) (PhotoStorage, error) {
	if err := os.MkdirAll(cfg.PhotoDir, 0o750); err != nil {
		logger.Err(err).Str("func", "NewFilePhotoStorage").Str("dir", cfg.PhotoDir).Msg("error creating photo directory")
		return nil, fmt.Errorf("error creating photo directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.PhotoDir).Msg("creating photo storage")
	return &filePhotoStorage{
		dir:     cfg.PhotoDir,
		maxSize: cfg.MaxPhotoSize,
		names:   utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func (s *filePhotoStorage) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name := s.names.Generate() + photoExtension(originalName)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		log.Err(err).Str("func", "*filePhotoStorage.Save").Msg("error creating photo file")
		return "", fmt.Errorf("error creating photo file: %w", err)
	}

	src := r
	if s.maxSize > 0 {
		// one extra byte tells an exact fit apart from an oversized upload
		src = io.LimitReader(r, s.maxSize+1)
	}

	written, err := io.Copy(f, src)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && s.maxSize > 0 && written > s.maxSize {
		err = ErrPhotoTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		log.Err(err).Str("func", "*filePhotoStorage.Save").Int64("written", written).Msg("error writing photo file")
		if errors.Is(err, ErrPhotoTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("error writing photo file: %w", err)
	}

	log.Debug().Str("func", "*filePhotoStorage.Save").Str("photo", name).Int64("size", written).Msg("photo saved")
	return name, nil
}

func (s *filePhotoStorage) Delete(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return ErrInvalidPhotoName
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*filePhotoStorage.Delete").Str("photo", name).Msg("error removing photo file")
		return fmt.Errorf("error removing photo file: %w", err)
	}

	return nil
}

func photoExtension(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedPhotoExtensions[ext]; ok {
		return ext
	}
	return ""
}
