package storage

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/takak2166/arc2bookmarks/internal/errors"
	"github.com/takak2166/arc2bookmarks/internal/logger"
)

//go:generate mockgen -source=storage.go -destination=mock_storage/mock_storage.go -package=mock_storage
type Store interface {
	ReadSource(path string) ([]byte, error)
	WriteOutput(path, text string) error
}

// FileStore reads and writes whole files on the local filesystem
type FileStore struct{}

// NewFileStore creates a new FileStore
func NewFileStore() *FileStore {
	return &FileStore{}
}

// ReadSource reads the whole source file into memory
func (s *FileStore) ReadSource(path string) ([]byte, error) {
	logger.Debug("Reading Arc sidebar file", map[string]interface{}{
		"filepath": path,
	})

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "source file not found")
		}
		return nil, errors.Wrap(errors.ErrCodeInputRead, err, "failed to open source file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputRead, err, "failed to read source file")
	}

	return data, nil
}

// WriteOutput replaces the file at path with text, encoded as UTF-8
func (s *FileStore) WriteOutput(path, text string) (err error) {
	logger.Debug("Writing bookmark file", map[string]interface{}{
		"filepath": path,
		"bytes":    len(text),
	})

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "failed to create output file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeOutputWrite, cerr, "failed to close output file")
		}
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "failed to write output file")
	}

	return nil
}
