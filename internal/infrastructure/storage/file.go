package storage

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/eridiumdev/clickpay-web/internal/entity"
)

type FileStorage struct {
	file  *os.File
	mutex sync.Mutex
}

// NewFileStorage with an empty path gives a storage that keeps nothing.
func NewFileStorage(filepath string) (*FileStorage, error) {
	if filepath == "" {
		return &FileStorage{}, nil
	}

	file, err := os.OpenFile(filepath, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "open backup file")
	}

	return &FileStorage{
		file: file,
	}, nil
}

func (fs *FileStorage) Backup(ctx context.Context, sessions []*entity.Session) error {
	if fs.file == nil {
		return nil
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	// Reset file
	err := fs.file.Truncate(0)
	if err != nil {
		return errors.Wrap(err, "truncate backup file")
	}
	_, err = fs.file.Seek(0, io.SeekStart)
	if err != nil {
		return errors.Wrap(err, "seek backup file")
	}

	return json.NewEncoder(fs.file).Encode(sessions)
}

func (fs *FileStorage) Restore(ctx context.Context) ([]*entity.Session, error) {
	var sessions []*entity.Session

	if fs.file == nil {
		return sessions, nil
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	_, err := fs.file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "seek backup file")
	}

	err = json.NewDecoder(fs.file).Decode(&sessions)
	if errors.Is(err, io.EOF) {
		// Fresh file
		return sessions, nil
	}

	return sessions, err
}

func (fs *FileStorage) Close(ctx context.Context) error {
	if fs.file == nil {
		return nil
	}
	return fs.file.Close()
}
