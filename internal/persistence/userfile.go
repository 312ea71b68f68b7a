package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/vgu-mess/mess-portal/internal/domain"
)

// UserFile persists the email -> UserRecord mapping as a single JSON object.
type UserFile struct {
	path   string
	logger *zap.Logger
}

// NewUserFile returns a store backed by the file at path.
func NewUserFile(path string, logger *zap.Logger) *UserFile {
	return &UserFile{path: path, logger: logger}
}

// Path returns the backing file location.
func (f *UserFile) Path() string {
	return f.path
}

// Load reads every record. A missing file yields an empty mapping; a file
// that exists but cannot be read or decoded is an ErrStorageLoadFailure.
func (f *UserFile) Load() (map[string]domain.UserRecord, error) {
	content, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Info("users file not found; starting with empty store", zap.String("path", f.path))
		return map[string]domain.UserRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageLoadFailure, f.path, err)
	}

	var users map[string]domain.UserRecord
	if err := json.Unmarshal(content, &users); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageLoadFailure, f.path, err)
	}
	if users == nil {
		// a literal "null" document
		users = map[string]domain.UserRecord{}
	}
	for email, u := range users {
		u.Email = email
		users[email] = u
	}

	f.logger.Info("users loaded", zap.String("path", f.path), zap.Int("count", len(users)))
	return users, nil
}

// Save overwrites the file with users. The new content is written to a
// temporary sibling and renamed into place so the previous file survives a
// failed write.
func (f *UserFile) Save(users map[string]domain.UserRecord) error {
	if users == nil {
		users = map[string]domain.UserRecord{}
	}
	content, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp users file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write users: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync users: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close users: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace users file: %w", err)
	}

	f.logger.Debug("users saved", zap.String("path", f.path), zap.Int("count", len(users)))
	return nil
}

// Ping checks that the directory holding the users file is reachable.
func (f *UserFile) Ping() error {
	info, err := os.Stat(filepath.Dir(f.path))
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", filepath.Dir(f.path))
	}
	return nil
}
