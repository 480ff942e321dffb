package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

var errCorruptFile = errors.New("storage file is not a JSON object")

// FileStorageGateway keeps every key in one JSON object on disk
type FileStorageGateway struct {
	mu   sync.Mutex
	path string
}

var _ StorageGateway = (*FileStorageGateway)(nil)

func NewFileStorageGateway(path string) *FileStorageGateway {
	return &FileStorageGateway{path: path}
}

func (gateway *FileStorageGateway) Get(_ context.Context, key string) (string, bool, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	values, err := gateway.read()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (gateway *FileStorageGateway) Set(_ context.Context, key string, value string) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	values, err := gateway.read()
	if errors.Is(err, errCorruptFile) {
		// the unreadable file is kept next to the new one
		values, err = make(map[string]string), gateway.setAside()
	}
	if err != nil {
		return err
	}
	values[key] = value

	content, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(gateway.path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	// write then rename so readers never see a half written file
	tmp := gateway.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmp, gateway.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}

func (gateway *FileStorageGateway) Health(_ context.Context) model.ComponentHealthStatus {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if _, err := gateway.read(); err != nil {
		return downStatus("file", err)
	}
	status := upStatus("file")
	status.Details["path"] = gateway.path
	return status
}

func (gateway *FileStorageGateway) read() (map[string]string, error) {
	content, err := os.ReadFile(gateway.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	values := make(map[string]string)
	if len(content) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errCorruptFile, gateway.path, err)
	}
	return values, nil
}

func (gateway *FileStorageGateway) setAside() error {
	backup := gateway.path + ".corrupt"
	if err := os.Rename(gateway.path, backup); err != nil {
		return fmt.Errorf("failed to move corrupt storage file aside: %w", err)
	}
	log.Warn(msg.GetMessage("storage.file.set-aside", gateway.path, backup))
	return nil
}
