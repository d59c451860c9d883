package scoreboard

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore 单个 JSON 数组文件，写入时整体读-改-写
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore 目录不存在则创建，文件不存在则写入 "[]"
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create scoreboard dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("init scoreboard file: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) Append(ctx context.Context, e Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	// 先写临时文件再 rename，避免写一半
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write scoreboard: %w", err)
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) List(ctx context.Context) ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) read() ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read scoreboard: %w", err)
	}
	entries := []Entry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode scoreboard: %w", err)
	}
	return entries, nil
}
