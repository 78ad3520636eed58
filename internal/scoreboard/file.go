package scoreboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const fileName = "highscores.json"

// FileStore keeps the leaderboard as a JSON array in a single file,
// replaced atomically on every save.
type FileStore struct {
	path string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("scoreboard: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scoreboard: create %s: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, fileName)}, nil
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Best() (*Record, error) {
	list, err := f.load()
	if err != nil || len(list) == 0 {
		return nil, err
	}
	best := top(list, 1)[0]
	return &best, nil
}

func (f *FileStore) Save(rec Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	list, err := f.load()
	if err != nil {
		return err
	}
	list = upsert(list, rec)

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) Top(n int) ([]Record, error) {
	list, err := f.load()
	if err != nil {
		return nil, err
	}
	return top(list, n), nil
}

// load accepts a JSON array of records or a single record object. A
// missing file is an empty board.
func (f *FileStore) load() ([]Record, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var arr []Record
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr, nil
	}
	var obj Record
	if err := json.Unmarshal(data, &obj); err == nil && obj.Score >= 0 {
		return []Record{obj}, nil
	}
	return nil, fmt.Errorf("scoreboard: %s is not a leaderboard", f.path)
}
