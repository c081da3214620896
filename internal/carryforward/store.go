package carryforward

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// Store supplies prior-year carryforward balances and accepts updated
// ones. Implementations keep no history: this year's output overwrites
// next year's input.
type Store interface {
	Load(year int) (domain.CarryforwardState, error)
	Save(year int, state domain.CarryforwardState) error
}

// FileStore keeps one YAML file per tax year in a directory. A missing
// file means no prior computation and loads as the zero state.
type FileStore struct {
	Dir string
}

// NewFileStore creates a file-backed store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (fs *FileStore) path(year int) string {
	return filepath.Join(fs.Dir, fmt.Sprintf("%d_carryforward.yaml", year))
}

// Load reads the carryforward balances feeding into a tax year. The
// whole state is read before any computation starts; a computation
// never observes a partially updated record.
func (fs *FileStore) Load(year int) (domain.CarryforwardState, error) {
	data, err := os.ReadFile(fs.path(year))
	if os.IsNotExist(err) {
		return domain.ZeroCarryforward(), nil
	}
	if err != nil {
		return domain.CarryforwardState{}, fmt.Errorf("failed to read carryforward file %s: %w", fs.path(year), err)
	}

	var state domain.CarryforwardState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return domain.CarryforwardState{}, fmt.Errorf("failed to parse carryforward file %s: %w", fs.path(year), err)
	}
	if err := state.Validate(); err != nil {
		return domain.CarryforwardState{}, fmt.Errorf("carryforward file %s: %w", fs.path(year), err)
	}
	return state, nil
}

// Save writes the balances feeding into a tax year, overwriting any
// previous record for that year.
func (fs *FileStore) Save(year int, state domain.CarryforwardState) error {
	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create carryforward directory %s: %w", fs.Dir, err)
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode carryforward state: %w", err)
	}
	if err := os.WriteFile(fs.path(year), data, 0o644); err != nil {
		return fmt.Errorf("failed to write carryforward file %s: %w", fs.path(year), err)
	}
	return nil
}
