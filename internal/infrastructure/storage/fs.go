package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/fitcube/internal/domain"
)

// FS stores one JSON file per solution under dir/solutions.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) bucket() string { return filepath.Join(s.dir, "solutions") }

func (s *FS) pathFor(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("invalid solution id %q", id)
	}
	return filepath.Join(s.bucket(), id+".json"), nil
}

func (s *FS) Save(ctx context.Context, sol *domain.Solution) error {
	if sol == nil || sol.ID == "" {
		return errors.New("invalid solution: missing ID")
	}
	target, err := s.pathFor(sol.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sol)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Solution, error) {
	target, err := s.pathFor(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	var out domain.Solution
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", target, err)
	}
	return &out, nil
}

// List returns every readable solution, oldest first. Unreadable or
// foreign files are skipped.
func (s *FS) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	out := []domain.SolutionMeta{}
	ents, err := os.ReadDir(s.bucket())
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, err
	}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.bucket(), name))
		if err != nil {
			continue
		}
		var sol domain.Solution
		if err := json.Unmarshal(data, &sol); err != nil || sol.ID == "" {
			continue
		}
		out = append(out, sol.Meta())
	}
	sortMeta(out)
	return out, nil
}

func sortMeta(m []domain.SolutionMeta) {
	sort.SliceStable(m, func(i, j int) bool {
		if m[i].CreatedAt != m[j].CreatedAt {
			return m[i].CreatedAt < m[j].CreatedAt
		}
		return m[i].ID < m[j].ID
	})
}
