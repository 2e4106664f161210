// Package registry resolves the model argument given on the command line to
// a concrete model file on disk.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aihostd/internal/common/fsutil"
	"aihostd/pkg/types"
)

// Resolve turns nameOrPath into a Model. A path to an existing file is used
// as-is with the basename (sans extension) as ID. A bare name is matched
// against *.gguf files under modelsDir: exact filename, filename without
// extension, then case-insensitive prefix.
func Resolve(nameOrPath, modelsDir string) (types.Model, error) {
	expanded, err := fsutil.ExpandHome(nameOrPath)
	if err != nil {
		return types.Model{}, err
	}
	if fsutil.IsRegularFile(expanded) {
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return types.Model{}, fmt.Errorf("abs path: %w", err)
		}
		id := idFromFilename(filepath.Base(abs))
		return types.Model{ID: id, Name: id, Path: abs}, nil
	}

	models, err := LoadDir(modelsDir)
	if err != nil {
		return types.Model{}, fmt.Errorf("resolve %q: %w", nameOrPath, err)
	}
	want := strings.ToLower(nameOrPath)
	// Exact filename or extensionless match wins over a prefix match.
	var prefix *types.Model
	for i := range models {
		m := models[i]
		base := strings.ToLower(filepath.Base(m.Path))
		if base == want || strings.ToLower(m.ID) == want {
			return m, nil
		}
		if prefix == nil && strings.HasPrefix(base, want) {
			prefix = &models[i]
		}
	}
	if prefix != nil {
		return *prefix, nil
	}
	return types.Model{}, fmt.Errorf("model %q not found (no such file, and no match under %s)", nameOrPath, modelsDir)
}

// LoadDir scans a directory for *.gguf files and builds a model list from
// filenames. ID is the filename without extension; Path is absolute.
func LoadDir(dir string) ([]types.Model, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".gguf") {
			continue
		}
		id := idFromFilename(name)
		models = append(models, types.Model{ID: id, Name: id, Path: filepath.Join(abs, name)})
	}
	return models, nil
}

func idFromFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
