package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glptrst/platform-game/internal/levels/formats"
)

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
	dir  string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root), dir: "."}
}

// NewFSLoader creates a loader reading dir inside fsys.
func NewFSLoader(fsys fs.FS, dir string) *Loader {
	return &Loader{fsys: fsys, dir: dir}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Plan, error) {
	var plans []Plan

	err := fs.WalkDir(l.fsys, l.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		plan, err := l.loadFS(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		plans = append(plans, plan)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.displayPath(l.dir), err)
	}

	// Sort by ID for determinism
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].ID < plans[j].ID
	})

	return plans, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Plan, error) {
	plans, err := l.LoadAll()
	if err != nil {
		return Plan{}, err
	}

	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}

	return Plan{}, fmt.Errorf("level not found: %s", id)
}

func (l *Loader) loadFS(p string) (Plan, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Plan{}, fmt.Errorf("reading file %s: %w", l.displayPath(p), err)
	}
	return parse(data, p, l.displayPath(p))
}

func (l *Loader) displayPath(p string) string {
	if l.Root == "" {
		return p
	}
	return filepath.Join(l.Root, filepath.FromSlash(p))
}

// LoadFile loads and validates a single level file from disk.
func LoadFile(filePath string) (Plan, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Plan{}, fmt.Errorf("reading file %s: %w", filePath, err)
	}
	return parse(data, filePath, filePath)
}

// parse decodes and validates level data; name selects the format.
func parse(data []byte, name, filePath string) (Plan, error) {
	parsed, err := parseByExtension(data, name)
	if err != nil {
		return Plan{}, fmt.Errorf("parsing file %s: %w", filePath, err)
	}

	plan := fromFormat(parsed, filePath)
	if err := plan.Validate(); err != nil {
		return Plan{}, fmt.Errorf("invalid level in %s: %w", filePath, err)
	}
	return plan, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, name string) (formats.Level, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt":
		return formats.ParseText(name, data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
