package formats

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseText parses a bare text plan. The level ID is the file name without
// its extension.
func ParseText(path string, data []byte) (Level, error) {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	rows := SplitPlan(string(data))
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("%s: %w", id, ErrNoRows)
	}
	return Level{ID: id, Name: id, Rows: rows}, nil
}
