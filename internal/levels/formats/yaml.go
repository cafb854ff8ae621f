// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoRows is returned for a level file without a plan.
var ErrNoRows = errors.New("level has no rows")

// YAMLLevel represents the YAML structure for a level file.
// The plan is given either as a block string or as a list of rows.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Plan     string            `yaml:"plan,omitempty"`
	Rows     []string          `yaml:"rows,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("level has no id")
	}

	rows := yl.Rows
	if len(rows) == 0 {
		rows = SplitPlan(yl.Plan)
	}
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("%s: %w", yl.ID, ErrNoRows)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Rows:     rows,
		Metadata: yl.Metadata,
	}, nil
}

// SplitPlan turns a multi-line text plan into rows. Surrounding blank lines
// and per-line indentation are dropped.
func SplitPlan(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.TrimSpace(line))
	}
	return rows
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
