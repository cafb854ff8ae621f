package levels

import (
	"embed"
	"fmt"
	"sync"
)

// SampleID is the ID of the introductory sample level.
const SampleID = "00-sample"

//go:embed builtin/*.yaml
var builtinFS embed.FS

var loadBuiltin = sync.OnceValues(func() ([]Plan, error) {
	plans, err := NewFSLoader(builtinFS, "builtin").LoadAll()
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("no built-in levels")
	}
	return plans, nil
})

// Builtin returns the built-in campaign, in play order.
func Builtin() ([]Plan, error) {
	plans, err := loadBuiltin()
	if err != nil {
		return nil, err
	}
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out, nil
}

// BuiltinByID returns a single built-in level.
func BuiltinByID(id string) (Plan, error) {
	plans, err := loadBuiltin()
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
