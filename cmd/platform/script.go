package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/glptrst/platform-game/internal/sim"
)

// scriptStep holds one intent for a number of ticks.
type scriptStep struct {
	Intent sim.Intent
	Ticks  int
}

// parseScript reads steps like "right:30 right+jump:2 idle:10".
// Steps are separated by spaces or commas; keys are left, right, jump (or up)
// and idle, joined with '+'.
func parseScript(text string) ([]scriptStep, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	steps := make([]scriptStep, 0, len(fields))
	for _, field := range fields {
		keys, count, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("script step %q: missing \":ticks\"", field)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("script step %q: ticks must be a positive integer", field)
		}

		var in sim.Intent
		for _, key := range strings.Split(keys, "+") {
			switch strings.ToLower(key) {
			case "left":
				in.Left = true
			case "right":
				in.Right = true
			case "jump", "up":
				in.Up = true
			case "idle":
			default:
				return nil, fmt.Errorf("script step %q: unknown key %q", field, key)
			}
		}
		steps = append(steps, scriptStep{Intent: in, Ticks: ticks})
	}
	return steps, nil
}

// intentAt returns the scripted intent for a tick; past the end it is idle.
func intentAt(steps []scriptStep, tick int) sim.Intent {
	for _, st := range steps {
		if tick < st.Ticks {
			return st.Intent
		}
		tick -= st.Ticks
	}
	return sim.Intent{}
}

// runScript advances s until it ends or maxTicks pass. trace, if set, sees
// every state after its tick number.
func runScript(s *sim.State, dt float64, steps []scriptStep, maxTicks int, trace func(tick int, s *sim.State)) (*sim.State, int, error) {
	tick := 0
	for tick < maxTicks && !s.Status().Terminal() {
		next, err := s.Update(dt, intentAt(steps, tick))
		if err != nil {
			return s, tick, fmt.Errorf("tick %d: %w", tick, err)
		}
		s = next
		tick++
		if trace != nil {
			trace(tick, s)
		}
	}
	return s, tick, nil
}
