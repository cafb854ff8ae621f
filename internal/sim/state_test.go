package sim_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/sim"
)

var samplePlan = []string{
	"......................",
	"..#................#..",
	"..#..............=.#..",
	"..#.........o.o....#..",
	"..#.@......#####...#..",
	"..#####............#..",
	"......#++++++++++++#..",
	"......##############..",
	"......................",
}

func near(a, b core.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestStartSampleLevel(t *testing.T) {
	g := mustGrid(t, samplePlan...)
	s, err := sim.Start(g)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if g.Width() != 22 || g.Height() != 9 {
		t.Errorf("grid = %dx%d, expected 22x9", g.Width(), g.Height())
	}
	if s.Status() != sim.StatusPlaying {
		t.Errorf("status = %v, expected playing", s.Status())
	}
	if p := s.Player(); p.Pos != core.V(4, 3.5) {
		t.Errorf("player pos = %v, expected (4, 3.5)", p.Pos)
	}
	if n := s.Count(sim.KindCoin); n != 2 {
		t.Errorf("coins = %d, expected 2", n)
	}
	if n := s.Count(sim.KindLava); n != 1 {
		t.Errorf("lava actors = %d, expected 1", n)
	}
}

func TestSampleLevelIdle(t *testing.T) {
	s, _ := sim.Start(mustGrid(t, samplePlan...))

	for range 120 {
		s = step(t, s, frame, sim.Intent{})
	}
	if p := s.Player(); p.Pos != core.V(4, 3.5) {
		t.Errorf("idle player drifted to %v", p.Pos)
	}
	if s.Status() != sim.StatusPlaying {
		t.Errorf("status = %v, expected playing", s.Status())
	}
}

// Holding right from the spawn drops the player off the ledge at x=7 into
// the lava pool before it can reach the ##### block at x=11.
func TestSampleLevelWalkOffLedge(t *testing.T) {
	s, _ := sim.Start(mustGrid(t, samplePlan...))

	prevX := s.Player().Pos.X
	airborne := false
	for i := 0; i < 300 && s.Status() == sim.StatusPlaying; i++ {
		s = step(t, s, frame, sim.Intent{Right: true})
		p := s.Player()
		if p.Pos.X < prevX {
			t.Fatalf("tick %d: x decreased from %v to %v", i, prevX, p.Pos.X)
		}
		if p.Speed.Y > 0 {
			airborne = true
		}
		prevX = p.Pos.X
	}

	if !airborne {
		t.Error("player never fell")
	}
	if s.Status() != sim.StatusLost {
		t.Fatalf("status = %v, expected lost in the lava pool", s.Status())
	}
	if x := s.Player().Pos.X; x < 7 || x > 10 {
		t.Errorf("player died at x = %v, expected over the pool near the ledge", x)
	}

	// Terminal: no input brings the run back.
	final := s
	for _, in := range []sim.Intent{{}, {Left: true}, {Up: true}, {Right: true, Up: true}} {
		s = step(t, s, frame, in)
		if s.Status() != sim.StatusLost {
			t.Fatalf("lost state resurrected to %v", s.Status())
		}
	}
	if final.Status() != sim.StatusLost {
		t.Error("prior state changed")
	}
}

func TestTerminalStatusIsStable(t *testing.T) {
	g := lavaRoom(t)
	for _, status := range []sim.Status{sim.StatusLost, sim.StatusWon} {
		t.Run(status.String(), func(t *testing.T) {
			s, err := sim.NewState(g, []sim.Actor{
				sim.NewPlayer(1, core.V(1, 1.5)),
				sim.NewLava(2, core.V(1.2, 1.6), core.Vec{}),
			}, status, sim.DefaultPhysics())
			if err != nil {
				t.Fatalf("NewState failed: %v", err)
			}
			for range 10 {
				s = step(t, s, frame, sim.Intent{Right: true})
				if s.Status() != status {
					t.Fatalf("status changed to %v", s.Status())
				}
			}
			if !status.Terminal() {
				t.Errorf("%v should be terminal", status)
			}
		})
	}
	if sim.StatusPlaying.Terminal() {
		t.Error("playing should not be terminal")
	}
}

func TestUpdateRejectsInvalidDelta(t *testing.T) {
	s, _ := sim.Start(lavaRoom(t))

	for _, dt := range []float64{0, -frame, math.NaN(), math.Inf(1), math.Inf(-1)} {
		next, err := s.Update(dt, sim.Intent{})
		if !errors.Is(err, sim.ErrInvalidDelta) {
			t.Errorf("dt=%v: error = %v, expected ErrInvalidDelta", dt, err)
		}
		if next != nil {
			t.Errorf("dt=%v: expected nil state", dt)
		}
	}
}

func TestStateErrors(t *testing.T) {
	t.Run("nil grid", func(t *testing.T) {
		if _, err := sim.Start(nil); !errors.Is(err, sim.ErrNoGrid) {
			t.Errorf("error = %v, expected ErrNoGrid", err)
		}
	})

	t.Run("no player", func(t *testing.T) {
		if _, err := sim.Start(mustGrid(t, "..o..")); !errors.Is(err, sim.ErrPlayerCount) {
			t.Errorf("error = %v, expected ErrPlayerCount", err)
		}
	})

	t.Run("two players", func(t *testing.T) {
		if _, err := sim.Start(mustGrid(t, ".@.@.")); !errors.Is(err, sim.ErrPlayerCount) {
			t.Errorf("error = %v, expected ErrPlayerCount", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := sim.NewState(lavaRoom(t), []sim.Actor{
			sim.NewPlayer(1, core.V(1, 1.5)),
			sim.NewCoin(1, core.V(3, 1), 0),
		}, sim.StatusPlaying, sim.DefaultPhysics())
		if !errors.Is(err, sim.ErrDuplicateID) {
			t.Errorf("error = %v, expected ErrDuplicateID", err)
		}
	})

	t.Run("invalid physics", func(t *testing.T) {
		p := sim.DefaultPhysics()
		p.Gravity = math.NaN()
		if _, err := sim.StartWithPhysics(lavaRoom(t), p); !errors.Is(err, sim.ErrInvalidPhysics) {
			t.Errorf("error = %v, expected ErrInvalidPhysics", err)
		}
	})
}

func TestStateIsImmutable(t *testing.T) {
	s, _ := sim.Start(mustGrid(t, samplePlan...))
	before := s.Player()

	actors := s.Actors()
	actors[0].Pos = core.V(100, 100)
	if s.Actors()[0].Pos == core.V(100, 100) {
		t.Error("Actors returned the internal slice")
	}

	next := step(t, s, 0.05, sim.Intent{Right: true, Up: true})
	if s.Player() != before {
		t.Errorf("prior state changed: %+v -> %+v", before, s.Player())
	}
	if next.Player() == before {
		t.Error("next state should differ")
	}
	if next.Grid() != s.Grid() {
		t.Error("grid should be shared between states")
	}
}

func TestCustomPhysics(t *testing.T) {
	g := mustGrid(t,
		"....",
		".@..",
		"####",
	)
	p := sim.DefaultPhysics()
	p.JumpSpeed = 5
	s, err := sim.StartWithPhysics(g, p)
	if err != nil {
		t.Fatalf("StartWithPhysics failed: %v", err)
	}

	s = step(t, s, frame, sim.Intent{Up: true})
	if vy := s.Player().Speed.Y; vy != -5 {
		t.Errorf("jump speed = %v, expected -5", vy)
	}
	if s.Physics() != p {
		t.Error("physics not carried forward")
	}
}

func TestSpawnTableUsesPhysics(t *testing.T) {
	p := sim.DefaultPhysics()
	p.MonsterSpeed = 3
	g, err := sim.NewGrid([]string{"@.M"}, sim.NewSpawnTable(p), 0)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if sp := g.Spawns()[1].Speed; sp != core.V(3, 0) {
		t.Errorf("monster speed = %v, expected (3, 0)", sp)
	}
}

func TestCollisionsChainInListOrder(t *testing.T) {
	player := sim.NewPlayer(1, core.V(3, 2.5))
	falling := sim.NewPlayer(1, core.V(4.1, 0.55))
	falling.Speed = core.V(0, 5)
	farCoin := sim.NewCoin(4, core.V(7, 1), 0)

	tests := []struct {
		name       string
		actors     []sim.Actor
		wantStatus sim.Status
		wantIDs    []sim.ActorID
		wantVY     float64
	}{
		{
			name: "lava then last coin",
			actors: []sim.Actor{
				player,
				sim.NewLava(2, core.V(3.2, 2.8), core.Vec{}),
				sim.NewCoin(3, core.V(3.1, 3), 0),
			},
			wantStatus: sim.StatusWon,
			wantIDs:    []sim.ActorID{1, 2},
			wantVY:     0,
		},
		{
			name: "coin then monster side hit",
			actors: []sim.Actor{
				player,
				sim.NewCoin(2, core.V(3.1, 3), 0),
				sim.NewMonster(3, core.V(3.5, 2), core.V(8, 0)),
				farCoin,
			},
			wantStatus: sim.StatusLost,
			wantIDs:    []sim.ActorID{1, 3, 4},
			wantVY:     -10,
		},
		{
			name: "coin then stomp",
			actors: []sim.Actor{
				falling,
				sim.NewCoin(2, core.V(4.2, 1), 0),
				sim.NewMonster(3, core.V(4, 2), core.V(8, 0)),
				farCoin,
			},
			wantStatus: sim.StatusPlaying,
			wantIDs:    []sim.ActorID{1, 4},
			wantVY:     -10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustState(t, monsterRoom(t), tc.actors...)

			s = step(t, s, 0.01, sim.Intent{})

			if s.Status() != tc.wantStatus {
				t.Errorf("status = %v, expected %v", s.Status(), tc.wantStatus)
			}
			var ids []sim.ActorID
			for _, a := range s.Actors() {
				ids = append(ids, a.ID)
			}
			if !slices.Equal(ids, tc.wantIDs) {
				t.Errorf("actors = %v, expected %v", ids, tc.wantIDs)
			}
			if vy := s.Player().Speed.Y; vy != tc.wantVY {
				t.Errorf("player speed.y = %v, expected %v", vy, tc.wantVY)
			}
		})
	}
}
