package sim_test

import (
	"math"
	"testing"

	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/sim"
)

const frame = 1.0 / 60

func mustState(t *testing.T, g *sim.Grid, actors ...sim.Actor) *sim.State {
	t.Helper()
	s, err := sim.NewState(g, actors, sim.StatusPlaying, sim.DefaultPhysics())
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return s
}

func step(t *testing.T, s *sim.State, dt float64, in sim.Intent) *sim.State {
	t.Helper()
	next, err := s.Update(dt, in)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	return next
}

func TestPlayerRestIsStable(t *testing.T) {
	g := mustGrid(t,
		"....",
		".@..",
		"####",
	)
	s, err := sim.Start(g)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := range 60 {
		s = step(t, s, frame, sim.Intent{})
		p := s.Player()
		if p.Pos != core.V(1, 0.5) {
			t.Fatalf("tick %d: resting player moved to %v", i, p.Pos)
		}
		if p.Speed != (core.Vec{}) {
			t.Fatalf("tick %d: resting player speed = %v", i, p.Speed)
		}
	}
	if s.Status() != sim.StatusPlaying {
		t.Errorf("status = %v, expected playing", s.Status())
	}
}

func TestPlayerJump(t *testing.T) {
	g := mustGrid(t,
		"....",
		".@..",
		"####",
	)
	s, _ := sim.Start(g)

	s = step(t, s, frame, sim.Intent{Up: true})
	p := s.Player()
	if p.Speed.Y != -17 {
		t.Fatalf("speed after jump = %v, expected -17", p.Speed.Y)
	}
	if p.Pos != core.V(1, 0.5) {
		t.Fatalf("player should not move on the jump tick, got %v", p.Pos)
	}

	s = step(t, s, frame, sim.Intent{Up: true})
	if y := s.Player().Pos.Y; y >= 0.5 {
		t.Errorf("player did not rise, y = %v", y)
	}
}

func TestPlayerOpposingKeysCancel(t *testing.T) {
	g := mustGrid(t,
		"....",
		".@..",
		"####",
	)
	s, _ := sim.Start(g)

	s = step(t, s, frame, sim.Intent{Left: true, Right: true})
	if p := s.Player(); p.Pos.X != 1 || p.Speed.X != 0 {
		t.Errorf("expected no horizontal motion, got pos %v speed %v", p.Pos, p.Speed)
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	g := mustGrid(t,
		"......",
		".@..#.",
		"######",
	)
	s, _ := sim.Start(g)

	prev := s.Player().Pos.X
	for i := range 20 {
		s = step(t, s, 0.05, sim.Intent{Right: true})
		x := s.Player().Pos.X
		if x < prev {
			t.Fatalf("tick %d: x decreased from %v to %v", i, prev, x)
		}
		prev = x
	}

	p := s.Player()
	if p.Pos.X > 3.2 || p.Pos.X < 2.85 {
		t.Errorf("player should stop just before the wall, x = %v", p.Pos.X)
	}
	if p.Box().Right() > 4 {
		t.Errorf("player overlaps wall, right edge = %v", p.Box().Right())
	}
	if s.Status() != sim.StatusPlaying {
		t.Errorf("status = %v, expected playing", s.Status())
	}
}

func TestPlayerFallsIntoLavaCell(t *testing.T) {
	g := mustGrid(t,
		"......",
		".@....",
		"#+####",
	)
	s, _ := sim.Start(g)

	s = step(t, s, frame, sim.Intent{})
	if s.Status() != sim.StatusLost {
		t.Errorf("status = %v, expected lost", s.Status())
	}
}

func lavaRoom(t *testing.T) *sim.Grid {
	return mustGrid(t,
		"#....#",
		"#....#",
		"#@...#",
		"######",
	)
}

func TestLavaMotion(t *testing.T) {
	tests := []struct {
		name      string
		lava      sim.Actor
		wantPos   core.Vec
		wantSpeed core.Vec
	}{
		{
			name:      "free movement",
			lava:      sim.NewLava(2, core.V(2, 0), core.V(2, 0)),
			wantPos:   core.V(2.2, 0),
			wantSpeed: core.V(2, 0),
		},
		{
			name:      "bouncing lava reverses and stays",
			lava:      sim.NewLava(2, core.V(3.9, 0), core.V(2, 0)),
			wantPos:   core.V(3.9, 0),
			wantSpeed: core.V(-2, 0),
		},
		{
			name: "dripping lava returns to its reset position",
			lava: sim.Actor{
				ID: 2, Kind: sim.KindLava,
				Pos: core.V(3.9, 0), Speed: core.V(2, 0),
				Dripping: true, ResetPos: core.V(2, 0),
			},
			wantPos:   core.V(2, 0),
			wantSpeed: core.V(2, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustState(t, lavaRoom(t), sim.NewPlayer(1, core.V(1, 1.5)), tc.lava)
			s = step(t, s, 0.1, sim.Intent{})

			got, ok := s.Actor(2)
			if !ok {
				t.Fatal("lava disappeared")
			}
			if !near(got.Pos, tc.wantPos) {
				t.Errorf("pos = %v, expected %v", got.Pos, tc.wantPos)
			}
			if got.Speed != tc.wantSpeed {
				t.Errorf("speed = %v, expected %v", got.Speed, tc.wantSpeed)
			}
			if s.Status() != sim.StatusPlaying {
				t.Errorf("status = %v, expected playing", s.Status())
			}
		})
	}
}

func TestDrippingLavaCycle(t *testing.T) {
	g := mustGrid(t,
		"#.v.#",
		"#...#",
		"#@..#",
		"#####",
	)
	s, _ := sim.Start(g)
	drip := s.Actors()[0]
	if !drip.Dripping {
		t.Fatalf("expected first actor to be dripping lava, got %+v", drip)
	}

	for range 6 {
		s = step(t, s, 0.1, sim.Intent{})
	}
	if a, _ := s.Actor(drip.ID); a.Pos.Y <= 1.5 {
		t.Fatalf("drip should be falling, y = %v", a.Pos.Y)
	}

	s = step(t, s, 0.1, sim.Intent{})
	a, _ := s.Actor(drip.ID)
	if a.Pos != core.V(2, 0) {
		t.Errorf("drip should restart at its spawn cell, got %v", a.Pos)
	}
	if a.Speed != core.V(0, 3) {
		t.Errorf("drip speed = %v, expected unchanged (0, 3)", a.Speed)
	}
}

func TestLavaActorKillsPlayer(t *testing.T) {
	s := mustState(t, lavaRoom(t),
		sim.NewPlayer(1, core.V(1, 1.5)),
		sim.NewLava(2, core.V(1.2, 1.6), core.Vec{}),
	)
	s = step(t, s, frame, sim.Intent{})
	if s.Status() != sim.StatusLost {
		t.Errorf("status = %v, expected lost", s.Status())
	}
}

func TestCoinWobble(t *testing.T) {
	s := mustState(t, lavaRoom(t),
		sim.NewPlayer(1, core.V(1, 1.5)),
		sim.NewCoin(2, core.V(3, 1), 0),
	)
	s = step(t, s, 0.1, sim.Intent{})

	coin, _ := s.Actor(2)
	wantWobble := 0.1 * 8
	if math.Abs(coin.Wobble-wantWobble) > 1e-9 {
		t.Errorf("wobble = %v, expected %v", coin.Wobble, wantWobble)
	}
	want := core.V(3, 1+math.Sin(wantWobble)*0.07)
	if !near(coin.Pos, want) {
		t.Errorf("pos = %v, expected %v", coin.Pos, want)
	}
	if coin.BasePos != core.V(3, 1) {
		t.Errorf("base moved to %v", coin.BasePos)
	}
}

func coinRoom(t *testing.T) *sim.Grid {
	return mustGrid(t,
		"#......#",
		"#@.....#",
		"########",
	)
}

func TestCoinCollection(t *testing.T) {
	t.Run("coins remaining keeps playing", func(t *testing.T) {
		s := mustState(t, coinRoom(t),
			sim.NewPlayer(1, core.V(3, 0.5)),
			sim.NewCoin(2, core.V(3.2, 1.1), 0),
			sim.NewCoin(3, core.V(5.2, 1.1), 0),
		)
		s = step(t, s, frame, sim.Intent{})

		if s.Status() != sim.StatusPlaying {
			t.Errorf("status = %v, expected playing", s.Status())
		}
		if _, ok := s.Actor(2); ok {
			t.Error("touched coin should be removed")
		}
		if _, ok := s.Actor(3); !ok {
			t.Error("untouched coin should remain")
		}
		if n := s.Count(sim.KindCoin); n != 1 {
			t.Errorf("coin count = %d, expected 1", n)
		}
	})

	t.Run("last coin wins", func(t *testing.T) {
		s := mustState(t, coinRoom(t),
			sim.NewPlayer(1, core.V(3, 0.5)),
			sim.NewCoin(2, core.V(3.2, 1.1), 0),
		)
		s = step(t, s, frame, sim.Intent{})

		if s.Status() != sim.StatusWon {
			t.Errorf("status = %v, expected won", s.Status())
		}
		if n := s.Count(sim.KindCoin); n != 0 {
			t.Errorf("coin count = %d, expected 0", n)
		}
	})

	t.Run("collide directly", func(t *testing.T) {
		coin := sim.NewCoin(2, core.V(3.2, 1.1), 0)
		s := mustState(t, coinRoom(t), sim.NewPlayer(1, core.V(3, 0.5)), coin)

		next := coin.Collide(s)
		if next.Status() != sim.StatusWon {
			t.Errorf("status = %v, expected won", next.Status())
		}
		if s.Count(sim.KindCoin) != 1 {
			t.Error("collide modified the prior state")
		}
	})
}

func TestWalkingCollectsCoinsAndWins(t *testing.T) {
	g := mustGrid(t,
		"#.....#",
		"#@..o.#",
		"#######",
	)
	s, _ := sim.Start(g)

	coins := s.Count(sim.KindCoin)
	for i := 0; i < 120 && s.Status() == sim.StatusPlaying; i++ {
		s = step(t, s, frame, sim.Intent{Right: true})
		if n := s.Count(sim.KindCoin); n > coins {
			t.Fatalf("tick %d: coin count grew from %d to %d", i, coins, n)
		} else {
			coins = n
		}
	}

	if s.Status() != sim.StatusWon {
		t.Errorf("status = %v, expected won", s.Status())
	}
}

func monsterRoom(t *testing.T) *sim.Grid {
	return mustGrid(t,
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	)
}

func TestMonsterPatrol(t *testing.T) {
	tests := []struct {
		name      string
		monster   sim.Actor
		wantPos   core.Vec
		wantSpeed core.Vec
	}{
		{"walks freely", sim.NewMonster(2, core.V(4, 2), core.V(8, 0)), core.V(4.4, 2), core.V(8, 0)},
		{"turns at wall", sim.NewMonster(2, core.V(7.5, 2), core.V(8, 0)), core.V(7.5, 2), core.V(-8, 0)},
		{"ignores vertical speed", sim.NewMonster(2, core.V(4, 2), core.V(8, 5)), core.V(4.4, 2), core.V(8, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustState(t, monsterRoom(t), sim.NewPlayer(1, core.V(1, 2.5)), tc.monster)
			s = step(t, s, 0.05, sim.Intent{})

			got, ok := s.Actor(2)
			if !ok {
				t.Fatal("monster disappeared")
			}
			if !near(got.Pos, tc.wantPos) {
				t.Errorf("pos = %v, expected %v", got.Pos, tc.wantPos)
			}
			if got.Speed != tc.wantSpeed {
				t.Errorf("speed = %v, expected %v", got.Speed, tc.wantSpeed)
			}
		})
	}
}

func TestMonsterStomp(t *testing.T) {
	player := sim.NewPlayer(1, core.V(4.1, 0.55))
	player.Speed = core.V(0, 5)
	s := mustState(t, monsterRoom(t), player, sim.NewMonster(2, core.V(4, 2), core.V(8, 0)))

	s = step(t, s, 0.01, sim.Intent{})

	if s.Status() != sim.StatusPlaying {
		t.Errorf("status = %v, expected playing", s.Status())
	}
	if _, ok := s.Actor(2); ok {
		t.Error("stomped monster should be removed")
	}
	if vy := s.Player().Speed.Y; vy != -10 {
		t.Errorf("player speed.y = %v, expected -10", vy)
	}
}

func TestMonsterSideHit(t *testing.T) {
	s := mustState(t, monsterRoom(t),
		sim.NewPlayer(1, core.V(3, 2.5)),
		sim.NewMonster(2, core.V(3.5, 2), core.V(8, 0)),
	)

	s = step(t, s, 0.01, sim.Intent{})

	if s.Status() != sim.StatusLost {
		t.Errorf("status = %v, expected lost", s.Status())
	}
	if _, ok := s.Actor(2); !ok {
		t.Error("monster should survive a side hit")
	}
	if vy := s.Player().Speed.Y; vy != -10 {
		t.Errorf("player speed.y = %v, expected -10", vy)
	}
}

func TestMonsterSpawnStandsOnFloor(t *testing.T) {
	g := mustGrid(t,
		"#....#",
		"#@...#",
		"#...M#",
		"######",
	)
	s, _ := sim.Start(g)

	var monster sim.Actor
	for _, a := range s.Actors() {
		if a.Kind == sim.KindMonster {
			monster = a
		}
	}
	if monster.Box().Bottom() != 3 {
		t.Errorf("monster bottom = %v, expected 3", monster.Box().Bottom())
	}
}
