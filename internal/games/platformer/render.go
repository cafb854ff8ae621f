package platformer

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/sim"
)

// Screen layout
const (
	cellW   = 2 // Screen columns per level unit
	hudRows = 1 // Rows reserved above the playfield
)

// Visual characters for rendering
const (
	WallChar    = '█'
	LavaChar    = '▒'
	PlayerChar  = '█'
	CoinChar    = '●'
	MonsterChar = '▓'
)

// viewport is the visible window of the level, in level units.
type viewport struct {
	left float64
	top  float64
}

// follow scrolls so that the box stays inside the middle third of the view.
func (v *viewport) follow(box core.Box, viewW, viewH, levelW, levelH float64) {
	v.left = scrollAxis(v.left, box.Pos.X+box.Size.X/2, viewW, levelW)
	v.top = scrollAxis(v.top, box.Pos.Y+box.Size.Y/2, viewH, levelH)
}

func scrollAxis(start, center, view, level float64) float64 {
	margin := view / 3
	switch {
	case center < start+margin:
		start = math.Max(center-margin, 0)
	case center > start+view-margin:
		start = math.Min(center+margin-view, level-view)
	}
	return math.Max(start, 0)
}

// toScreen converts level coordinates into screen cells.
func (v viewport) toScreen(x, y float64) (int, int) {
	return int(math.Floor((x - v.left) * cellW)), int(math.Floor(y-v.top)) + hudRows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == nil {
		msg := "no level loaded"
		if g.err != nil {
			msg = g.err.Error()
		}
		drawCenteredMessage(dst, "ERROR", msg, core.ColorRed)
		return
	}

	grid := g.state.Grid()
	viewW := float64(dst.Width()) / cellW
	viewH := float64(dst.Height() - hudRows)
	g.view.follow(g.state.Player().Box(), viewW, viewH, float64(grid.Width()), float64(grid.Height()))

	g.drawGrid(dst, grid, viewW, viewH)
	for _, a := range g.state.Actors() {
		g.drawActor(dst, a)
	}
	g.drawHUD(dst)

	switch {
	case g.err != nil:
		drawCenteredMessage(dst, "ERROR", g.err.Error(), core.ColorRed)
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorDefault)
	case g.gameOver && g.won:
		drawCenteredMessage(dst, "YOU WIN", fmt.Sprintf("Score: %d  |  Press R to play again", g.score), core.ColorBrightYellow)
	case g.gameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorBrightRed)
	case g.state.Status() == sim.StatusWon:
		drawCenteredMessage(dst, "LEVEL CLEAR", fmt.Sprintf("+%d", PointsPerLevel), core.ColorBrightYellow)
	case g.state.Status() == sim.StatusLost:
		drawCenteredMessage(dst, "OUCH", fmt.Sprintf("Lives left: %d", g.lives-1), core.ColorRed)
	}
}

// drawGrid draws the static cells visible in the viewport.
func (g *Game) drawGrid(dst *core.Screen, grid *sim.Grid, viewW, viewH float64) {
	x0 := max(int(math.Floor(g.view.left)), 0)
	x1 := min(int(math.Ceil(g.view.left+viewW)), grid.Width())
	y0 := max(int(math.Floor(g.view.top)), 0)
	y1 := min(int(math.Ceil(g.view.top+viewH)), grid.Height())

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			var ch rune
			var color core.Color
			switch grid.At(x, y) {
			case sim.CellWall:
				ch, color = WallChar, core.ColorGray
			case sim.CellLava:
				ch, color = LavaChar, core.ColorRed
			default:
				continue
			}
			sx, sy := g.view.toScreen(float64(x), float64(y))
			if sy < hudRows {
				continue
			}
			for dx := range cellW {
				dst.SetColored(sx+dx, sy, ch, color)
			}
		}
	}
}

// drawActor fills the screen cells covered by the actor's box.
func (g *Game) drawActor(dst *core.Screen, a sim.Actor) {
	ch, color := g.actorStyle(a)
	box := a.Box()

	sx0, sy0 := g.view.toScreen(box.Pos.X, box.Pos.Y)
	sx1 := int(math.Ceil((box.Right() - g.view.left) * cellW))
	sy1 := int(math.Ceil(box.Bottom()-g.view.top)) + hudRows

	for y := max(sy0, hudRows); y < sy1; y++ {
		for x := sx0; x < sx1; x++ {
			dst.SetColored(x, y, ch, color)
		}
	}
}

func (g *Game) actorStyle(a sim.Actor) (rune, core.Color) {
	switch a.Kind {
	case sim.KindPlayer:
		switch g.state.Status() {
		case sim.StatusLost:
			return PlayerChar, core.ColorRed
		case sim.StatusWon:
			return PlayerChar, core.ColorBrightYellow
		}
		return PlayerChar, core.ColorBrightWhite
	case sim.KindCoin:
		return CoinChar, core.ColorBrightYellow
	case sim.KindLava:
		return LavaChar, core.ColorBrightRed
	case sim.KindMonster:
		return MonsterChar, core.ColorPurple
	default:
		return '?', core.ColorDefault
	}
}

// drawHUD draws the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	name := ""
	if p, ok := g.Plan(); ok {
		name = p.Name
	}
	hud := fmt.Sprintf(" %s  Level %d/%d  Coins %d/%d  Lives %s  Score %d ",
		name, min(g.levelIdx+1, len(g.plans)), len(g.plans),
		g.collected(), g.levelCoins,
		strings.Repeat("♥", max(g.lives, 0)), g.Score())
	dst.DrawText(0, 0, hud)
}

// drawCenteredMessage draws a boxed title and subtitle over the play field.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	tw, sw := utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)
	box := core.NewRect(0, 0, max(tw, sw)+4, 5)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextColored(box.X+(box.W-tw)/2, box.Y+1, title, color)
	dst.DrawText(box.X+(box.W-sw)/2, box.Y+3, subtitle)
}
