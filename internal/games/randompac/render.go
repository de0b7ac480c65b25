package randompac

import (
	"fmt"
	"math"
	"strings"

	platformcore "github.com/vovakirdan/randompac/internal/core"
	pac "github.com/vovakirdan/randompac/internal/games/randompac/core"
)

const (
	cellWidth = 2 // screen columns per tile
	hudHeight = 1
	footer    = 1

	blinkBeforeMs = 2000
)

var ghostColors = []platformcore.Color{
	platformcore.ColorRed,
	platformcore.ColorPink,
	platformcore.ColorCyan,
	platformcore.ColorOrange,
}

// viewport maps grid tiles onto the screen. When the board is larger than
// the terminal it follows the player.
type viewport struct {
	originX, originY int // first visible tile
	cols, rows       int // visible tiles
	offX, offY       int // screen position of the first visible tile
}

func newViewport(dst *platformcore.Screen, grid *pac.Grid, focus pac.Coord) viewport {
	boardRows := dst.Height() - hudHeight - footer
	v := viewport{
		cols: min(grid.Width(), dst.Width()/cellWidth),
		rows: min(grid.Height(), boardRows),
	}
	v.originX = platformcore.Clamp(focus.X-v.cols/2, 0, grid.Width()-v.cols)
	v.originY = platformcore.Clamp(focus.Y-v.rows/2, 0, grid.Height()-v.rows)
	v.offX = (dst.Width() - v.cols*cellWidth) / 2
	v.offY = hudHeight + (boardRows-v.rows)/2
	return v
}

// project converts a world position to a screen cell. The horizontal axis
// keeps half-tile resolution.
func (v viewport) project(pos pac.Vec, tileSize float64) (int, int, bool) {
	tx := pos.X/tileSize - float64(v.originX)
	ty := pos.Y/tileSize - float64(v.originY)
	if tx < 0 || ty < 0 || tx >= float64(v.cols) || ty >= float64(v.rows) {
		return 0, 0, false
	}
	x := v.offX + int(math.Floor(tx*cellWidth-0.5))
	y := v.offY + int(math.Floor(ty))
	return max(x, v.offX), y, true
}

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.session == nil {
		renderOverlay(dst, "RandomPac could not start", "See the warnings log", platformcore.ColorRed)
		return
	}
	if dst.Width() < 20 || dst.Height() < 6 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", platformcore.ColorDefault)
		return
	}

	sim := g.session.Sim
	g.renderHUD(dst, sim)

	v := newViewport(dst, sim.Grid(), sim.Player().TileCoord())
	renderBoard(dst, sim.Grid(), v)
	g.renderGhosts(dst, sim, v)
	g.renderPlayer(dst, sim, v)
	g.renderFooter(dst, sim)

	switch {
	case sim.Won():
		renderOverlay(dst, "Level clear!", fmt.Sprintf("Final score: %d  R to restart", sim.Score()), platformcore.ColorGreen)
	case sim.Over():
		renderOverlay(dst, "Game over", fmt.Sprintf("Final score: %d  R to restart", sim.Score()), platformcore.ColorRed)
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue", platformcore.ColorYellow)
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen, sim *pac.Sim) {
	lives := strings.Repeat("♥", sim.Lives())
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", sim.Score()), platformcore.ColorWhite)
	dst.DrawTextColored(14, 0, lives, platformcore.ColorRed)

	info := fmt.Sprintf("%s  seed %d  %s", g.session.Algorithm, sim.Seed(), strings.ToUpper(string(g.session.Tier)))
	dst.DrawTextColored(dst.Width()-len(info)-1, 0, info, platformcore.ColorGray)

	if msg := sim.Message(); msg != "" {
		dst.DrawTextCentered(0, msg, platformcore.ColorYellow)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen, sim *pac.Sim) {
	y := dst.Height() - 1
	if sim.PowerActive() {
		secs := sim.PowerRemaining() / 1000
		dst.DrawTextColored(1, y, fmt.Sprintf("POWER %.1fs  x%d", secs, max(sim.Chain(), 1)), platformcore.ColorBrightBlue)
	} else {
		dst.DrawTextColored(1, y, fmt.Sprintf("%s  pellets %d", g.session.Level.Name, sim.Grid().Remaining()), platformcore.ColorGray)
	}
	help := "arrows/WASD move  P pause  Q quit"
	dst.DrawTextColored(dst.Width()-len(help)-1, y, help, platformcore.ColorGray)
}

func renderBoard(dst *platformcore.Screen, grid *pac.Grid, v viewport) {
	for row := range v.rows {
		for col := range v.cols {
			tile := grid.TileAt(pac.C(v.originX+col, v.originY+row))
			x := v.offX + col*cellWidth
			y := v.offY + row
			switch tile {
			case pac.TileWall:
				dst.SetColored(x, y, '█', platformcore.ColorBlue)
				dst.SetColored(x+1, y, '█', platformcore.ColorBlue)
			case pac.TileDot:
				dst.SetColored(x, y, '·', platformcore.ColorWhite)
			case pac.TilePower:
				dst.SetColored(x, y, '●', platformcore.ColorWhite)
			case pac.TileDoor:
				dst.SetColored(x, y, '─', platformcore.ColorPink)
				dst.SetColored(x+1, y, '─', platformcore.ColorPink)
			}
		}
	}
}

func (g *Game) renderGhosts(dst *platformcore.Screen, sim *pac.Sim, v viewport) {
	tileSize := sim.Params().Geometry.TileSize
	blink := sim.PowerRemaining() < blinkBeforeMs && (g.tick/8)%2 == 0

	for i, ghost := range sim.Ghosts() {
		x, y, ok := v.project(ghost.Pos, tileSize)
		if !ok {
			continue
		}
		glyph, color := 'M', ghostColors[i%len(ghostColors)]
		switch ghost.State() {
		case pac.StateFrightened:
			glyph, color = 'W', platformcore.ColorBrightBlue
			if blink {
				color = platformcore.ColorWhite
			}
		case pac.StateEaten:
			glyph, color = '"', platformcore.ColorWhite
		}
		dst.SetColored(x, y, glyph, color)
	}
}

func (g *Game) renderPlayer(dst *platformcore.Screen, sim *pac.Sim, v viewport) {
	p := sim.Player()
	x, y, ok := v.project(p.Pos, sim.Params().Geometry.TileSize)
	if !ok {
		return
	}
	glyph := 'C'
	if (g.tick/4)%2 == 1 {
		glyph = 'O'
	}
	dst.SetColored(x, y, glyph, platformcore.ColorYellow)
}

// renderOverlay draws a centered two-line box with a colored title.
func renderOverlay(dst *platformcore.Screen, line1, line2 string, title platformcore.Color) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	r := platformcore.NewRect((dst.Width()-width)/2, (dst.Height()-4)/2, width, 4)
	dst.FillRect(r, ' ')
	dst.DrawBox(r, platformcore.ColorWhite)
	dst.DrawTextCentered(r.Y+1, line1, title)
	dst.DrawTextCentered(r.Y+2, line2, platformcore.ColorDefault)
}
