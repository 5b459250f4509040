package munchkin

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-munchkin/internal/core"
	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin/sim"
)

// Character cells per maze cell.
const (
	cellW = 6
	cellH = 3
)

// Maze size in characters, walls included.
const (
	mazeW = sim.Cols*cellW + 1
	mazeH = sim.Rows*cellH + 1
)

// The tunnel lets the player leave the maze by up to this many columns.
const (
	tunnelLeft  = 3
	tunnelRight = 5
)

// Minimum screen size: HUD row plus the maze, with room for the tunnel.
const (
	MinWidth  = tunnelLeft + mazeW + tunnelRight
	MinHeight = mazeH + 1
)

// sprite is the last picture the simulation gave for one agent.
type sprite struct {
	frame   sim.Frame
	x, y    int
	tint    core.Color
	visible bool
}

// spriteLayer implements sim.Renderer by remembering every agent.
type spriteLayer struct {
	player   sprite
	pursuers [sim.MaxPursuers]sprite
	pickups  [sim.MaxPickups]sprite
}

func (l *spriteLayer) reset() {
	*l = spriteLayer{}
}

func (l *spriteLayer) slot(id sim.SpriteID) *sprite {
	switch id.Kind {
	case sim.KindPlayer:
		return &l.player
	case sim.KindPursuer:
		if id.Index >= 0 && id.Index < len(l.pursuers) {
			return &l.pursuers[id.Index]
		}
	case sim.KindPickup:
		if id.Index >= 0 && id.Index < len(l.pickups) {
			return &l.pickups[id.Index]
		}
	}
	return nil
}

func (l *spriteLayer) DrawAgent(id sim.SpriteID, f sim.Frame, x, y int) {
	if s := l.slot(id); s != nil {
		s.frame, s.x, s.y, s.visible = f, x, y, true
	}
}

func (l *spriteLayer) HideAgent(id sim.SpriteID) {
	if s := l.slot(id); s != nil {
		s.visible = false
	}
}

func (l *spriteLayer) SetAgentTint(id sim.SpriteID, c core.Color) {
	if s := l.slot(id); s != nil {
		s.tint = c
	}
}

// layout centres the maze horizontally below the HUD row.
func (g *Game) layout(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = w < MinWidth || h < MinHeight

	g.originX = core.Clamp((w-mazeW)/2, tunnelLeft, w-mazeW-tunnelRight)
	g.originY = 1
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.layout(w, h)
}

// toScreen maps a play-field pixel position to a character cell.
func (g *Game) toScreen(x, y int) (int, int) {
	geo := g.state.Config().Geometry
	col := floorDiv((x-geo.OffsetX)*cellW, geo.HoriPitch)
	row := floorDiv((y-geo.OffsetY)*cellH, geo.VertPitch)
	return g.originX + col, g.originY + row
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Render draws the HUD, the maze and the agents.
func (g *Game) Render(dst *core.Screen) {
	if g.state == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderMaze(dst)
	g.renderSprites(dst)

	if g.paused {
		g.renderOverlay(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s  Maze %d", strings.ToUpper(g.title), g.state.MazeIndex+1)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("Score %04d  High %04d ", g.hud.score, g.hud.high)
	dst.DrawTextColor(g.screenW-len(right), 0, right, core.ColorBrightYellow)

	if g.lastScore > 0 && g.state.Score == 0 {
		last := fmt.Sprintf("Last %d", g.lastScore)
		dst.DrawTextColor((g.screenW-len(last))/2, 0, last, core.ColorGray)
	}
}

// renderMaze draws wall segments, then joins them at the corners.
func (g *Game) renderMaze(dst *core.Screen) {
	grid := g.state.Grid
	c := g.state.MazeColour()
	ox, oy := g.originX, g.originY

	for row := 0; row <= sim.Rows; row++ {
		for col := 0; col < sim.Cols; col++ {
			if grid.HorizontalWallAt(row, col) {
				dst.DrawHLine(ox+col*cellW+1, oy+row*cellH, cellW-1, '─', c)
			}
		}
	}
	for row := 0; row < sim.Rows; row++ {
		for col := 0; col <= sim.Cols; col++ {
			if grid.VerticalWallAt(row, col) {
				dst.DrawVLine(ox+col*cellW, oy+row*cellH+1, cellH-1, '│', c)
			}
		}
	}

	for row := 0; row <= sim.Rows; row++ {
		for col := 0; col <= sim.Cols; col++ {
			left := grid.HorizontalWallAt(row, col-1)
			right := grid.HorizontalWallAt(row, col)
			up := grid.VerticalWallAt(row-1, col)
			down := grid.VerticalWallAt(row, col)
			if r := joint(left, right, up, down); r != ' ' {
				dst.SetCell(ox+col*cellW, oy+row*cellH, r, c)
			}
		}
	}
}

// joint picks the box-drawing rune where wall segments meet.
func joint(left, right, up, down bool) rune {
	key := 0
	if left {
		key |= 1
	}
	if right {
		key |= 2
	}
	if up {
		key |= 4
	}
	if down {
		key |= 8
	}
	return joints[key]
}

var joints = [16]rune{
	' ', '─', '─', '─',
	'│', '┘', '└', '┴',
	'│', '┐', '┌', '┬',
	'│', '┤', '├', '┼',
}

// renderSprites paints pickups first so pursuers and the player stay on top.
func (g *Game) renderSprites(dst *core.Screen) {
	for i := range g.sprites.pickups {
		g.drawSprite(dst, &g.sprites.pickups[i])
	}
	for i := range g.sprites.pursuers {
		g.drawSprite(dst, &g.sprites.pursuers[i])
	}
	g.drawSprite(dst, &g.sprites.player)
}

func (g *Game) drawSprite(dst *core.Screen, s *sprite) {
	if !s.visible {
		return
	}
	x, y := g.toScreen(s.x, s.y)
	dst.SetCell(x, y, sim.GraphicFor(s.frame).Glyph, s.tint)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("Need %dx%d, have %dx%d", MinWidth, MinHeight, g.screenW, g.screenH),
	}
	y := g.screenH/2 - 1
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line, core.ColorBrightRed)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	boxW := len(subtitle) + 6
	if len(title)+6 > boxW {
		boxW = len(title) + 6
	}
	boxH := 5
	boxX := (g.screenW - boxW) / 2
	boxY := (g.screenH - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
