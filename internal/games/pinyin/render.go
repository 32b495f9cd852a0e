package pinyin

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/pinyin-match/internal/core"
	"github.com/vovakirdan/pinyin-match/internal/match3"
)

const (
	cellWidth    = 6 // Width of each cell (including left border)
	cellHeight   = 2 // Height of each cell (including top border)
	hudHeight    = 3
	footerHeight = 4 // Gap, info line, message line and a spare row
)

// boardSize returns the board dimensions in screen cells.
func boardSize(w, h int) (int, int) {
	return w*cellWidth + 1, h*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := g.level.Size(g.cfg.Board)
	boardW, boardH := boardSize(w, h)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY, w, h)
	if g.layer != nil {
		g.renderTiles(dst, boardX, boardY, w, h)
		g.renderMarkers(dst, boardX, boardY)
	}
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var infoStr string
	if g.mode == ModeCampaign {
		infoStr = fmt.Sprintf("Level %d/%d  %d/%d", g.levelIndex+1, len(g.levels), g.LevelScore(), g.level.Target)
	} else {
		infoStr = fmt.Sprintf("Swaps: %d", g.swaps)
	}
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	name := g.level.Name
	if name == "" {
		name = "Practice"
	}
	movesStr := fmt.Sprintf("%s  Moves: %d", name, g.movesLeft)
	color := core.ColorDefault
	if g.movesLeft <= 3 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(boardX+(boardW-runewidth.StringWidth(movesStr))/2, 2, movesStr, color)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY, w, h int) {
	for y := range h + 1 {
		for x := range w + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == w:
				corner = '┐'
			case y == h && x == 0:
				corner = '└'
			case y == h && x == w:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == h:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == w:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < w {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < h {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws tiles at their animated positions, plus the tiles
// being cleared.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY, w, h int) {
	top := boardY + 1
	bottom := boardY + h*cellHeight - 1

	for row := range h {
		for col := range w {
			p := match3.Pos(row, col)
			t := g.layer.Tile(p)
			if t == nil {
				continue
			}
			r, c := g.layer.position(p, t)
			x := boardX + int(math.Round(c*cellWidth)) + 1
			y := boardY + int(math.Round(r*cellHeight)) + 1
			if y < top || y > bottom {
				// Still above the board while falling in.
				continue
			}
			drawLabel(dst, x, y, t.Label, t.Color)
		}
	}

	// Cleared tiles flash before disappearing.
	if g.layer.phase == PhaseClear && (g.layer.ticks/3)%2 == 0 {
		for _, gh := range g.layer.ghosts {
			x := boardX + gh.Pos.Col*cellWidth + 1
			y := boardY + gh.Pos.Row*cellHeight + 1
			drawLabel(dst, x, y, gh.Tile.Label, core.ColorRed)
		}
	}
}

// drawLabel centers a label in the cellWidth-1 columns starting at x.
func drawLabel(dst *core.Screen, x, y int, label string, color core.Color) {
	label = runewidth.Truncate(label, cellWidth-1, "")
	pad := (cellWidth - 1 - runewidth.StringWidth(label)) / 2
	dst.DrawTextColor(x+pad, y, label, color)
}

// renderMarkers outlines the hint, the selected tile and the cursor.
func (g *Game) renderMarkers(dst *core.Screen, boardX, boardY int) {
	if g.hint != nil && (g.hintTicks/15)%2 == 0 {
		g.outline(dst, boardX, boardY, g.hint.From, core.ColorBrightCyan)
		g.outline(dst, boardX, boardY, g.hint.To, core.ColorBrightCyan)
	}
	if g.selected {
		g.outline(dst, boardX, boardY, g.selectedPos, core.ColorBrightGreen)
	}
	if !g.gameOver && !g.won {
		g.outline(dst, boardX, boardY, g.cursor, core.ColorBrightYellow)
	}
}

func (g *Game) outline(dst *core.Screen, boardX, boardY int, p match3.Position, color core.Color) {
	dst.DrawBoxColor(core.Rect{
		X: boardX + p.Col*cellWidth,
		Y: boardY + p.Row*cellHeight,
		W: cellWidth + 1,
		H: cellHeight + 1,
	}, color)
}

// renderFooter draws the tile under the cursor and the latest message.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.cfg.Display.Hints && g.layer != nil {
		if t := g.layer.Tile(g.cursor); t != nil {
			info := t.Char.Hanzi + " " + t.Char.Pinyin
			if t.Char.Meaning != "" {
				info += " · " + t.Char.Meaning
			}
			dst.DrawTextCenteredColor(y+1, info, t.Color)
		}
	}
	if g.msgTicks > 0 && g.message != "" {
		dst.DrawTextCentered(y+2, g.message)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		targetStr := fmt.Sprintf("Target %d reached!", g.level.Target)
		if g.levelIndex >= len(g.levels)-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			nextStr := fmt.Sprintf("Next: %s", g.levels[g.levelIndex+1].Name)
			g.drawOverlay(dst, centerX, centerY, targetStr, nextStr)
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "ALL LEVELS CLEAR!", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
		return
	}

	if g.gameOver {
		reason := "Out of moves"
		if g.endReason == EndUnsolvable {
			reason = "No playable board"
		}
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", reason, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, runewidth.StringWidth(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ')
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - runewidth.StringWidth(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select | Arrow after select: Swap | H: Hint | P: Pause | Q: Quit"
}
