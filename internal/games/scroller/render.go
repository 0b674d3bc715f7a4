package scroller

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Colors of the playfield layers
const (
	colorStar      = core.ColorYellow
	colorMountain  = core.ColorGray
	colorGrass     = core.ColorGreen
	colorStructure = core.ColorOrange
	colorLarge     = core.ColorMagenta
	colorSmall     = core.ColorRed
	colorPlayer    = core.ColorBrightWhite
	colorHUD       = core.ColorCyan
	colorBanner    = core.ColorYellow
	colorPrompt    = core.ColorWhite
)

// Render draws the playfield back to front: border, stars, mountains, grass,
// structures, obstacles, the player and finally the HUD.
func (l *Life) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	dst.Clear()
	dst.DrawBorder()

	for _, st := range l.world.Stars {
		x, y := int(st.X), st.Y
		if x >= 0 && x < w && y >= 0 && y < h {
			dst.SetCell(x, y, '*', colorStar)
		}
	}

	if l.levels.MountainsActive(l.run.Level) {
		for _, m := range l.world.Mountains {
			for i, line := range mountainSprite {
				if y := m.Y + i; y >= 0 && y < h {
					dst.DrawTextColor(int(m.X), y, line, colorMountain)
				}
			}
		}
	}

	for _, g := range l.world.Grass {
		if g.X < 0 || g.X >= w {
			continue
		}
		pattern := grassPatterns[g.Pattern%len(grassPatterns)]
		dst.DrawLines(g.X, g.Y-1, pattern[:], colorGrass)
	}

	for _, s := range l.world.Structures {
		dst.DrawLines(s.X, s.Y, structureSprite, colorStructure)
	}

	for _, o := range l.world.Obstacles {
		switch o.Kind {
		case ObstacleLarge:
			if o.Y >= 0 && o.Y < h-3 {
				dst.DrawLines(o.X, o.Y, largeObstacleSprite, colorLarge)
			}
		case ObstacleSmall:
			if o.Y >= 0 && o.Y < h-1 {
				dst.DrawLines(o.X, o.Y, smallObstacleSprite, colorSmall)
			}
		}
	}

	if y := l.player.Y; y >= 0 && y < float64(h-l.player.H) {
		dst.DrawLines(l.player.X, int(y), playerSprite, colorPlayer)
	}

	drawHUD(dst, *l.run)
}

// drawHUD writes level, score, high score and the remaining extra lives.
func drawHUD(dst *core.Screen, run RunState) {
	w := dst.Width()
	dst.DrawTextColor(w/2-5, 0, fmt.Sprintf("Score: %d", run.Score), colorHUD)
	dst.DrawTextColor(w-20, 0, fmt.Sprintf("High Score: %d", run.HighScore), colorHUD)
	dst.DrawTextColor(2, 0, fmt.Sprintf("Level: %d", run.Level), colorHUD)
	dst.DrawTextColor(w/2-10, 1, "Extra lives: "+hearts(run.ExtraLives()), colorHUD)
}

func hearts(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat("<3 ", n))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, colorBanner)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
