package brickball

import (
	"fmt"

	"github.com/vovakirdan/brickball/internal/core"
)

const (
	hudMargin     = 10.0
	hudLineHeight = 24.0
)

func (g *Game) renderHUD(dst core.Canvas) {
	c := g.ctx.World.Counters()
	lines := []string{
		fmt.Sprintf("Bodies: %d, Contacts: %d", c.Bodies, c.Contacts),
		fmt.Sprintf("Bricks broken: %d/%d", g.score, g.totalBricks),
	}
	switch {
	case g.over:
		lines = append(lines, "All bricks down! R to restart")
	case g.paused:
		lines = append(lines, "PAUSED")
	}

	for i, line := range lines {
		dst.DrawText(core.V(hudMargin, hudMargin+float64(i)*hudLineHeight), line, core.ColorWhite)
	}
}
