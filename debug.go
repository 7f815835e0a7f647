package flora

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD bar layout.
const (
	hudX         = 10
	hudBarX      = 100
	hudBarWidth  = 200
	hudBarHeight = 10
	hudRowHeight = 25
)

var (
	hudBarBack = color.RGBA{60, 60, 60, 255}
	hudBarFill = color.RGBA{150, 255, 150, 255}
)

// drawLevelBars renders the four band levels as labeled bars in the top-left
// corner. Drawn directly on the screen, after the scene layer, so camera
// shake never moves it.
func drawLevelBars(screen *ebiten.Image, levels Levels) {
	rows := []struct {
		name  string
		value float64
	}{
		{"VOLUME", levels.Volume},
		{"BASS", levels.Bass},
		{"MIDS", levels.Mids},
		{"TREBLE", levels.Treble},
	}

	y := 10
	for _, row := range rows {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %.2f", row.name, row.value), hudX, y)
		vector.DrawFilledRect(screen,
			hudBarX, float32(y+4), hudBarWidth, hudBarHeight,
			hudBarBack, false)
		vector.DrawFilledRect(screen,
			hudBarX, float32(y+4), float32(clamp01(row.value)*hudBarWidth), hudBarHeight,
			hudBarFill, false)
		y += hudRowHeight
	}
}
