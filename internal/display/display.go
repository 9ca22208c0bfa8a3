// Package display hosts a scene in a desktop window. The window runs a
// fixed-step redraw loop: the scene advances once per tick and the
// canvas pixels are blitted to the screen each frame.
package display

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ejjaffe/parabolines"
)

// windowScale doubles the window size relative to the canvas; the
// canvas keeps its own resolution via Layout.
const windowScale = 2

// Run opens a window titled title and drives the scene at 60 ticks per
// second until the window closes or the user quits.
func Run(title string, scene *parabolines.Scene) error {
	if scene == nil {
		return errors.New("display: nil scene")
	}

	g := &game{
		scene:  scene,
		canvas: parabolines.NewCanvas(scene.Width, scene.Height),
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(scene.Width*windowScale, scene.Height*windowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

// game adapts a scene to the ebiten.Game interface. The scene is
// advanced in Update so animation stays locked to the tick rate; Draw
// only copies pixels.
type game struct {
	scene  *parabolines.Scene
	canvas *parabolines.Canvas
	frame  *ebiten.Image
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Frame(g.canvas)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.canvas.Width(), g.canvas.Height())
	}
	g.frame.WritePixels(g.canvas.Pixmap().Data())
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}
