package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/chazu/skein/pkg/config"
	"github.com/chazu/skein/pkg/graph"
	"github.com/chazu/skein/pkg/interact"
	"github.com/chazu/skein/pkg/render"
	"github.com/chazu/skein/pkg/sim"
	"github.com/chazu/skein/pkg/view"
)

var (
	buttonFill   = color.RGBA{0xEC, 0xEF, 0xF1, 0xFF}
	buttonBorder = color.RGBA{0xB0, 0xBE, 0xC5, 0xFF}
	buttonLabel  = color.RGBA{0x37, 0x47, 0x4F, 0xFF}
)

// button is one toolbar affordance. Toolbar clicks are consumed before
// the interaction controller sees the pointer.
type button struct {
	label      string
	x, y, w, h float64
	action     func(a *App)
}

func (b *button) contains(x, y float64) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// App wires the graph, engine, viewport, controller and renderer into
// one ebiten game. Update runs exactly one simulation tick per frame;
// Draw reads positions and paints. ebiten owns the frame callback chain
// and stops it when RunGame returns, so closing the window tears the
// loop down on every exit path.
type App struct {
	graph     *graph.Graph
	engine    *sim.Engine
	vp        *view.Viewport
	ctrl      *interact.Controller
	width     int
	height    int
	exportDir string
	buttons   []*button
}

// NewApp builds the application around an already-built graph.
func NewApp(g *graph.Graph, cfg config.Config) *App {
	vp := view.New()
	engine := sim.New(cfg.SimConfig())
	ctrl := interact.New(g, vp, engine)
	ctrl.OnNodeSelected = func(id string) {
		log.Printf("node selected: %s", id)
	}
	ctrl.OnRelationshipSelected = func(rel graph.Relationship) {
		log.Printf("relationship selected: %s (%s, strength %d)", rel.ID, rel.Kind, rel.Strength)
	}

	a := &App{
		graph:     g,
		engine:    engine,
		vp:        vp,
		ctrl:      ctrl,
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
		exportDir: ".",
	}
	a.layoutToolbar()
	return a
}

// layoutToolbar places the zoom-in, zoom-out, reset and export buttons
// along the top-right corner.
func (a *App) layoutToolbar() {
	specs := []struct {
		label  string
		w      float64
		action func(a *App)
	}{
		{"+", 26, func(a *App) { a.vp.ZoomIn() }},
		{"-", 26, func(a *App) { a.vp.ZoomOut() }},
		{"reset", 52, func(a *App) { a.vp.Reset() }},
		{"export", 56, func(a *App) { a.export() }},
	}
	const (
		margin = 10.0
		gap    = 6.0
		h      = 24.0
	)
	x := float64(a.width) - margin
	a.buttons = a.buttons[:0]
	for i := len(specs) - 1; i >= 0; i-- {
		s := specs[i]
		x -= s.w
		a.buttons = append(a.buttons, &button{
			label: s.label, x: x, y: margin, w: s.w, h: h, action: s.action,
		})
		x -= gap
	}
}

func (a *App) buttonAt(x, y float64) *button {
	for _, b := range a.buttons {
		if b.contains(x, y) {
			return b
		}
	}
	return nil
}

func (a *App) inside(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(a.width) && y < float64(a.height)
}

func (a *App) scene() render.Scene {
	return render.Scene{Graph: a.graph, View: a.vp}
}

func (a *App) export() {
	path, err := render.ExportPNG(a.scene(), a.width, a.height, a.exportDir)
	if err != nil {
		log.Printf("export failed: %v", err)
		return
	}
	log.Printf("exported %s", path)
}

// Update handles one frame of input and advances the simulation one
// tick. Pointer events reach the controller synchronously, so a drag
// position set here is exactly what the engine skips this tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.vp.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.vp.ZoomOut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		a.vp.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.export()
	}

	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if b := a.buttonAt(px, py); b != nil {
			b.action(a)
		} else {
			a.ctrl.PointerDown(px, py)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if a.inside(px, py) {
			a.ctrl.PointerMove(px, py)
		} else {
			a.ctrl.PointerLeave()
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.ctrl.PointerUp()
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		a.ctrl.Wheel(wy)
	}

	a.engine.Step(a.graph)
	return nil
}

// Draw paints the scene, the legend overlay, and the toolbar.
func (a *App) Draw(screen *ebiten.Image) {
	c := render.NewEbitenCanvas(screen)
	render.Draw(c, a.scene())
	render.DrawLegend(c)
	for _, b := range a.buttons {
		c.FillRect(b.x, b.y, b.w, b.h, buttonFill)
		c.Line(b.x, b.y+b.h, b.x+b.w, b.y+b.h, 1, buttonBorder)
		c.Text(b.label, b.x+b.w/2, b.y+b.h/2, 0.5, 0.5, buttonLabel)
	}
}

// Layout fixes the logical surface size regardless of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
