package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/mapamundi/area"
	"github.com/milk9111/mapamundi/assets"
	"github.com/milk9111/mapamundi/camera"
	"github.com/milk9111/mapamundi/common"
	"github.com/milk9111/mapamundi/input"
	"github.com/milk9111/mapamundi/prefabs"
	"github.com/milk9111/mapamundi/scene"
	"github.com/milk9111/mapamundi/selection"
	"github.com/milk9111/mapamundi/ui"
)

type Options struct {
	Debug bool
	Watch bool
	Pan   input.Button
}

type Game struct {
	frames int
	opts   Options

	poller    *Poller
	scene     *scene.Scene
	catalog   *area.Catalog
	camera    *camera.Controller
	selection *selection.Controller
	panel     *ui.InfoPanel
	icons     *assets.Icons
	watcher   *prefabs.Watcher
	stamps    *prefabs.Stamps

	cameraSpec *prefabs.CameraSpec
	mapSpec    *prefabs.MapSpec
}

func NewGame(opts Options) *Game {
	g := &Game{
		opts:    opts,
		poller:  NewPoller(opts.Pan),
		scene:   scene.New(),
		catalog: area.NewCatalog(nil),
		icons:   assets.NewIcons(),
		stamps:  prefabs.NewStamps(),
	}
	g.panel = ui.NewInfoPanel(g.icons.Icon, func() {
		if g.selection != nil {
			g.selection.Unselect()
		}
	})

	for _, name := range []string{prefabs.CameraFile, prefabs.AreasFile, prefabs.MapFile} {
		g.stamps.Changed(name)
	}
	g.loadCamera()
	g.loadAreas()
	g.loadMap()
	g.checkMap()
	g.buildCamera()
	g.buildSelection()

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("failed to watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Update() error {
	g.frames++

	g.poller.Update()
	in := g.poller.State()
	if g.panel.Contains(int(in.CursorX), int(in.CursorY)) {
		g.poller.Capture()
	}

	g.camera.Advance(1.0 / common.TPS)
	g.selection.Update()
	g.panel.Update()

	if in.Cancel {
		g.selection.Unselect()
	}
	if in.Copy {
		g.copySelected()
	}

	g.reloadChanged()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.mapSpec.BackgroundColor())

	for _, obj := range g.scene.Objects() {
		if sprite := obj.Sprite(); sprite != nil {
			g.fillOutline(screen, obj.Outline, sprite.Color())
		}
	}
	if g.opts.Debug {
		drawSpaceDebug(screen, g.scene.Space(), g.camera)
	}

	g.panel.Draw(screen)

	if g.opts.Debug {
		st := g.camera.State()
		rect := g.camera.VisibleRect()
		selected := "none"
		if a, ok := g.selection.Selected(); ok {
			selected = a.Name
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f\ncam (%.2f, %.2f) -> (%.2f, %.2f)\nzoom %.2f -> %.2f\nview x[%.2f, %.2f] y[%.2f, %.2f]\ngesture %s panning %v\nselected %s",
			ebiten.ActualFPS(),
			st.CurrentPosition.X, st.CurrentPosition.Y, st.TargetPosition.X, st.TargetPosition.Y,
			st.CurrentZoom, st.TargetZoom,
			rect.XMin, rect.XMax, rect.YMin, rect.YMax,
			g.selection.State(), g.camera.Panning(),
			selected,
		))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) fillOutline(screen *ebiten.Image, outline []cp.Vector, c color.Color) {
	if len(outline) < 3 || c == nil {
		return
	}
	var path vector.Path
	for i, p := range outline {
		s := g.camera.WorldToScreen(p)
		if i == 0 {
			path.MoveTo(float32(s.X), float32(s.Y))
		} else {
			path.LineTo(float32(s.X), float32(s.Y))
		}
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)
}

func (g *Game) copySelected() {
	a, ok := g.selection.Selected()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(a.Name + "\n" + a.Description); err != nil {
		log.Printf("failed to copy %s to clipboard: %v", a.Name, err)
	}
}

func (g *Game) loadCamera() {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		log.Printf("failed to load camera spec: %v", err)
		return
	}
	g.cameraSpec = spec
}

func (g *Game) loadAreas() {
	spec, err := prefabs.LoadAreasSpec()
	if err != nil {
		log.Printf("failed to load area catalog: %v", err)
		return
	}
	g.catalog.Replace(spec.List())
}

func (g *Game) loadMap() {
	spec, err := prefabs.LoadMapSpec()
	if err != nil {
		log.Printf("failed to load map: %v", err)
		return
	}
	g.mapSpec = spec
	g.scene.Clear()
	if _, err := spec.Populate(g.scene); err != nil {
		log.Printf("map %s: %v", spec.Name, err)
	}
}

// checkMap logs map objects that can never be selected because no catalog
// entry carries their name.
func (g *Game) checkMap() {
	for _, u := range g.mapSpec.Unmatched(g.catalog) {
		if u.Suggestion != "" {
			log.Printf("map object %q has no catalog entry (did you mean %q?)", u.Object, u.Suggestion)
			continue
		}
		log.Printf("map object %q has no catalog entry", u.Object)
	}
}

func (g *Game) buildCamera() {
	viewport := camera.FixedViewport{Width: common.BaseWidth, Height: common.BaseHeight}
	g.camera = camera.New(g.cameraSpec.Config(), g.poller.State(), viewport, g.scene)
}

// buildSelection replaces the selection controller. Any highlight held by
// the previous one is cleared first.
func (g *Game) buildSelection() {
	if g.selection != nil {
		g.selection.Unselect()
	}
	cfg := g.mapSpec.SelectionConfig()
	cfg.PanDisqualifies = g.opts.Pan != input.ButtonLeft
	g.selection = selection.New(cfg, g.poller.State(), g.camera, g.scene, g.catalog, g.panel)
}

// reloadChanged applies prefab edits picked up by the watcher.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Pending() {
		if !g.stamps.Changed(name) {
			continue
		}
		switch name {
		case prefabs.CameraFile:
			log.Printf("reloading %s", name)
			g.loadCamera()
			g.buildCamera()
			g.buildSelection()
		case prefabs.AreasFile:
			log.Printf("reloading %s", name)
			g.selection.Unselect()
			g.loadAreas()
			g.checkMap()
		case prefabs.MapFile:
			log.Printf("reloading %s", name)
			g.selection.Unselect()
			g.loadMap()
			g.checkMap()
			g.buildSelection()
		}
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefab watcher: %v", err)
	default:
	}
}
