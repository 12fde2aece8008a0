package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mapamundi/area"
	"github.com/milk9111/mapamundi/camera"
	"github.com/milk9111/mapamundi/scene"
	"gopkg.in/yaml.v3"
)

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{name: "hex", in: `"#ff8000"`, want: color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
		{name: "hex no hash", in: `"00ff00"`, want: color.NRGBA{G: 0xff, A: 0xff}},
		{name: "hex alpha", in: `"#10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{name: "named", in: `green`, want: color.RGBA{G: 0x80, A: 0xff}},
		{name: "named mixed case", in: `ForestGreen`, want: color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}},
		{name: "short hex", in: `"#fff"`, wantErr: true},
		{name: "bad digits", in: `"#gg0000"`, wantErr: true},
		{name: "unknown name", in: `notacolor`, wantErr: true},
		{name: "sequence", in: `[1, 2, 3]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s, got color %v", tt.in, c.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if !sameColor(c.Color, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, c.Color)
			}
		})
	}
}

func TestEmbeddedCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load camera spec: %v", err)
	}
	cfg := spec.Config()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded camera config invalid: %v", err)
	}
	want := camera.Bounds{XMin: -20, XMax: 20, YMin: -13.5, YMax: 13.5}
	if cfg.Bounds != want {
		t.Fatalf("expected bounds %+v, got %+v", want, cfg.Bounds)
	}
	if cfg.ZoomMin != 2 || cfg.ZoomMax != 7 || cfg.InitialZoom != 7 {
		t.Fatalf("unexpected zoom range %v..%v initial %v", cfg.ZoomMin, cfg.ZoomMax, cfg.InitialZoom)
	}
}

func TestCameraSpecDefaults(t *testing.T) {
	var nilSpec *CameraSpec
	if got := nilSpec.Config(); got != camera.DefaultConfig() {
		t.Fatalf("nil spec should give defaults, got %+v", got)
	}

	spec := &CameraSpec{ZoomMin: 1, ZoomMax: 4, InitialZoom: 3, Position: PointSpec{X: 2, Y: -1}}
	cfg := spec.Config()
	def := camera.DefaultConfig()
	if cfg.Bounds != def.Bounds {
		t.Fatalf("expected default bounds, got %+v", cfg.Bounds)
	}
	if cfg.PanSmoothness != def.PanSmoothness || cfg.ZoomSpeed != def.ZoomSpeed {
		t.Fatalf("expected default smoothing and speed, got %+v", cfg)
	}
	if cfg.ZoomMin != 1 || cfg.ZoomMax != 4 || cfg.InitialZoom != 3 {
		t.Fatalf("zoom fields not applied: %+v", cfg)
	}
	if cfg.InitialPosition != (cp.Vector{X: 2, Y: -1}) {
		t.Fatalf("expected initial position (2,-1), got %v", cfg.InitialPosition)
	}
}

func TestEmbeddedAreasSpec(t *testing.T) {
	spec, err := LoadAreasSpec()
	if err != nil {
		t.Fatalf("load areas spec: %v", err)
	}
	areas := spec.List()
	if len(areas) == 0 {
		t.Fatalf("expected areas in embedded catalog")
	}
	for _, a := range areas {
		if !a.Valid() {
			t.Fatalf("embedded area %q is not valid", a.Name)
		}
	}

	cat := area.NewCatalog(areas)
	brazil, ok := cat.Lookup("Brazil")
	if !ok {
		t.Fatalf("expected Brazil in catalog")
	}
	if !sameColor(brazil.HighlightColor, color.RGBA{G: 0x80, A: 0xff}) {
		t.Fatalf("expected Brazil to highlight green, got %v", brazil.HighlightColor)
	}
}

func TestAreasKeepsEntriesWithoutColor(t *testing.T) {
	var spec AreasSpec
	data := []byte("areas:\n  - name: Spain\n    color: \"#f1bf00\"\n  - name: Nowhere\n")
	if err := yaml.Unmarshal(data, &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	areas := spec.List()
	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(areas))
	}
	if !areas[0].Valid() {
		t.Fatalf("expected Spain to be valid")
	}
	if areas[1].Valid() {
		t.Fatalf("expected Nowhere without a color to be invalid")
	}
}

func TestEmbeddedMapPopulates(t *testing.T) {
	mapSpec, err := LoadMapSpec()
	if err != nil {
		t.Fatalf("load map spec: %v", err)
	}
	areasSpec, err := LoadAreasSpec()
	if err != nil {
		t.Fatalf("load areas spec: %v", err)
	}
	cat := area.NewCatalog(areasSpec.List())

	sc := scene.New()
	added, err := mapSpec.Populate(sc)
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	if added != len(mapSpec.Objects) || sc.Len() != added {
		t.Fatalf("expected %d objects, added %d, scene has %d", len(mapSpec.Objects), added, sc.Len())
	}

	bounds := camera.DefaultConfig().Bounds
	for _, obj := range sc.Objects() {
		p := obj.Position
		if p.X < bounds.XMin || p.X > bounds.XMax || p.Y < bounds.YMin || p.Y > bounds.YMax {
			t.Fatalf("object %q at %v is outside the camera bounds", obj.Name, p)
		}
		// Every drawn object is either a catalog area or a deliberate decoy.
		if _, ok := cat.Lookup(obj.Name); !ok && obj.Name != "Atlantis" {
			t.Fatalf("object %q has no catalog entry", obj.Name)
		}
	}

	hit, ok := sc.QueryPoint(cp.Vector{X: -6, Y: -5})
	if !ok || hit.Name != "Brazil" {
		t.Fatalf("expected Brazil at (-6,-5), got %+v ok=%v", hit, ok)
	}
	if _, ok := sc.Renderer(hit.ID); !ok {
		t.Fatalf("expected Brazil to have a renderer")
	}

	hit, ok = sc.QueryPoint(cp.Vector{X: 0, Y: -12.75})
	if !ok || hit.Name != "Antarctica" {
		t.Fatalf("expected Antarctica hit, got %+v ok=%v", hit, ok)
	}
	if _, ok := sc.Renderer(hit.ID); ok {
		t.Fatalf("expected Antarctica to have no renderer")
	}

	if _, ok := sc.QueryPoint(cp.Vector{X: -3, Y: 10}); ok {
		t.Fatalf("expected open ocean at (-3,10)")
	}
}

func TestPopulateReportsBadObjects(t *testing.T) {
	off := false
	spec := &MapSpec{
		DefaultColor: &YAMLColor{Color: color.White},
		Objects: []ObjectSpec{
			{Name: "Box", Shape: "box", Width: 2, Height: 2},
			{Name: "", Shape: "box", Width: 1, Height: 1},
			{Name: "Flat", Shape: "box", Width: 0, Height: 1},
			{Name: "Line", Shape: "polygon", Points: []PointSpec{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			{Name: "Hidden", Shape: "circle", X: 5, Width: 1, Renderer: &off},
		},
	}

	sc := scene.New()
	added, err := spec.Populate(sc)
	if added != 2 {
		t.Fatalf("expected 2 objects added, got %d", added)
	}
	if err == nil {
		t.Fatalf("expected error for bad objects")
	}
	for _, idx := range []string{"object 1", "object 2", "object 3"} {
		if !strings.Contains(err.Error(), idx) {
			t.Fatalf("expected %q in error, got %v", idx, err)
		}
	}

	hit, ok := sc.QueryPoint(cp.Vector{X: 5, Y: 0})
	if !ok || hit.Name != "Hidden" {
		t.Fatalf("expected Hidden hit, got %+v ok=%v", hit, ok)
	}
	if _, ok := sc.Renderer(hit.ID); ok {
		t.Fatalf("renderer: false should leave the object without a renderer")
	}
}

func TestSelectionConfig(t *testing.T) {
	var nilSpec *MapSpec
	cfg := nilSpec.SelectionConfig()
	if cfg.MaxClickDistance != 0.1 {
		t.Fatalf("expected default click distance 0.1, got %v", cfg.MaxClickDistance)
	}
	if !sameColor(cfg.DefaultColor, DefaultAreaColor) {
		t.Fatalf("expected default area color, got %v", cfg.DefaultColor)
	}

	spec := &MapSpec{MaxClickDistance: 0.25, DefaultColor: &YAMLColor{Color: color.Black}}
	cfg = spec.SelectionConfig()
	if cfg.MaxClickDistance != 0.25 {
		t.Fatalf("expected click distance 0.25, got %v", cfg.MaxClickDistance)
	}
	if !sameColor(cfg.DefaultColor, color.Black) {
		t.Fatalf("expected black default color, got %v", cfg.DefaultColor)
	}
	if !sameColor(spec.BackgroundColor(), color.Black) {
		t.Fatalf("expected black background fallback")
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	if _, ok := ModTime(CameraFile); ok {
		t.Fatalf("expected no disk copy yet")
	}
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load embedded camera spec: %v", err)
	}
	if spec.ZoomMin != 2 {
		t.Fatalf("expected embedded zoom_min 2, got %v", spec.ZoomMin)
	}

	override := []byte("zoom_min: 3\nzoom_max: 5\n")
	if err := os.WriteFile(filepath.Join(dir, CameraFile), override, 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, ok := ModTime("prefabs/" + CameraFile); !ok {
		t.Fatalf("expected disk copy to be found")
	}
	spec, err = LoadCameraSpec()
	if err != nil {
		t.Fatalf("load disk camera spec: %v", err)
	}
	if spec.ZoomMin != 3 || spec.ZoomMax != 5 {
		t.Fatalf("expected disk override 3..5, got %v..%v", spec.ZoomMin, spec.ZoomMax)
	}
}

func TestLoadSpecErrors(t *testing.T) {
	if _, err := LoadSpec[MapSpec]("missing.yaml"); err == nil || !strings.Contains(err.Error(), "prefabs: load missing.yaml") {
		t.Fatalf("expected load error, got %v", err)
	}

	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
	if err := os.WriteFile(filepath.Join(dir, MapFile), []byte("objects: [\n"), 0o644); err != nil {
		t.Fatalf("write broken map: %v", err)
	}
	if _, err := LoadMapSpec(); err == nil || !strings.Contains(err.Error(), "prefabs: unmarshal map.yaml") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestLoadSpecRejectsEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	for _, content := range []string{"", "   \n\n", "# saving...\n"} {
		if err := os.WriteFile(filepath.Join(dir, AreasFile), []byte(content), 0o644); err != nil {
			t.Fatalf("write areas: %v", err)
		}
		if _, err := LoadAreasSpec(); !errors.Is(err, ErrEmptySpec) {
			t.Fatalf("expected ErrEmptySpec for %q, got %v", content, err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, AreasFile), []byte("areas: []\n"), 0o644); err != nil {
		t.Fatalf("write areas: %v", err)
	}
	spec, err := LoadAreasSpec()
	if err != nil {
		t.Fatalf("expected an explicit empty list to load, got %v", err)
	}
	if len(spec.Areas) != 0 {
		t.Fatalf("expected no areas, got %d", len(spec.Areas))
	}
}

func TestStampsChanged(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
	path := filepath.Join(dir, MapFile)

	stamps := NewStamps()
	if stamps.Changed(MapFile) {
		t.Fatalf("expected no change while only the embedded copy exists")
	}

	if err := os.WriteFile(path, []byte("name: world\n"), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	base := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, base, base); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if !stamps.Changed(MapFile) {
		t.Fatalf("expected a new disk copy to count as changed")
	}
	if stamps.Changed("prefabs/" + MapFile) {
		t.Fatalf("expected an untouched file to be unchanged")
	}

	later := base.Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if !stamps.Changed(MapFile) {
		t.Fatalf("expected a newer modification time to count as changed")
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove map: %v", err)
	}
	if !stamps.Changed(MapFile) {
		t.Fatalf("expected removal to count as one change")
	}
	if stamps.Changed(MapFile) {
		t.Fatalf("expected removal to be reported only once")
	}

	var nilStamps *Stamps
	if !nilStamps.Changed(MapFile) {
		t.Fatalf("expected nil stamps to always report a change")
	}
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
