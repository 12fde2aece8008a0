package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed icons/*.png
var assetsFS embed.FS

// LoadImage loads an embedded image by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// Icons caches decoded area icons by reference. Missing or broken icons are
// logged once and resolve to nil.
type Icons struct {
	cache map[string]*ebiten.Image
}

func NewIcons() *Icons {
	return &Icons{cache: make(map[string]*ebiten.Image)}
}

// Icon returns the image for ref, or nil when ref is empty or unusable.
func (ic *Icons) Icon(ref string) *ebiten.Image {
	if ic == nil || ref == "" {
		return nil
	}
	if img, ok := ic.cache[ref]; ok {
		return img
	}
	img, err := LoadImage(ref)
	if err != nil {
		log.Printf("assets: load icon %s: %v", ref, err)
	}
	ic.cache[ref] = img
	return img
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
