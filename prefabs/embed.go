package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk directory checked before the embedded copies, so specs
// can be edited without rebuilding.
var Dir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime is the modification time of name's disk copy. It reports false when
// only the embedded copy exists.
func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}

// Stamps remembers the disk modification time of each spec when it was last
// loaded, so repeated change events for an untouched file can be skipped.
type Stamps struct {
	seen map[string]time.Time
}

func NewStamps() *Stamps {
	return &Stamps{seen: make(map[string]time.Time)}
}

// Changed reports whether name's disk copy differs from the one last
// recorded, and records the current one. A disk copy that disappears counts
// as a change once, since Load then falls back to the embedded spec.
func (s *Stamps) Changed(name string) bool {
	if s == nil {
		return true
	}
	key := cleanPrefabPath(name)
	prev, had := s.seen[key]
	mt, ok := ModTime(key)
	if !ok {
		delete(s.seen, key)
		return had
	}
	s.seen[key] = mt
	return !had || !prev.Equal(mt)
}
