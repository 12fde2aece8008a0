// Package area holds the selectable area catalog: display data keyed by the
// area's case-sensitive name.
package area

import (
	"image/color"
	"log"
)

// Area is the display data for one selectable region.
type Area struct {
	Name        string
	Description string
	// HighlightColor tints the area while it is selected.
	HighlightColor color.Color
	// Icon is an asset reference, e.g. "icons/brazil.png".
	Icon string
}

// Valid reports whether the entry can be selected.
func (a Area) Valid() bool {
	return a.Name != "" && a.HighlightColor != nil
}

// Catalog looks areas up by exact name. When names repeat, the first entry
// wins.
type Catalog struct {
	areas []Area
	index map[string]int
}

func NewCatalog(areas []Area) *Catalog {
	c := &Catalog{}
	c.Replace(areas)
	return c
}

// Replace swaps the catalog contents in place so holders of the pointer see
// the new entries.
func (c *Catalog) Replace(areas []Area) {
	if c == nil {
		return
	}
	c.areas = make([]Area, 0, len(areas))
	c.index = make(map[string]int, len(areas))
	for _, a := range areas {
		if _, dup := c.index[a.Name]; dup {
			log.Printf("area: duplicate catalog entry %q ignored", a.Name)
			continue
		}
		c.index[a.Name] = len(c.areas)
		c.areas = append(c.areas, a)
	}
}

func (c *Catalog) Lookup(name string) (Area, bool) {
	if c == nil {
		return Area{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Area{}, false
	}
	return c.areas[i], true
}

// Names returns area names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.areas))
	for _, a := range c.areas {
		names = append(names, a.Name)
	}
	return names
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.areas)
}
