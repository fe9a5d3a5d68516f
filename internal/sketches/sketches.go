// Package sketches is a catalog of small animations built on sketch.
// Each entry returns fresh options, so its state is private to one App.
package sketches

import (
	"slices"
	"strings"

	"github.com/gogpu/sketch"
)

// Sketch is a named animation.
type Sketch struct {
	Name  string
	About string
	// Options builds the configuration and callbacks of a new App.
	Options func() []sketch.Option
}

var catalog = []Sketch{
	{"clock", "analog clock showing local time", clock},
	{"cardioid", "times-two table on a circle", cardioid},
	{"chaos", "chaos game on a pentagon", chaos},
	{"life", "Conway's game of life", life},
	{"snowflake", "diffusion-limited snowflake", snowflake},
	{"polygon", "star polygon following the pointer", polygon},
	{"waves", "sine waves over a logical grid", waves},
}

// All returns every sketch sorted by name.
func All() []Sketch {
	out := slices.Clone(catalog)
	slices.SortFunc(out, func(a, b Sketch) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Lookup finds a sketch by name.
func Lookup(name string) (Sketch, bool) {
	i := slices.IndexFunc(catalog, func(s Sketch) bool { return s.Name == name })
	if i < 0 {
		return Sketch{}, false
	}
	return catalog[i], true
}
