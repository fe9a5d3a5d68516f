// Package fonts resolves font family names to gg font sources.
//
// Families are looked up case-insensitively, first among the fonts
// compiled into the binary (the Go fonts and Latin Modern), then among the
// installed system fonts. Unknown families fall back to Go Regular so that
// text always renders.
package fonts

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
)

// Default is the family used when none is requested or the requested one
// cannot be found.
const Default = "go"

// Mono is a builtin monospace family.
const Mono = "mono"

var builtin = map[string][]byte{
	"go":          goregular.TTF,
	"goregular":   goregular.TTF,
	"sans":        goregular.TTF,
	"sansserif":   goregular.TTF,
	"gobold":      gobold.TTF,
	"bold":        gobold.TTF,
	"gomono":      gomono.TTF,
	"mono":        gomono.TTF,
	"monospace":   gomono.TTF,
	"latinmodern": lmroman10regular.TTF,
	"lmroman":     lmroman10regular.TTF,
	"serif":       lmroman10regular.TTF,
	"lmsans":      lmsans10regular.TTF,
	"lmmono":      lmmono10regular.TTF,
	"typewriter":  lmmono10regular.TTF,
}

// Normalize folds case and drops spaces, dashes and underscores so that
// "Latin Modern", "latin-modern" and "LatinModern" compare equal.
func Normalize(family string) string {
	f := cases.Fold().String(strings.TrimSpace(family))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(f)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger getter used for fallback warnings.
func WithLogger(get func() *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = get
	}
}

// WithSystemFonts enables scanning installed fonts, caching the index in
// cacheDir. An empty cacheDir uses the user cache directory.
func WithSystemFonts(cacheDir string) Option {
	return func(r *Resolver) {
		r.system = true
		r.cacheDir = cacheDir
	}
}

// Resolver maps family names to font sources, caching parsed fonts.
// It is safe for concurrent use.
type Resolver struct {
	logger   func() *slog.Logger
	system   bool
	cacheDir string

	mu      sync.Mutex
	sources map[string]*text.FontSource

	scanOnce  sync.Once
	footprint map[string]string // normalized family -> font file
}

// New creates a Resolver. System fonts are only consulted when
// WithSystemFonts is given.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		logger:  slog.Default,
		sources: make(map[string]*text.FontSource),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Face returns a face for family at size points. It never returns nil:
// unknown families fall back to Default.
func (r *Resolver) Face(family string, size float64) text.Face {
	src, err := r.Source(family)
	if err != nil {
		r.logger().Warn("sketch: font fallback", "family", family, "err", err)
		src, _ = r.Source(Default)
	}
	return src.Face(size)
}

// Source returns the font source for family.
func (r *Resolver) Source(family string) (*text.FontSource, error) {
	key := Normalize(family)
	if key == "" {
		key = Default
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[key]; ok {
		return src, nil
	}

	var (
		src *text.FontSource
		err error
	)
	if data, ok := builtin[key]; ok {
		src, err = text.NewFontSource(data)
	} else if file, ok := r.systemFont(key); ok {
		src, err = text.NewFontSourceFromFile(file)
	} else {
		return nil, &NotFoundError{Family: family}
	}
	if err != nil {
		return nil, err
	}
	r.sources[key] = src
	return src, nil
}

// systemFont looks key up in the installed font index, building the index
// on first use.
func (r *Resolver) systemFont(key string) (string, bool) {
	if !r.system {
		return "", false
	}
	r.scanOnce.Do(r.scan)
	file, ok := r.footprint[key]
	return file, ok
}

func (r *Resolver) scan() {
	r.footprint = make(map[string]string)

	dir := r.cacheDir
	if dir == "" {
		var err error
		if dir, err = os.UserCacheDir(); err != nil {
			r.logger().Warn("sketch: no font cache directory", "err", err)
			dir = os.TempDir()
		}
	}

	prints, err := fontscan.SystemFonts(nil, dir)
	if err != nil {
		r.logger().Warn("sketch: system font scan failed", "err", err)
		return
	}
	for _, fp := range prints {
		key := Normalize(fp.Family)
		if _, seen := r.footprint[key]; seen || fp.Location.File == "" {
			continue
		}
		r.footprint[key] = fp.Location.File
	}
	r.logger().Debug("sketch: system fonts indexed", "families", len(r.footprint))
}

// NotFoundError is returned when a family is neither built in nor installed.
type NotFoundError struct {
	Family string
}

func (e *NotFoundError) Error() string {
	return "fonts: family not found: " + e.Family
}
