// Package leveldata parses TMX levels and the level manifest. It is pure data
// and imports no graphics or physics packages.
package leveldata

import (
	"errors"
	"image/color"
)

// Object layer names recognised in level files.
const (
	LayerGround           = "ground"
	LayerPlatforms        = "platforms"
	LayerFailingPlatforms = "failing_platforms"
	LayerCoins            = "coins"
	LayerTraps            = "traps"
	LayerButtons          = "buttons"
	LayerPortals          = "portals"
	LayerLasers           = "lasers"
	LayerBoost            = "boost"
)

var knownLayers = map[string]bool{
	LayerGround:           true,
	LayerPlatforms:        true,
	LayerFailingPlatforms: true,
	LayerCoins:            true,
	LayerTraps:            true,
	LayerButtons:          true,
	LayerPortals:          true,
	LayerLasers:           true,
	LayerBoost:            true,
}

var (
	ErrUnknownLayer       = errors.New("unknown layer")
	ErrMissingLayer       = errors.New("missing required layer")
	ErrBadProperty        = errors.New("malformed object property")
	ErrDuplicateNumber    = errors.New("duplicate platform number")
	ErrNoLevels           = errors.New("no levels in manifest")
	ErrLevelNotInManifest = errors.New("level not in manifest")
)

// DefaultBackground is used when a level file does not set a background colour.
var DefaultBackground = color.RGBA{R: 100, G: 149, B: 237, A: 255}

// Rect is an axis-aligned box in world pixels, y-down.
type Rect struct {
	X, Y, W, H float64
}

// Point is a world position in pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Object is one placed object from a named object layer. Tiled properties are
// parsed into typed fields at load time.
type Object struct {
	ID   uint32
	Name string
	Rect

	// Failing platforms
	Number int

	// Traps
	BoundaryTop       *float64
	BoundaryBottom    *float64
	ActivatedByButton bool
	Speed             float64

	// Moving platforms
	MoveX        float64
	MoveY        float64
	MoveDuration float64 // seconds, one way
}

// Level holds the static description of one level.
type Level struct {
	ID          int
	Name        string
	Width       int // tiles
	Height      int // tiles
	TileWidth   int
	TileHeight  int
	Background  color.RGBA
	Respawn     Point
	Controllers []string

	groups map[string][]Object
}

// NewLevel returns an empty level of width x height tiles. The loader builds
// levels from files; tools and tests build them directly.
func NewLevel(id int, name string, width, height, tileSize int) *Level {
	return &Level{
		ID:         id,
		Name:       name,
		Width:      width,
		Height:     height,
		TileWidth:  tileSize,
		TileHeight: tileSize,
		Background: DefaultBackground,
		groups:     make(map[string][]Object),
	}
}

// SetGroup replaces the objects of a named layer.
func (l *Level) SetGroup(name string, objs []Object) error {
	if !knownLayers[name] {
		return ErrUnknownLayer
	}
	l.groups[name] = objs
	return nil
}

// Group returns the objects of a named layer. A known layer that the file does
// not contain is empty; an unrecognised name is a configuration error.
func (l *Level) Group(name string) ([]Object, error) {
	if !knownLayers[name] {
		return nil, ErrUnknownLayer
	}
	return l.groups[name], nil
}

// MustGroup is Group for layer names that are compile-time constants.
func (l *Level) MustGroup(name string) []Object {
	objs, err := l.Group(name)
	if err != nil {
		panic(name + ": " + err.Error())
	}
	return objs
}

// PixelWidth returns the level width in pixels.
func (l *Level) PixelWidth() int {
	return l.Width * l.TileWidth
}

// PixelHeight returns the level height in pixels.
func (l *Level) PixelHeight() int {
	return l.Height * l.TileHeight
}
