package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS / fstest.MapFS (tools and tests).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       path.Base(tmxPath),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Background: DefaultBackground,
		groups:     make(map[string][]Object),
	}

	if levelMap.BackgroundColor != nil {
		level.Background = color.RGBAModel.Convert(levelMap.BackgroundColor).(color.RGBA)
	}

	for _, og := range levelMap.ObjectGroups {
		if !knownLayers[og.Name] {
			// Decoration layers are allowed in the file; only lookups are strict.
			continue
		}
		objs := make([]Object, 0, len(og.Objects))
		for _, o := range og.Objects {
			obj, err := parseObject(og.Name, o)
			if err != nil {
				return nil, fmt.Errorf("%s: layer %s object %d: %w", tmxPath, og.Name, o.ID, err)
			}
			objs = append(objs, obj)
		}
		level.groups[og.Name] = append(level.groups[og.Name], objs...)
	}

	if len(level.groups[LayerGround]) == 0 {
		return nil, fmt.Errorf("%s: %w: %s", tmxPath, ErrMissingLayer, LayerGround)
	}
	if err := checkPlatformNumbers(level.groups[LayerFailingPlatforms]); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	return level, nil
}

func parseObject(layer string, o *tiled.Object) (Object, error) {
	obj := Object{
		ID:   o.ID,
		Name: o.Name,
		Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
	}

	var err error
	switch layer {
	case LayerFailingPlatforms:
		number, ok, perr := intProperty(o.Properties, "number")
		if perr != nil {
			return obj, perr
		}
		if !ok {
			number = int(o.ID)
		}
		obj.Number = number
	case LayerTraps:
		if obj.BoundaryTop, err = optionalFloat(o.Properties, "boundary_top"); err != nil {
			return obj, err
		}
		if obj.BoundaryBottom, err = optionalFloat(o.Properties, "boundary_bottom"); err != nil {
			return obj, err
		}
		obj.ActivatedByButton = o.Properties.GetBool("activated_by_button")
		if obj.Speed, err = floatOr(o.Properties, "speed", 0); err != nil {
			return obj, err
		}
	case LayerPlatforms:
		if obj.MoveX, err = floatOr(o.Properties, "move_x", 0); err != nil {
			return obj, err
		}
		if obj.MoveY, err = floatOr(o.Properties, "move_y", 0); err != nil {
			return obj, err
		}
		if obj.MoveDuration, err = floatOr(o.Properties, "move_duration", 0); err != nil {
			return obj, err
		}
	}
	return obj, nil
}

func checkPlatformNumbers(objs []Object) error {
	seen := make(map[int]bool, len(objs))
	for _, o := range objs {
		if seen[o.Number] {
			return fmt.Errorf("%w: %d", ErrDuplicateNumber, o.Number)
		}
		seen[o.Number] = true
	}
	return nil
}

func findProperty(props tiled.Properties, name string) (string, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

func optionalFloat(props tiled.Properties, name string) (*float64, error) {
	raw, ok := findProperty(props, name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrBadProperty, name, raw)
	}
	return &v, nil
}

func floatOr(props tiled.Properties, name string, fallback float64) (float64, error) {
	v, err := optionalFloat(props, name)
	if err != nil || v == nil {
		return fallback, err
	}
	return *v, nil
}

func intProperty(props tiled.Properties, name string) (int, bool, error) {
	raw, ok := findProperty(props, name)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", ErrBadProperty, name, raw)
	}
	return v, true, nil
}
