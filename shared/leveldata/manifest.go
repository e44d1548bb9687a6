package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest's file name inside the levels directory.
const ManifestFile = "levels.yaml"

// Manifest lists the playable levels in order.
type Manifest struct {
	Levels []ManifestEntry `yaml:"levels"`
}

// ManifestEntry is the static per-level table: which file to load, where the
// player respawns and which hazard controllers the level composes.
type ManifestEntry struct {
	ID          int      `yaml:"id"`
	File        string   `yaml:"file"`
	Respawn     Point    `yaml:"respawn"`
	Controllers []string `yaml:"controllers"`
}

// ParseManifest decodes and validates a manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Levels) == 0 {
		return nil, ErrNoLevels
	}

	sort.Slice(m.Levels, func(i, j int) bool {
		return m.Levels[i].ID < m.Levels[j].ID
	})
	for i, e := range m.Levels {
		if e.ID != i+1 {
			return nil, fmt.Errorf("manifest: level ids must run 1..%d, got %d at position %d", len(m.Levels), e.ID, i+1)
		}
		if e.File == "" {
			return nil, fmt.Errorf("manifest: level %d has no file", e.ID)
		}
	}
	return &m, nil
}

// Loader resolves level ids through a manifest and caches parsed levels.
type Loader struct {
	fsys     fs.FS
	dir      string
	manifest *Manifest
	cache    map[int]*Level
}

// NewLoader reads the manifest from dir inside fsys.
func NewLoader(fsys fs.FS, dir string) (*Loader, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return &Loader{
		fsys:     fsys,
		dir:      dir,
		manifest: m,
		cache:    make(map[int]*Level, len(m.Levels)),
	}, nil
}

// Count returns the number of levels in the manifest.
func (l *Loader) Count() int {
	return len(l.manifest.Levels)
}

// Load returns the level with the given 1-based id. Parsed levels are cached;
// callers must treat the result as read-only.
func (l *Loader) Load(id int) (*Level, error) {
	if lvl, ok := l.cache[id]; ok {
		return lvl, nil
	}
	if id < 1 || id > len(l.manifest.Levels) {
		return nil, fmt.Errorf("%w: %d", ErrLevelNotInManifest, id)
	}

	entry := l.manifest.Levels[id-1]
	lvl, err := LoadLevel(l.fsys, path.Join(l.dir, entry.File))
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	}
	lvl.ID = entry.ID
	lvl.Respawn = entry.Respawn
	lvl.Controllers = entry.Controllers

	l.cache[id] = lvl
	log.Printf("[leveldata] loaded level %d (%s): %dx%d tiles, %d controllers",
		id, entry.File, lvl.Width, lvl.Height, len(lvl.Controllers))
	return lvl, nil
}

// LoadAll parses every level so configuration errors surface at startup.
func (l *Loader) LoadAll() ([]*Level, error) {
	levels := make([]*Level, 0, l.Count())
	for id := 1; id <= l.Count(); id++ {
		lvl, err := l.Load(id)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
