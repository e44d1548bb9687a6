package assets

import "embed"

// LevelsDir is the directory inside Levels holding the manifest and TMX files.
const LevelsDir = "levels"

//go:embed all:levels
var Levels embed.FS
