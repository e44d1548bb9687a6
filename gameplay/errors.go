package gameplay

import "errors"

var (
	ErrUnknownController = errors.New("unknown controller")
	ErrLevelNotFound     = errors.New("level not found")
	ErrRespawnOnPortal   = errors.New("respawn point overlaps a portal")
)
