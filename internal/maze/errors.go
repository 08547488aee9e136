package maze

import "errors"

// Session construction errors. They are always wrapped with context; use errors.Is.
var (
	ErrTemplateSize = errors.New("template size mismatch")
	ErrInvalidCell  = errors.New("invalid cell code")
	ErrCellSize     = errors.New("invalid cell size")
	ErrSpeed        = errors.New("speed must be positive and divide the cell size")
	ErrSpawn        = errors.New("spawn outside grid or on a wall")
	ErrThreshold    = errors.New("collision threshold must be positive")
	ErrHeading      = errors.New("invalid heading")
)
