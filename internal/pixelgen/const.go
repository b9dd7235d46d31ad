package pixelgen

// Real is the scalar type used throughout the generation pipeline.
type Real = float64

const (
	// Permutation table period. Noise tiles at this interval on every axis.
	PermSize = 256

	DefaultGIFDelay = 5 // 100ths of a second per frame
	DefaultGamma    = 1.0

	DefaultOctaves     = 4
	DefaultPersistence = 0.5
	DefaultAmplitude   = 1.0
	DefaultPoints      = 16

	// Maze rendering values; walls stay darkest, start/end brightest.
	MazeWallValue  = 0.0
	MazeOpenValue  = 0.5
	MazePathValue  = 0.75
	MazeMarkValue  = 1.0
	MazeCellPixels = 2 // open interior pixels per cell at scale 1

	// hot-loop constants
	epsDist = 1e-9
)
