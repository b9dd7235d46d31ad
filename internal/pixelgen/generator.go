package pixelgen

// Generator is the contract shared by every noise and maze source: one
// Fill call produces a caller-owned volume of the requested shape with
// every value in [0,1]. Implementations are pure functions of
// (seed, configuration, shape) and keep no mutable state between calls.
type Generator interface {
	Fill(shape Shape) (*Grid, error)
	Seed() int64
}
