package pixelgen

var (
	Debug = false // set to true for verbose debug output
	RAW   = false // set to true to also dump the raw float32 volume next to the encoded output
	PNG16 = false // set to true to write 16-bit grayscale PNG sequences instead of 8-bit

	// Compile time checks to ensure the generator interface is implemented by all required types
	_ Generator = (*UnitNoise)(nil)
	_ Generator = (*Perlin)(nil)
	_ Generator = (*OctavePerlin)(nil)
	_ Generator = (*Worley)(nil)
	_ Generator = (*OctaveWorley)(nil)
	_ Generator = (*Maze)(nil)
	_ Generator = (*AnimatedMaze)(nil)
	_ Generator = (*SolvedMaze)(nil)
)
