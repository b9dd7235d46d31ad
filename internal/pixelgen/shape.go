package pixelgen

import (
	"fmt"
	"math"
)

// Shape describes the dimensions of a generated volume: T frames of Y×X pixels.
type Shape struct {
	T int `json:"t"`
	Y int `json:"y"`
	X int `json:"x"`
}

// Validate returns ErrBadShape if any dimension is not a positive integer.
func (s Shape) Validate() error {
	if s.T <= 0 || s.Y <= 0 || s.X <= 0 {
		return fmt.Errorf("%w: (%d, %d, %d)", ErrBadShape, s.T, s.Y, s.X)
	}
	return nil
}

// Pixels returns the total element count T*Y*X.
func (s Shape) Pixels() int {
	return s.T * s.Y * s.X
}

// Diagonal returns the Euclidean length of the volume's space diagonal.
func (s Shape) Diagonal() Real {
	t, y, x := Real(s.T), Real(s.Y), Real(s.X)
	return math.Sqrt(t*t + y*y + x*x)
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.T, s.Y, s.X)
}
