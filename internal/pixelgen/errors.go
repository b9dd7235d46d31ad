package pixelgen

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape signals a requested output shape with a non-positive dimension.
	ErrBadShape = errors.New("shape dimensions must be positive")
	// ErrBadConfig signals an out-of-range generator option (zero octaves, zero points, ...).
	ErrBadConfig = errors.New("invalid generator configuration")
	// ErrRange signals a value outside [0,1] reaching a conversion that requires bounded input.
	ErrRange = errors.New("value outside [0,1]")
	// ErrShapeMismatch signals two grids of different shapes handed to a blend.
	ErrShapeMismatch = errors.New("grid shapes differ")
	// ErrUnsupportedFormat signals an output path with an extension no encoder handles.
	ErrUnsupportedFormat = errors.New("unsupported file type")
)

func errBadConfig(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadConfig, fmt.Sprintf(format, args...))
}
