package pixelgen

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRaw dumps the volume as little-endian binary: a T, Y, X int32
// header followed by the full buffer as float32. Meant for piping into
// external tooling, enabled via the RAW flag.
func (g *Grid) SaveRaw(path string) error {
	exp64 := int64(g.Shape.T) * int64(g.Shape.Y) * int64(g.Shape.X)
	if int64(len(g.Buf)) != exp64 {
		return fmt.Errorf("Buf length mismatch: got %d, expected %d (T*Y*X)", len(g.Buf), exp64)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	// Header: T, Y, X as int32 (little-endian)
	if err := binary.Write(w, binary.LittleEndian, int32(g.Shape.T)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(g.Shape.Y)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(g.Shape.X)); err != nil {
		return err
	}

	buf32 := make([]float32, len(g.Buf))
	for i, v := range g.Buf {
		buf32[i] = float32(v)
	}
	if err := binary.Write(w, binary.LittleEndian, buf32); err != nil {
		return err
	}
	return w.Flush()
}
