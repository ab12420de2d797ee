package output

import (
	"errors"
	"fmt"

	"randarray/pkg/generator"
	"randarray/pkg/utils"
)

var ErrWrite = errors.New("failed to write output file")

// Writer persists generated sequences as array literals
type Writer struct {
	Path string
}

func NewWriter(path string) *Writer {
	return &Writer{
		Path: path,
	}
}

// Write renders values and replaces the file at w.Path with them.
// It returns the number of bytes written.
func (w *Writer) Write(values []int64) (int, error) {
	data := []byte(generator.FormatArray(values))

	if err := utils.WriteFile(w.Path, data, 0644); err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrWrite, w.Path, err)
	}
	return len(data), nil
}
