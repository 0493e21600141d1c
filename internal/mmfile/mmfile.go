// Package mmfile provides platform-specific helpers for memory-mapping input files.
package mmfile

import (
	"io"
	"os"
)

func noop() error { return nil }

func readAll(r io.Reader) ([]byte, func() error, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}

// ReadFile returns the contents of path, or of stdin when path is "" or "-".
// The cleanup func must be called once the data is no longer needed.
func ReadFile(path string) ([]byte, func() error, error) {
	if path == "" || path == "-" {
		return readAll(os.Stdin)
	}
	return Map(path)
}
