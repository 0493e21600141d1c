//go:build windows

package mmfile

import (
	"os"
)

// Map reads the whole file; the returned cleanup is a no-op.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noop, err
	}
	return data, noop, nil
}
