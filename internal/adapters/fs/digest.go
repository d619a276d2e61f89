package fs

import (
	"errors"
	"io/fs"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/slnver/internal/core/ports"
)

// Digest returns the xxhash of the file at path, or "" when it does not exist.
func Digest(fsys ports.FileSystem, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}
