//go:build !windows

package output

import (
	"io/fs"

	"github.com/google/renameio/v2"
)

func replaceFile(path string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
