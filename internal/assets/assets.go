// Package assets serves the icons compiled into the binary.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed icons
var files embed.FS

// ErrAssetUnavailable is returned when a requested asset is not embedded.
var ErrAssetUnavailable = errors.New("asset unavailable")

// Icon paths.
const (
	AppIcon   = "icons/app.svg"
	PlusIcon  = "icons/plus.svg"
	MinusIcon = "icons/minus.svg"
)

// Load returns the bytes of the asset at path. An empty path yields no data
// and no error.
func Load(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	b, err := files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not find asset at path %q: %w", path, ErrAssetUnavailable)
	}
	return b, nil
}

// List returns the embedded asset paths starting with prefix, sorted.
func List(prefix string) ([]string, error) {
	var out []string
	err := fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(p, ".DS_Store") {
			return nil
		}
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk assets: %w", err)
	}
	sort.Strings(out)
	return out, nil
}
