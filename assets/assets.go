package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Levels is the built-in level set, rooted at the levels directory.
func Levels() fs.FS {
	levels, err := fs.Sub(assetFS, "levels")
	if err != nil {
		panic("embedded levels missing: " + err.Error())
	}
	return levels
}
