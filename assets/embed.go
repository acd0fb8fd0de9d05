package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed textures/*.png
var assetsFS embed.FS

// FS is the embedded asset tree. Names are passed through Clean, so both
// "textures/ground.png" and "assets/textures/ground.png" resolve.
func FS() fs.FS {
	return cleanFS{assetsFS}
}

type cleanFS struct {
	embed.FS
}

func (c cleanFS) Open(name string) (fs.File, error) {
	return c.FS.Open(Clean(name))
}

func (c cleanFS) ReadFile(name string) ([]byte, error) {
	return c.FS.ReadFile(Clean(name))
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(Clean(path))
}

// Clean turns a user supplied texture path into an assets-relative one.
func Clean(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "./")
	return strings.TrimPrefix(s, "assets/")
}
