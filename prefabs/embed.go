package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// assetDir is where edited copies of the embedded files live, relative to
// the working directory. A file there shadows the embedded one.
const assetDir = "prefabs"

type source struct {
	fsys fs.FS
	// ext is appended to names given without an extension.
	ext    string
	prefix string
}

var (
	specSource   = source{fsys: PrefabsFS, ext: ".yaml"}
	scriptSource = source{fsys: ScriptsFS, ext: ".tengo", prefix: "scripts"}
)

// Load reads a tuning prefab such as "player.yaml".
func Load(name string) ([]byte, error) {
	return specSource.read(name)
}

// LoadScript reads an input script by name: "vault", "vault.tengo" and
// "prefabs/scripts/vault.tengo" are the same file.
func LoadScript(name string) ([]byte, error) {
	return scriptSource.read(name)
}

func (s source) read(name string) ([]byte, error) {
	clean := s.clean(name)
	if data, err := os.ReadFile(s.diskPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(s.fsys, clean)
}

// clean maps any accepted spelling of name to its path inside the embedded
// file system.
func (s source) clean(name string) string {
	if name == "" {
		return ""
	}
	p := strings.TrimPrefix(filepath.ToSlash(name), assetDir+"/")
	if s.prefix != "" {
		p = path.Join(s.prefix, strings.TrimPrefix(p, s.prefix+"/"))
	}
	if path.Ext(p) == "" {
		p += s.ext
	}
	return p
}

func (s source) diskPath(clean string) string {
	return filepath.Join(assetDir, filepath.FromSlash(clean))
}
