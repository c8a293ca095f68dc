// Package tuning loads the controller tuning file. The default ships embedded
// in the binary; a tuning/ directory on disk next to the working directory
// overrides it, which is what the hot-reload watcher reacts to.
package tuning

import (
	"os"
	"path/filepath"
	"strings"

	"embed"

	"github.com/milk9111/platformkit/control"
)

// DefaultFile is the tuning file name both Load and the watcher care about.
const DefaultFile = "tuning.yaml"

//go:embed tuning.yaml
var tuningFS embed.FS

// Load returns the raw tuning bytes, preferring the on-disk copy over the
// embedded default.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return tuningFS.ReadFile(clean)
}

// Config loads and parses the named tuning file.
func Config(name string) (control.Config, error) {
	data, err := Load(name)
	if err != nil {
		return control.Config{}, err
	}
	return control.LoadConfig(data)
}

// Default loads and parses the shipped tuning file.
func Default() (control.Config, error) {
	return Config(DefaultFile)
}

func cleanPath(path string) string {
	if path == "" {
		return DefaultFile
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "tuning/") {
		return strings.TrimPrefix(s, "tuning/")
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("tuning", filepath.FromSlash(clean))
}
