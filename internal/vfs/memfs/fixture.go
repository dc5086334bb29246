package memfs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture describes an arena in YAML:
//
//	cwd: C:\work
//	entries:
//	  - path: C:\work\dir
//	    kind: dir
//	  - path: C:\work\link
//	    kind: symlink
//	    target: dir
type Fixture struct {
	Cwd     string  `yaml:"cwd"`
	Entries []Entry `yaml:"entries"`
}

// Entry is a single arena entry. Entries are created in order and missing
// parent directories are created along the way.
type Entry struct {
	Path   string `yaml:"path"`
	Kind   Kind   `yaml:"kind"`
	Target string `yaml:"target,omitempty"`
}

// Load builds an arena from a YAML fixture.
func Load(r io.Reader) (*FS, error) {
	var fixture Fixture

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}

	f := New(fixture.Cwd)
	for i, e := range fixture.Entries {
		if err := f.Add(e); err != nil {
			return nil, fmt.Errorf("fixture entry %d: %w", i, err)
		}
	}
	return f, nil
}

// LoadFile builds an arena from the YAML fixture stored at path.
func LoadFile(path string) (*FS, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}
