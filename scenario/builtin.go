package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns every scenario bundled with the package, ordered by file name.
func Builtin() ([]*Scenario, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("scenario: read builtin: %w", err)
	}
	scenarios := make([]*Scenario, 0, len(entries))
	for _, e := range entries {
		sc, err := loadBuiltin(e.Name())
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// Lookup returns the scenario with the name. A name ending in .yaml or .yml is read from disk, anything else is
// matched against the name of a bundled scenario.
func Lookup(name string) (*Scenario, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return Load(name)
	}
	scenarios, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, nil
		}
	}
	return nil, fmt.Errorf("scenario: no scenario named %q", name)
}

func loadBuiltin(file string) (*Scenario, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", file))
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", file, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", file, err)
	}
	return sc, nil
}
