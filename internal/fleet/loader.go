package fleet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"vendd/internal/common/fsutil"
)

// seedFile is the on-disk fleet description.
type seedFile struct {
	Machines []seedEntry `json:"machines" yaml:"machines" toml:"machines"`
}

type seedEntry struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Stock int    `json:"stock" yaml:"stock" toml:"stock"`
}

// LoadFile reads a fleet seed file and builds a Registry from it.
// Supports: .yaml/.yml, .json, .toml, dispatched on extension.
func LoadFile(path string) (*Registry, error) {
	base, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(base)
	if err != nil {
		return nil, err
	}
	var sf seedFile
	switch ext := strings.ToLower(filepath.Ext(base)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &sf); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(b, &sf); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &sf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported fleet file extension: %s", ext)
	}
	if len(sf.Machines) == 0 {
		return nil, fmt.Errorf("fleet file %s lists no machines", base)
	}
	reg := NewRegistry()
	for _, e := range sf.Machines {
		if e.ID == "" {
			return nil, fmt.Errorf("fleet file %s has a machine with an empty id", base)
		}
		if err := reg.Add(e.ID, e.Stock); err != nil {
			return nil, fmt.Errorf("fleet file %s: %w", base, err)
		}
	}
	return reg, nil
}

// Seed builds a registry of n machines with zero-padded sequential ids
// ("001", "002", ...) all at the same initial stock level.
func Seed(n, initialStock int) *Registry {
	reg := NewRegistry()
	for i := 1; i <= n; i++ {
		// ids are fresh in an empty registry, Add cannot fail
		_ = reg.Add(fmt.Sprintf("%03d", i), initialStock)
	}
	return reg
}
