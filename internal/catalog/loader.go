package catalog

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// document is the on-disk layout of a catalog file (YAML or JSON).
type document struct {
	Version string  `json:"version"`
	Lots    []Entry `json:"lots"`
}

// Load parses a catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog")
	}
	if len(doc.Lots) == 0 {
		return nil, errors.New("catalog has no lots")
	}

	c, err := New(doc.Version, doc.Lots)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog")
	}
	return c, nil
}

// LoadFile reads a catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	return Load(data)
}

// Marshal renders the catalog in the document layout accepted by Load.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(document{Version: c.Version(), Lots: c.Entries()})
}
