// Package regions resolves a district name to its containing city for the
// extract categories that ship without an explicit city column. The mapping is
// static reference data: an embedded, versioned JSON table validated against an
// embedded JSON Schema at load time, then served read-only for the process
// lifetime.
package regions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed districts.json
var districtsJSON []byte

//go:embed districts.schema.json
var districtsSchema string

type tableFile struct {
	Version string `json:"version"`
	Cities  []struct {
		Name      string   `json:"name"`
		Districts []string `json:"districts"`
	} `json:"cities"`
}

// Table is the immutable district→city index. Construct it once via Load and
// share it freely; lookups are safe for concurrent use.
type Table struct {
	version    string
	byDistrict map[string]string
}

// Load parses and validates the embedded mapping table. A schema violation is
// a build artifact problem, so it surfaces as an error rather than a partial
// table.
func Load() (*Table, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("districts.schema.json", strings.NewReader(districtsSchema)); err != nil {
		return nil, fmt.Errorf("failed to add districts schema resource: %w", err)
	}
	schema, err := compiler.Compile("districts.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile districts schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(districtsJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse districts table: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("districts table failed schema validation: %w", err)
	}

	var file tableFile
	if err := json.Unmarshal(districtsJSON, &file); err != nil {
		return nil, fmt.Errorf("failed to decode districts table: %w", err)
	}

	byDistrict := make(map[string]string)
	for _, city := range file.Cities {
		for _, district := range city.Districts {
			// District names repeat across municipalities (東區, 大安區, ...).
			// First city in file order wins; the table is ordered accordingly.
			if _, exists := byDistrict[district]; exists {
				continue
			}
			byDistrict[district] = city.Name
		}
	}

	return &Table{version: file.Version, byDistrict: byDistrict}, nil
}

// Version reports the table revision, useful in logs when data quality
// questions come up.
func (t *Table) Version() string { return t.version }

// CityFor resolves a district to its city. A miss returns ok=false and the
// caller's required-city invariant decides whether the row survives.
func (t *Table) CityFor(district string) (string, bool) {
	city, ok := t.byDistrict[strings.TrimSpace(district)]
	return city, ok
}
