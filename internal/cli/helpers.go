package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	api "github.com/renovplan/renovation-planner/api/v1alpha1"
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/handlers/v1alpha1/mappers"
	"github.com/renovplan/renovation-planner/internal/handlers/validator"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

func validateOutput(output string) error {
	if len(output) > 0 && !funk.ContainsString(legalOutputTypes, output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

// printObject writes v as json or yaml. It returns false when output asks for a table.
func printObject(w io.Writer, v any, output string) (bool, error) {
	var (
		marshalled []byte
		err        error
	)
	switch output {
	case jsonFormat:
		marshalled, err = json.Marshal(v)
	case yamlFormat:
		marshalled, err = yaml.Marshal(v)
	default:
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("marshalling output: %w", err)
	}
	fmt.Fprintf(w, "%s\n", string(marshalled))
	return true, nil
}

// readProjectFile loads a yaml or json project description and validates it against cat.
func readProjectFile(path string, cat *catalog.Catalog) (*api.ProjectCreate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	project := &api.ProjectCreate{}
	if err := yaml.Unmarshal(data, project); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}

	v := validator.NewValidator()
	v.Register(validator.NewProjectValidationRules(cat)...)
	if err := v.Struct(project); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %s", path, validator.Message(err))
	}
	return project, nil
}

func formatRange(r estimation.EstimationRange, unit string) string {
	return fmt.Sprintf("%.0f - %.0f %s", r.Min, r.Max, unit)
}

func snapshot(p *api.ProjectCreate) estimation.Project {
	return mappers.SnapshotToEstimation(api.ProjectSnapshot{
		Property:     p.Property,
		WorkProject:  p.WorkProject,
		SelectedLots: p.SelectedLots,
	})
}
