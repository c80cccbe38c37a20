package adjustments

import (
	"fmt"
	"strings"

	"github.com/renovplan/renovation-planner/internal/estimation"
)

// DefaultRegionalCoefficient applies to departments missing from the regional table.
const DefaultRegionalCoefficient = 0.90

// DefaultRegionalTable maps the department (first two characters of the postal code)
// to its price level.
var DefaultRegionalTable = map[string]float64{
	"75": 1.15,
	"92": 1.10,
	"93": 1.05,
	"94": 1.05,
	"78": 1.05,
	"06": 1.05,
	"91": 1.00,
	"95": 1.00,
	"69": 1.00,
	"77": 0.95,
	"13": 0.95,
	"67": 0.95,
	"31": 0.90,
	"33": 0.90,
	"44": 0.90,
}

// Compile-time assertion that Regional implements the Adjustment interface.
var _ estimation.Adjustment = (*Regional)(nil)

// Regional adjusts the budget to the local price level.
type Regional struct {
	table              map[string]float64
	defaultCoefficient float64
}

type RegionalOption func(*Regional)

// WithRegionalTable replaces the department table.
func WithRegionalTable(table map[string]float64) RegionalOption {
	return func(r *Regional) {
		r.table = table
	}
}

// WithDefaultRegionalCoefficient sets the coefficient of departments missing from the table.
func WithDefaultRegionalCoefficient(c float64) RegionalOption {
	return func(r *Regional) {
		r.defaultCoefficient = c
	}
}

func NewRegional(opts ...RegionalOption) *Regional {
	r := &Regional{
		table:              DefaultRegionalTable,
		defaultCoefficient: DefaultRegionalCoefficient,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Regional) Name() string { return estimation.FactorRegional }

// Apply is skipped when the postal code is missing. Unknown departments use the default coefficient.
// A postal code that does not start with two digits is neutral and reported as a warning.
func (r *Regional) Apply(property *estimation.PropertyAttributes, _ *estimation.WorkProjectAttributes) (estimation.Effect, bool) {
	if property == nil {
		return estimation.Effect{}, false
	}
	if strings.TrimSpace(property.PostalCode) == "" {
		return estimation.Effect{}, false
	}
	department, ok := property.Department()
	if !ok {
		return estimation.Effect{
			Warning: fmt.Sprintf("Postal code %q does not start with a department number: the national price level is used", property.PostalCode),
		}, true
	}

	c, ok := r.table[department]
	description := fmt.Sprintf("Price level of department %s", department)
	if !ok {
		c = r.defaultCoefficient
		description = fmt.Sprintf("Department %s uses the default price level", department)
	}
	return effect(c, 1, c, estimation.FactorRegional, "Regional price level", description), true
}
