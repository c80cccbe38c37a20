package compatibility

import (
	"sort"

	"github.com/thoas/go-funk"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

// Result of CheckCompatibility. Compatible is false as soon as one rule raised a warning.
type Result struct {
	Compatible  bool     `json:"compatible"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// Advisor is read-only after construction and safe for concurrent use.
type Advisor struct {
	catalog       *catalog.Catalog
	rules         []Rule
	complementary map[catalog.LotType][]catalog.LotType
	categoryRanks map[catalog.Category]int
	lotPriorities map[catalog.LotType]int
}

type AdvisorOption func(*Advisor)

// WithRules replaces the compatibility rules.
func WithRules(rules ...Rule) AdvisorOption {
	return func(a *Advisor) {
		a.rules = rules
	}
}

// WithComplementaryLots replaces the complementary lot table.
func WithComplementaryLots(table map[catalog.LotType][]catalog.LotType) AdvisorOption {
	return func(a *Advisor) {
		a.complementary = table
	}
}

// NewAdvisor creates an Advisor reading lot categories from cat, or catalog.Default() when cat is nil.
func NewAdvisor(cat *catalog.Catalog, opts ...AdvisorOption) *Advisor {
	if cat == nil {
		cat = catalog.Default()
	}
	a := &Advisor{
		catalog:       cat,
		rules:         DefaultRules,
		complementary: DefaultComplementaryLots,
		categoryRanks: DefaultCategoryRanks,
		lotPriorities: DefaultLotPriorities,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CheckCompatibility evaluates every rule in order against the selection.
func (a *Advisor) CheckCompatibility(selected []catalog.LotType) Result {
	res := Result{Warnings: make([]string, 0), Suggestions: make([]string, 0)}
	for _, rule := range a.rules {
		if !rule.Applies(selected) {
			continue
		}
		if rule.Warning != "" {
			res.Warnings = append(res.Warnings, rule.Warning)
		}
		if rule.Suggestion != "" {
			res.Suggestions = append(res.Suggestions, rule.Suggestion)
		}
	}
	res.Compatible = len(res.Warnings) == 0
	return res
}

// SuggestComplementaryLots returns the lots related to the selection that are not selected yet,
// without duplicates, in selection then table order.
func (a *Advisor) SuggestComplementaryLots(selected []catalog.LotType) []catalog.LotType {
	res := make([]catalog.LotType, 0)
	for _, t := range selected {
		for _, related := range a.complementary[t] {
			if has(selected, related) || funk.Contains(res, related) {
				continue
			}
			res = append(res, related)
		}
	}
	return res
}

// RecommendedExecutionOrder sorts the selection by category rank then by lot priority.
// Lots unknown to the catalog go last; equal lots keep their relative order.
func (a *Advisor) RecommendedExecutionOrder(selected []catalog.LotType) []catalog.LotType {
	res := append([]catalog.LotType{}, selected...)
	sort.SliceStable(res, func(i, j int) bool {
		ri, rj := a.categoryRank(res[i]), a.categoryRank(res[j])
		if ri != rj {
			return ri < rj
		}
		return a.lotPriority(res[i]) < a.lotPriority(res[j])
	})
	return res
}

func (a *Advisor) categoryRank(t catalog.LotType) int {
	entry, ok := a.catalog.Lookup(t)
	if !ok {
		return UnknownCategoryRank
	}
	if rank, ok := a.categoryRanks[entry.Category]; ok {
		return rank
	}
	return UnknownCategoryRank
}

func (a *Advisor) lotPriority(t catalog.LotType) int {
	if p, ok := a.lotPriorities[t]; ok {
		return p
	}
	return UnknownLotPriority
}
