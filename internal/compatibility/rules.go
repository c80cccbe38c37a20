package compatibility

import (
	"github.com/thoas/go-funk"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

// Rule is one predicate over the selected lots. Warning and Suggestion are
// reported when Applies holds; either may be empty.
type Rule struct {
	Name       string
	Applies    func(selected []catalog.LotType) bool
	Warning    string
	Suggestion string
}

func has(selected []catalog.LotType, t catalog.LotType) bool {
	return funk.Contains(selected, t)
}

func requires(lot, missing catalog.LotType) func([]catalog.LotType) bool {
	return func(selected []catalog.LotType) bool {
		return has(selected, lot) && !has(selected, missing)
	}
}

// DefaultRules are evaluated in order.
var DefaultRules = []Rule{
	{
		Name:       "plumbing-partitions",
		Applies:    requires(catalog.Plumbing, catalog.Partitions),
		Suggestion: "Plumbing works often require work on partitions.",
	},
	{
		Name:       "electrical-painting",
		Applies:    requires(catalog.Electrical, catalog.Painting),
		Suggestion: "Electrical works usually leave marks that need paint touch-ups.",
	},
	{
		Name:       "joinery-waterproofing",
		Applies:    requires(catalog.ExteriorJoinery, catalog.Waterproofing),
		Suggestion: "Replacing windows may require waterproofing repairs.",
	},
	{
		Name: "insulation-ventilation",
		Applies: func(selected []catalog.LotType) bool {
			return has(selected, catalog.ThermalInsulation) && has(selected, catalog.Ventilation)
		},
		Suggestion: "Good practice: insulation and ventilation complement each other for energy efficiency.",
	},
	{
		Name:    "roofing-framing",
		Applies: requires(catalog.Roofing, catalog.Framing),
		Warning: "Check the condition of the roof framing before roofing works.",
	},
	{
		Name: "demolition-only",
		Applies: func(selected []catalog.LotType) bool {
			return len(selected) == 1 && selected[0] == catalog.Demolition
		},
		Warning: "Demolition alone is rarely a complete project.",
	},
	{
		Name:       "pool-networks",
		Applies:    requires(catalog.SwimmingPool, catalog.UtilitiesNetworks),
		Suggestion: "A swimming pool usually needs utility network connections.",
	},
	{
		Name:    "elevator-electrical",
		Applies: requires(catalog.Elevator, catalog.Electrical),
		Warning: "An elevator requires a dedicated electrical supply.",
	},
}

// DefaultComplementaryLots lists, per lot, the lots usually carried out with it, in suggestion order.
var DefaultComplementaryLots = map[catalog.LotType][]catalog.LotType{
	catalog.Plumbing:          {catalog.Partitions, catalog.Tiling, catalog.Painting},
	catalog.Electrical:        {catalog.Partitions, catalog.Painting},
	catalog.Heating:           {catalog.Plumbing, catalog.Electrical},
	catalog.AirConditioning:   {catalog.Electrical, catalog.Ventilation},
	catalog.ThermalInsulation: {catalog.Ventilation, catalog.ExteriorJoinery},
	catalog.ExteriorJoinery:   {catalog.Waterproofing, catalog.Painting},
	catalog.Roofing:           {catalog.Framing, catalog.Waterproofing, catalog.ZincWork},
	catalog.Facades:           {catalog.Scaffolding, catalog.Waterproofing},
	catalog.SwimmingPool:      {catalog.UtilitiesNetworks, catalog.Electrical, catalog.Landscaping},
	catalog.FittedKitchen:     {catalog.Plumbing, catalog.Electrical, catalog.Tiling},
	catalog.Bathroom:          {catalog.Plumbing, catalog.Electrical, catalog.Tiling, catalog.Ventilation},
	catalog.Demolition:        {catalog.WasteRemoval, catalog.StructuralWork},
	catalog.StructuralWork:    {catalog.Masonry, catalog.Waterproofing},
	catalog.Extension:         {catalog.StructuralWork, catalog.Roofing, catalog.ExteriorJoinery},
	catalog.Raising:           {catalog.Framing, catalog.Roofing, catalog.Facades},
}

// DefaultCategoryRanks orders categories for execution. Unlisted categories go last.
var DefaultCategoryRanks = map[catalog.Category]int{
	catalog.CategoryStructural:   1,
	catalog.CategoryEnvelope:     2,
	catalog.CategoryPlumbing:     3,
	catalog.CategoryElectrical:   3,
	catalog.CategoryHVAC:         3,
	catalog.CategoryVentilation:  3,
	catalog.CategoryPartitioning: 4,
	catalog.CategoryFinishes:     5,
	catalog.CategoryExterior:     6,
	catalog.CategorySpecial:      7,
}

// DefaultLotPriorities orders lots within their category. Unlisted lots get UnknownLotPriority.
var DefaultLotPriorities = map[catalog.LotType]int{
	catalog.Demolition:        1,
	catalog.Earthworks:        2,
	catalog.StructuralWork:    3,
	catalog.Masonry:           4,
	catalog.Framing:           5,
	catalog.Roofing:           6,
	catalog.Waterproofing:     7,
	catalog.Facades:           8,
	catalog.UtilitiesNetworks: 9,
	catalog.Plumbing:          10,
	catalog.Electrical:        11,
	catalog.Heating:           12,
	catalog.Ventilation:       13,
	catalog.AirConditioning:   14,
	catalog.Partitions:        15,
	catalog.ThermalInsulation: 16,
	catalog.InteriorJoinery:   17,
	catalog.ExteriorJoinery:   18,
	catalog.Tiling:            20,
	catalog.Flooring:          21,
	catalog.Painting:          22,
	catalog.WallCoverings:     23,
	catalog.Ceilings:          24,
	catalog.FittedKitchen:     25,
	catalog.Bathroom:          26,
	catalog.Landscaping:       27,
	catalog.FinalCleaning:     28,
}

const (
	UnknownCategoryRank = 100
	UnknownLotPriority  = 100
)
