package catalog

// LotType identifies a trade (a "lot") in the catalog.
type LotType string

const (
	Demolition        LotType = "demolition"
	WasteRemoval      LotType = "waste_removal"
	Scaffolding       LotType = "scaffolding"
	Earthworks        LotType = "earthworks"
	Foundations       LotType = "foundations"
	StructuralWork    LotType = "structural_work"
	Masonry           LotType = "masonry"
	Framing           LotType = "framing"
	Extension         LotType = "extension"
	Raising           LotType = "raising"
	Roofing           LotType = "roofing"
	ZincWork          LotType = "zinc_work"
	Waterproofing     LotType = "waterproofing"
	Facades           LotType = "facades"
	ExteriorJoinery   LotType = "exterior_joinery"
	ThermalInsulation LotType = "thermal_insulation"
	Partitions        LotType = "partitions"
	Ceilings          LotType = "ceilings"
	InteriorJoinery   LotType = "interior_joinery"
	Tiling            LotType = "tiling"
	Flooring          LotType = "flooring"
	Painting          LotType = "painting"
	WallCoverings     LotType = "wall_coverings"
	Electrical        LotType = "electrical"
	HomeAutomation    LotType = "home_automation"
	Security          LotType = "security"
	Photovoltaic      LotType = "photovoltaic"
	Plumbing          LotType = "plumbing"
	UtilitiesNetworks LotType = "utilities_networks"
	Heating           LotType = "heating"
	AirConditioning   LotType = "air_conditioning"
	Ventilation       LotType = "ventilation"
	SwimmingPool      LotType = "swimming_pool"
	Landscaping       LotType = "landscaping"
	Fencing           LotType = "fencing"
	Elevator          LotType = "elevator"
	FittedKitchen     LotType = "fitted_kitchen"
	Bathroom          LotType = "bathroom"
	FinalCleaning     LotType = "final_cleaning"
)

// Category groups lot types for aggregation and display.
type Category string

const (
	CategoryStructural   Category = "structural"
	CategoryEnvelope     Category = "envelope"
	CategoryPartitioning Category = "partitioning"
	CategoryFinishes     Category = "finishes"
	CategoryElectrical   Category = "electrical"
	CategoryPlumbing     Category = "plumbing"
	CategoryHVAC         Category = "hvac"
	CategoryVentilation  Category = "ventilation"
	CategoryExterior     Category = "exterior"
	CategorySpecial      Category = "special"
)

var categoryOrder = []Category{
	CategoryStructural,
	CategoryEnvelope,
	CategoryPartitioning,
	CategoryFinishes,
	CategoryElectrical,
	CategoryPlumbing,
	CategoryHVAC,
	CategoryVentilation,
	CategoryExterior,
	CategorySpecial,
}

var categoryNames = map[Category]string{
	CategoryStructural:   "Structural work",
	CategoryEnvelope:     "Building envelope",
	CategoryPartitioning: "Partitioning & insulation",
	CategoryFinishes:     "Finishes",
	CategoryElectrical:   "Electrical",
	CategoryPlumbing:     "Plumbing",
	CategoryHVAC:         "Heating, ventilation & air conditioning",
	CategoryVentilation:  "Ventilation",
	CategoryExterior:     "Exterior works",
	CategorySpecial:      "Special lots",
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human readable name of the category, or the raw id if unknown.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// PriceUnit tells how a base price is scaled to a project.
type PriceUnit string

const (
	// UnitPerSqm prices are multiplied by the living area.
	UnitPerSqm PriceUnit = "per_sqm"
	// UnitPerUnit prices are multiplied by a lot specific count (rooms, bathrooms...).
	UnitPerUnit PriceUnit = "per_unit"
	// UnitForfait prices are flat.
	UnitForfait PriceUnit = "forfait"
)

func (u PriceUnit) IsValid() bool {
	switch u {
	case UnitPerSqm, UnitPerUnit, UnitForfait:
		return true
	default:
		return false
	}
}

type PriceRange struct {
	Min  float64   `json:"min"`
	Max  float64   `json:"max"`
	Unit PriceUnit `json:"unit"`
}

// Entry is the immutable reference data of a single lot type.
type Entry struct {
	Type                LotType    `json:"type"`
	Number              string     `json:"number,omitempty"`
	Name                string     `json:"name"`
	Category            Category   `json:"category"`
	Description         string     `json:"description,omitempty"`
	BasePrice           PriceRange `json:"basePrice"`
	TypicalDurationDays int        `json:"typicalDurationDays"`
	// Dependencies lists the lots that must logically be done before this one.
	Dependencies []LotType `json:"dependencies,omitempty"`
	RGEEligible  bool      `json:"rgeEligible"`
}

// SurfacePriced reports whether the entry is priced by living area.
func (e Entry) SurfacePriced() bool {
	return e.BasePrice.Unit == UnitPerSqm
}

func (e Entry) clone() Entry {
	if e.Dependencies != nil {
		deps := make([]LotType, len(e.Dependencies))
		copy(deps, e.Dependencies)
		e.Dependencies = deps
	}
	return e
}
