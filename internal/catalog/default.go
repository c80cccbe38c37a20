package catalog

import "sync"

// DefaultVersion is the version of the built-in catalog.
const DefaultVersion = "2024.1"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. Reference prices are 2024 euro prices.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(DefaultVersion, defaultEntries())
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func perSqm(min, max float64) PriceRange  { return PriceRange{Min: min, Max: max, Unit: UnitPerSqm} }
func perUnit(min, max float64) PriceRange { return PriceRange{Min: min, Max: max, Unit: UnitPerUnit} }
func forfait(min, max float64) PriceRange { return PriceRange{Min: min, Max: max, Unit: UnitForfait} }

func defaultEntries() []Entry {
	return []Entry{
		// structural
		{
			Type: Demolition, Number: "01", Name: "Demolition", Category: CategoryStructural,
			Description:         "Total or partial demolition, removal of fixtures and asbestos abatement",
			BasePrice:           perSqm(30, 80),
			TypicalDurationDays: 5,
		},
		{
			Type: WasteRemoval, Number: "02", Name: "Waste removal", Category: CategoryStructural,
			Description:         "Skip rental, sorting and disposal of construction waste",
			BasePrice:           forfait(500, 2500),
			TypicalDurationDays: 2,
		},
		{
			Type: Earthworks, Number: "03", Name: "Earthworks", Category: CategoryStructural,
			Description:         "Excavation, trenches and backfilling",
			BasePrice:           forfait(3000, 15000),
			TypicalDurationDays: 8,
		},
		{
			Type: Foundations, Number: "04", Name: "Foundations", Category: CategoryStructural,
			Description:         "Footings, slabs and underpinning",
			BasePrice:           forfait(8000, 30000),
			TypicalDurationDays: 10,
		},
		{
			Type: StructuralWork, Number: "05", Name: "Structural work", Category: CategoryStructural,
			Description:         "Load bearing walls, reinforced concrete, openings in structural walls",
			BasePrice:           perSqm(100, 250),
			TypicalDurationDays: 15,
		},
		{
			Type: Masonry, Number: "06", Name: "Masonry", Category: CategoryStructural,
			Description:         "Block, brick and stone walls, lintels and sills",
			BasePrice:           perSqm(60, 150),
			TypicalDurationDays: 12,
		},
		{
			Type: Framing, Number: "07", Name: "Roof framing", Category: CategoryStructural,
			Description:         "Timber or steel roof structure",
			BasePrice:           forfait(8000, 25000),
			TypicalDurationDays: 8,
		},
		{
			Type: Extension, Number: "08", Name: "Extension", Category: CategoryStructural,
			Description:         "Building an extension to the existing property",
			BasePrice:           forfait(30000, 100000),
			TypicalDurationDays: 40,
		},
		{
			Type: Raising, Number: "09", Name: "Raising", Category: CategoryStructural,
			Description:         "Adding a storey to the existing building",
			BasePrice:           forfait(50000, 150000),
			TypicalDurationDays: 45,
		},
		// envelope
		{
			Type: Scaffolding, Number: "10", Name: "Scaffolding", Category: CategoryEnvelope,
			Description:         "Scaffolding rental, assembly and safety netting",
			BasePrice:           forfait(1500, 6000),
			TypicalDurationDays: 2,
		},
		{
			Type: Roofing, Number: "11", Name: "Roofing", Category: CategoryEnvelope,
			Description:         "Roof covering in tiles, slate or metal",
			BasePrice:           perSqm(60, 180),
			TypicalDurationDays: 8,
			Dependencies:        []LotType{Framing},
			RGEEligible:         true,
		},
		{
			Type: ZincWork, Number: "12", Name: "Zinc work", Category: CategoryEnvelope,
			Description:         "Gutters, downpipes and flashings",
			BasePrice:           forfait(1500, 6000),
			TypicalDurationDays: 3,
		},
		{
			Type: Waterproofing, Number: "13", Name: "Waterproofing", Category: CategoryEnvelope,
			Description:         "Flat roof and terrace waterproofing membranes",
			BasePrice:           perSqm(40, 120),
			TypicalDurationDays: 5,
			RGEEligible:         true,
		},
		{
			Type: Facades, Number: "14", Name: "Facades", Category: CategoryEnvelope,
			Description:         "Facade cleaning, rendering and repairs",
			BasePrice:           perSqm(40, 120),
			TypicalDurationDays: 10,
		},
		{
			Type: ExteriorJoinery, Number: "15", Name: "Exterior joinery", Category: CategoryEnvelope,
			Description:         "Windows, French windows and entrance doors",
			BasePrice:           perUnit(300, 800),
			TypicalDurationDays: 3,
			Dependencies:        []LotType{StructuralWork, Masonry},
			RGEEligible:         true,
		},
		// partitioning
		{
			Type: ThermalInsulation, Number: "16", Name: "Thermal insulation", Category: CategoryPartitioning,
			Description:         "Interior insulation of walls, roof spaces and floors",
			BasePrice:           perSqm(25, 80),
			TypicalDurationDays: 6,
			Dependencies:        []LotType{StructuralWork, Framing},
			RGEEligible:         true,
		},
		{
			Type: Partitions, Number: "17", Name: "Partitions & linings", Category: CategoryPartitioning,
			Description:         "Plasterboard partitions and wall linings",
			BasePrice:           perSqm(30, 70),
			TypicalDurationDays: 8,
			Dependencies:        []LotType{StructuralWork, Plumbing, Electrical},
		},
		{
			Type: Ceilings, Number: "18", Name: "Suspended ceilings", Category: CategoryPartitioning,
			Description:         "Suspended and acoustic ceilings",
			BasePrice:           forfait(1500, 6000),
			TypicalDurationDays: 5,
		},
		// finishes
		{
			Type: InteriorJoinery, Number: "19", Name: "Interior joinery", Category: CategoryFinishes,
			Description:         "Interior doors, skirting and fitted storage",
			BasePrice:           perUnit(150, 500),
			TypicalDurationDays: 5,
			Dependencies:        []LotType{Partitions},
		},
		{
			Type: Tiling, Number: "20", Name: "Tiling", Category: CategoryFinishes,
			Description:         "Floor and wall tiling",
			BasePrice:           perSqm(40, 120),
			TypicalDurationDays: 8,
			Dependencies:        []LotType{Partitions, Plumbing},
		},
		{
			Type: Flooring, Number: "21", Name: "Flooring", Category: CategoryFinishes,
			Description:         "Parquet, laminate and resilient floor coverings",
			BasePrice:           perSqm(30, 150),
			TypicalDurationDays: 5,
			Dependencies:        []LotType{Partitions, Painting},
		},
		{
			Type: Painting, Number: "22", Name: "Painting", Category: CategoryFinishes,
			Description:         "Wall and ceiling preparation and painting",
			BasePrice:           perSqm(15, 50),
			TypicalDurationDays: 8,
			Dependencies:        []LotType{Partitions, Electrical, Plumbing},
		},
		{
			Type: WallCoverings, Number: "23", Name: "Wall coverings", Category: CategoryFinishes,
			Description:         "Wallpaper, panelling and decorative coverings",
			BasePrice:           forfait(1000, 5000),
			TypicalDurationDays: 4,
		},
		// electrical
		{
			Type: Electrical, Number: "24", Name: "Electrical", Category: CategoryElectrical,
			Description:         "Wiring, switchboard and outlets brought up to standard",
			BasePrice:           perUnit(800, 1500),
			TypicalDurationDays: 10,
			Dependencies:        []LotType{StructuralWork, Demolition},
		},
		{
			Type: HomeAutomation, Number: "25", Name: "Home automation", Category: CategoryElectrical,
			Description:         "Connected lighting, shutters and heating control",
			BasePrice:           forfait(2000, 15000),
			TypicalDurationDays: 5,
		},
		{
			Type: Security, Number: "26", Name: "Security systems", Category: CategoryElectrical,
			Description:         "Alarm, video surveillance and access control",
			BasePrice:           forfait(1000, 5000),
			TypicalDurationDays: 2,
		},
		{
			Type: Photovoltaic, Number: "27", Name: "Photovoltaic panels", Category: CategoryElectrical,
			Description:         "Solar panels, inverter and grid connection",
			BasePrice:           forfait(8000, 20000),
			TypicalDurationDays: 3,
			RGEEligible:         true,
		},
		// plumbing
		{
			Type: Plumbing, Number: "28", Name: "Plumbing", Category: CategoryPlumbing,
			Description:         "Supply and waste pipework, sanitary fixtures",
			BasePrice:           perUnit(1500, 4000),
			TypicalDurationDays: 8,
			Dependencies:        []LotType{StructuralWork, Demolition},
		},
		{
			Type: UtilitiesNetworks, Number: "29", Name: "Utility networks", Category: CategoryPlumbing,
			Description:         "Water, sewer and power connections to public networks",
			BasePrice:           forfait(3000, 12000),
			TypicalDurationDays: 5,
		},
		// hvac
		{
			Type: Heating, Number: "30", Name: "Heating", Category: CategoryHVAC,
			Description:         "Boiler or heat pump and emitters",
			BasePrice:           perUnit(1000, 3000),
			TypicalDurationDays: 7,
			RGEEligible:         true,
		},
		{
			Type: AirConditioning, Number: "31", Name: "Air conditioning", Category: CategoryHVAC,
			Description:         "Split or ducted air conditioning units",
			BasePrice:           perUnit(1500, 4000),
			TypicalDurationDays: 4,
		},
		// ventilation
		{
			Type: Ventilation, Number: "32", Name: "Mechanical ventilation", Category: CategoryVentilation,
			Description:         "Single or dual flow mechanical ventilation",
			BasePrice:           forfait(800, 6000),
			TypicalDurationDays: 3,
			RGEEligible:         true,
		},
		// exterior
		{
			Type: SwimmingPool, Number: "33", Name: "Swimming pool", Category: CategoryExterior,
			Description:         "In-ground pool, filtration and surrounds",
			BasePrice:           forfait(15000, 80000),
			TypicalDurationDays: 30,
		},
		{
			Type: Landscaping, Number: "34", Name: "Landscaping", Category: CategoryExterior,
			Description:         "Terraces, paths and planting",
			BasePrice:           forfait(3000, 20000),
			TypicalDurationDays: 10,
		},
		{
			Type: Fencing, Number: "35", Name: "Fencing & gates", Category: CategoryExterior,
			Description:         "Fences, gates and motorisation",
			BasePrice:           forfait(2000, 10000),
			TypicalDurationDays: 5,
		},
		// special
		{
			Type: Elevator, Number: "36", Name: "Elevator", Category: CategorySpecial,
			Description:         "Passenger lift or platform lift",
			BasePrice:           forfait(15000, 40000),
			TypicalDurationDays: 15,
		},
		{
			Type: FittedKitchen, Number: "37", Name: "Fitted kitchen", Category: CategorySpecial,
			Description:         "Kitchen units, worktops and appliances",
			BasePrice:           forfait(5000, 30000),
			TypicalDurationDays: 5,
			Dependencies:        []LotType{Plumbing, Electrical, Tiling},
		},
		{
			Type: Bathroom, Number: "38", Name: "Turnkey bathroom", Category: CategorySpecial,
			Description:         "Complete bathroom renovation",
			BasePrice:           perUnit(5000, 20000),
			TypicalDurationDays: 8,
			Dependencies:        []LotType{Plumbing, Electrical, Tiling},
		},
		{
			Type: FinalCleaning, Number: "39", Name: "Final cleaning", Category: CategorySpecial,
			Description:         "End of works cleaning before handover",
			BasePrice:           forfait(300, 1500),
			TypicalDurationDays: 2,
		},
	}
}
