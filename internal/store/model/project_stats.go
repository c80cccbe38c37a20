package model

type ProjectStats struct {
	// TotalProjects is the number of stored projects
	TotalProjects int
	// TotalLots is the number of selected lots across all projects
	TotalLots int
	// Number of projects by property type. Projects without a type are counted as "unknown".
	ProjectsByPropertyType map[string]int
	// Number of selected lots by category.
	LotsByCategory map[string]int
	// Number of projects by finish level. Projects without a finish level are counted as "unknown".
	ProjectsByFinishLevel map[string]int
}

const unknownLabel = "unknown"

func NewProjectStats(projects []Project) ProjectStats {
	stats := ProjectStats{
		TotalProjects:          len(projects),
		ProjectsByPropertyType: make(map[string]int),
		LotsByCategory:         make(map[string]int),
		ProjectsByFinishLevel:  make(map[string]int),
	}

	for _, p := range projects {
		stats.ProjectsByPropertyType[labelOrUnknown(p.PropertyType)]++
		stats.ProjectsByFinishLevel[labelOrUnknown(p.FinishLevel)]++
		stats.TotalLots += len(p.Lots)
		for _, l := range p.Lots {
			stats.LotsByCategory[labelOrUnknown(l.Category)]++
		}
	}

	return stats
}

func labelOrUnknown(v string) string {
	if v == "" {
		return unknownLabel
	}
	return v
}
