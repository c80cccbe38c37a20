package service

import (
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/estimation"
)

// LotStats counts the selected lots of a project. Budgets and durations only add up
// the overrides the owner entered; lots may overlap so the duration is an upper bound.
type LotStats struct {
	TotalLots              int                         `json:"totalLots"`
	ByCategory             map[catalog.Category]int    `json:"byCategory"`
	ByPriority             map[estimation.Priority]int `json:"byPriority"`
	UrgentCount            int                         `json:"urgentCount"`
	EstimatedBudgetTotal   estimation.EstimationRange  `json:"estimatedBudgetTotal"`
	EstimatedDurationTotal int                         `json:"estimatedDurationTotal"`
}

func NewLotStats(lots []estimation.SelectedLot) LotStats {
	stats := LotStats{
		TotalLots:  len(lots),
		ByCategory: make(map[catalog.Category]int),
		ByPriority: make(map[estimation.Priority]int),
	}
	for _, c := range catalog.Categories() {
		stats.ByCategory[c] = 0
	}
	for _, p := range estimation.Priorities() {
		stats.ByPriority[p] = 0
	}

	for _, l := range lots {
		stats.ByCategory[l.Category]++
		stats.ByPriority[l.Priority]++
		if l.IsUrgent {
			stats.UrgentCount++
		}
		if l.EstimatedBudget != nil {
			stats.EstimatedBudgetTotal = stats.EstimatedBudgetTotal.Add(*l.EstimatedBudget)
		}
		if l.EstimatedDurationDays != nil {
			stats.EstimatedDurationTotal += *l.EstimatedDurationDays
		}
	}
	return stats
}
