package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/renovplan/renovation-planner/internal/store/model"
	"go.uber.org/zap"
)

// StatisticsProvider computes the project statistics exposed by the collector.
type StatisticsProvider interface {
	Statistics(ctx context.Context) (model.ProjectStats, error)
}

type projectStatsCollector struct {
	provider               StatisticsProvider
	totalProjects          *prometheus.Desc
	totalLots              *prometheus.Desc
	projectsByPropertyType *prometheus.Desc
	projectsByFinishLevel  *prometheus.Desc
	lotsByCategory         *prometheus.Desc
}

func NewProjectStatsCollector(p StatisticsProvider) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_%s", renovationPlanner, name)
	}

	return &projectStatsCollector{
		provider: p,
		totalProjects: prometheus.NewDesc(
			fqName("projects_total"),
			"Total number of stored projects.",
			nil,
			prometheus.Labels{},
		),
		totalLots: prometheus.NewDesc(
			fqName("lots_total"),
			"Total number of selected lots.",
			nil,
			prometheus.Labels{},
		),
		projectsByPropertyType: prometheus.NewDesc(
			fqName("projects_by_property_type_total"),
			"Total projects by property type",
			[]string{"property_type"},
			prometheus.Labels{},
		),
		projectsByFinishLevel: prometheus.NewDesc(
			fqName("projects_by_finish_level_total"),
			"Total projects by finish level",
			[]string{"finish_level"},
			prometheus.Labels{},
		),
		lotsByCategory: prometheus.NewDesc(
			fqName("lots_by_category_total"),
			"Total selected lots by category",
			[]string{"category"},
			prometheus.Labels{},
		),
	}
}

func (c *projectStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalProjects
	ch <- c.totalLots
	ch <- c.projectsByPropertyType
	ch <- c.projectsByFinishLevel
	ch <- c.lotsByCategory
}

// Collect implements Collector.
func (c *projectStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.provider.Statistics(context.Background())
	if err != nil {
		zap.S().Named("project_collector").Errorf("failed to collect project statistics: %s", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.totalProjects, prometheus.GaugeValue, float64(stats.TotalProjects))
	ch <- prometheus.MustNewConstMetric(c.totalLots, prometheus.GaugeValue, float64(stats.TotalLots))

	for propertyType, total := range stats.ProjectsByPropertyType {
		ch <- prometheus.MustNewConstMetric(c.projectsByPropertyType, prometheus.GaugeValue, float64(total), propertyType)
	}

	for finishLevel, total := range stats.ProjectsByFinishLevel {
		ch <- prometheus.MustNewConstMetric(c.projectsByFinishLevel, prometheus.GaugeValue, float64(total), finishLevel)
	}

	for category, total := range stats.LotsByCategory {
		ch <- prometheus.MustNewConstMetric(c.lotsByCategory, prometheus.GaugeValue, float64(total), category)
	}
}
