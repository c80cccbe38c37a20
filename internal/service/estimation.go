package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/compatibility"
	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/estimation/adjustments"
	"github.com/renovplan/renovation-planner/internal/service/mappers"
	"github.com/renovplan/renovation-planner/internal/store"
	"github.com/renovplan/renovation-planner/pkg/metrics"
	"go.uber.org/zap"
)

// EstimationService runs the estimation engine on wizard snapshots, either given
// directly or loaded from the store, and gives advice on lot selections.
type EstimationService struct {
	store   store.Store
	engine  *estimation.Engine
	advisor *compatibility.Advisor
}

// NewEstimationService creates an EstimationService. A nil engine is replaced by an engine
// on the default catalog with the default adjustments registered. The store may be nil when
// only stateless operations are used.
func NewEstimationService(s store.Store, engine *estimation.Engine) *EstimationService {
	if engine == nil {
		engine = NewDefaultEngine(nil)
	}
	return &EstimationService{
		store:   s,
		engine:  engine,
		advisor: compatibility.NewAdvisor(engine.Catalog()),
	}
}

// NewDefaultEngine returns an engine on cat with every default adjustment registered.
func NewDefaultEngine(cat *catalog.Catalog) *estimation.Engine {
	return estimation.NewEngine(cat, estimation.WithAdjustments(adjustments.Default()...))
}

func (es *EstimationService) Catalog() *catalog.Catalog {
	return es.engine.Catalog()
}

// Estimate computes the estimation of a project snapshot. It never fails: missing or
// inconsistent inputs are reported as warnings.
func (es *EstimationService) Estimate(ctx context.Context, project estimation.Project) estimation.ProjectEstimation {
	result := es.engine.EstimateProject(project)

	outcome := metrics.OutcomeEstimated
	if result.IsEmpty() {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordEstimation(outcome, result.Confidence)

	zap.S().Named("estimation_service").Debugw("project estimated",
		"lots", len(project.SelectedLots),
		"budget_min", result.Budget.Total.Min,
		"budget_max", result.Budget.Total.Max,
		"days_min", result.Duration.TotalDays.Min,
		"days_max", result.Duration.TotalDays.Max,
		"confidence", result.Confidence,
		"warnings", len(result.Warnings),
	)
	return result
}

// EstimateStoredProject loads the project and estimates it.
func (es *EstimationService) EstimateStoredProject(ctx context.Context, id uuid.UUID) (estimation.ProjectEstimation, error) {
	project, err := es.loadProject(ctx, id)
	if err != nil {
		metrics.RecordEstimation(metrics.OutcomeFailed, 0)
		return estimation.ProjectEstimation{}, err
	}
	return es.Estimate(ctx, project), nil
}

// CompareBudget estimates the project and compares the total with the budget envelope.
func (es *EstimationService) CompareBudget(ctx context.Context, project estimation.Project) (estimation.BudgetComparison, estimation.ProjectEstimation) {
	result := es.Estimate(ctx, project)

	var target estimation.EstimationRange
	if wp := project.WorkProject; wp != nil && wp.BudgetEnvelope != nil {
		target = *wp.BudgetEnvelope
	}
	return estimation.CompareBudgetWithTarget(result.Budget.Total, target), result
}

// CompareStoredBudget compares the estimate of a stored project with its budget envelope.
func (es *EstimationService) CompareStoredBudget(ctx context.Context, id uuid.UUID) (estimation.BudgetComparison, estimation.ProjectEstimation, error) {
	project, err := es.loadProject(ctx, id)
	if err != nil {
		return estimation.BudgetComparison{}, estimation.ProjectEstimation{}, err
	}
	if project.WorkProject == nil || project.WorkProject.BudgetEnvelope == nil {
		return estimation.BudgetComparison{}, estimation.ProjectEstimation{}, NewErrMissingBudgetEnvelope(id)
	}

	comparison, result := es.CompareBudget(ctx, project)
	return comparison, result, nil
}

// CompatibilityReport gathers the advice computed for a lot selection.
type CompatibilityReport struct {
	compatibility.Result
	ComplementaryLots []catalog.LotType `json:"complementaryLots"`
	ExecutionOrder    []catalog.LotType `json:"executionOrder"`
}

// CheckCompatibility runs every advice on the selection. Unknown lot types are rejected.
func (es *EstimationService) CheckCompatibility(ctx context.Context, lots []catalog.LotType) (CompatibilityReport, error) {
	for _, l := range lots {
		if !es.Catalog().Has(l) {
			return CompatibilityReport{}, NewErrUnknownLotType(l)
		}
	}

	return CompatibilityReport{
		Result:            es.advisor.CheckCompatibility(lots),
		ComplementaryLots: es.advisor.SuggestComplementaryLots(lots),
		ExecutionOrder:    es.advisor.RecommendedExecutionOrder(lots),
	}, nil
}

func (es *EstimationService) SuggestLots(ctx context.Context, lots []catalog.LotType) []catalog.LotType {
	return es.advisor.SuggestComplementaryLots(lots)
}

func (es *EstimationService) ExecutionOrder(ctx context.Context, lots []catalog.LotType) []catalog.LotType {
	return es.advisor.RecommendedExecutionOrder(lots)
}

func (es *EstimationService) loadProject(ctx context.Context, id uuid.UUID) (estimation.Project, error) {
	if es.store == nil {
		return estimation.Project{}, errors.New("estimation service has no store")
	}

	p, err := es.store.Project().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return estimation.Project{}, NewErrProjectNotFound(id)
		}
		return estimation.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return mappers.ProjectToEstimation(*p), nil
}
