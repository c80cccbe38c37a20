// Package estimation defines the project estimation engine.
//
// The Engine turns a Project snapshot (property, work project and selected lots) into a
// ProjectEstimation: a budget range broken down by lot, category, contingency and fees, a duration
// range built from phase grouping and a parallelization heuristic, and a confidence score.
//
// Each coefficient rule is encapsulated in one specific Adjustment (see the adjustments package) and
// adjustments are composed by the Engine. The engine is a pure function of its inputs: it does no I/O,
// keeps no state between calls and reports degraded inputs as warnings rather than errors.
package estimation
