// Package compatibility advises on a selection of lots: it reports missing or risky
// combinations, suggests complementary lots and orders lots for execution.
//
// The Advisor only reads lot types. Its output is surfaced to the user as-is and never
// feeds the estimation engine.
package compatibility
