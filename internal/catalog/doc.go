// Package catalog holds the static reference data of renovation lots: category,
// base price range, typical duration and ordering hints.
//
// A Catalog is loaded once at process start, either the built-in Default() one or
// a versioned YAML/JSON document read with LoadFile, and is never mutated afterwards.
package catalog
