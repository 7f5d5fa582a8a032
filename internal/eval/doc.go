// Package eval walks parsed expression trees and computes unit-aware
// values: scalar quantities and flat arrays with broadcasting, indexing,
// dimensional checks and unit attachment. Failures surface as positioned
// diagnostics, never as panics.
package eval
