// Package diagfmt renders diagnostics, token streams and expression trees
// for the CLI: pretty text with caret underlining, or JSON for tooling.
package diagfmt
