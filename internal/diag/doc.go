// Package diag models every failure the expression kernel can produce as a
// value: a code from a closed taxonomy, a severity, a message and the span
// of the offending source text. Phases report through the Reporter contract;
// nothing in the kernel signals errors by panicking.
package diag
