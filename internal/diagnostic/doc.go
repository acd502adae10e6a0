// Package diagnostic provides structured warnings, errors and notes
// produced while importing a layout report.
//
// Key capabilities:
//   - Size mismatches between synthesized and reported layouts
//   - Notes about layouts imported under an explicit policy
//   - Grammar failures, when a caller wants them alongside the rest
package diagnostic
