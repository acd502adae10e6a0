// Package match ranks words by edit distance. It backs the "did you mean"
// suggestions attached to grammar errors.
package match
