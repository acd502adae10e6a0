// Package synth derives a CompositeLayout from each parsed TypeRecord.
//
// A record with at least one variant becomes a SumLayout (optional
// discriminant plus one ProductLayout per variant); every other record
// becomes a ProductLayout. Fields and padding runs are mapped to placeholder
// representations by width alone (see primitive.ForWidth).
//
// Synthesized widths are cross-checked against the sizes the compiler
// reported. Disagreements are returned as LayoutSizeMismatch values next to
// the layout; they never stop synthesis.
package synth
