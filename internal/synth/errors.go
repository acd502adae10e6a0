package synth

import "fmt"

// LayoutSizeMismatch reports a synthesized composite whose width disagrees
// with the width the compiler reported.
type LayoutSizeMismatch struct {
	TypeName string
	// Variant is empty when the mismatch concerns the record itself.
	Variant  string
	Expected uint64
	Actual   uint64
}

// Subject names the offending composite, e.g. "Result" or "Result::Ok".
func (m *LayoutSizeMismatch) Subject() string {
	if m.Variant == "" {
		return m.TypeName
	}

	return m.TypeName + "::" + m.Variant
}

func (m *LayoutSizeMismatch) Error() string {
	return fmt.Sprintf("layout of `%s` is %d bytes, but the report says %d bytes",
		m.Subject(), m.Actual, m.Expected)
}
