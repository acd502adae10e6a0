// Package report parses the layout report printed by rustc's
// -Zprint-type-sizes flag into an ordered list of TypeRecord values.
//
// Every report line starts with the "print-type-size" marker followed by
// one of six shapes:
//
//	type: `<name>`: <size> bytes, alignment: <align> bytes
//	field `<name>`: <size> bytes[, alignment: <align> bytes]
//	padding: <size> bytes
//	end padding: <size> bytes
//	discriminant: <size> bytes
//	variant `<name>`: <size> bytes
//
// Indentation is not significant. A variant header opens a block that
// collects the following field and padding lines until the next variant
// header, the next type header or the end of input.
//
// Parsing is all-or-nothing: the first line that matches no shape valid at
// that point yields a *GrammarError and no records.
package report
