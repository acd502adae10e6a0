// Package gen renders a materialization plan as Go type declarations.
//
// Generation uses text/template + go/format. Every reported type becomes a
// struct whose Go layout matches the reported one byte for byte:
//   - Fields are unsigned integers only at offsets Go would not pad
//   - Other fields and all padding are byte arrays
//   - Sum types become a tag type, one struct per variant and a byte-array
//     union with one typed accessor per variant
package gen
