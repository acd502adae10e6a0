// Package plan turns synthesized layouts into the host declarations a
// materializer creates, named the way every materializer names them.
//
// Per layout:
//  1. Product "T" → one struct "T"; padding fields are named "_padding".
//  2. Sum "T" → an optional tag "T::discriminant", one struct "T::V" per
//     variant, a union "T::variants" with one field per variant, and the
//     struct "T" holding the "discriminant" field followed by the "variants"
//     field.
//
// Declarations are emitted in dependency order, so a materializer can create
// them one by one.
package plan
