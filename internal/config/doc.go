// Package config provides the YAML configuration file of the importer.
//
// # Schema Overview
//
//	version: "1"
//	package: layouts      # Go package name of generated code
//	output: ./generated   # output directory for generated files
//	comments: true        # offset and size comments on every field
//	strict: false         # size mismatches fail the document
//	workers: 0            # documents imported at once; 0 = GOMAXPROCS
//	include: []           # type-name regexps; empty keeps every type
//	exclude: []           # type-name regexps applied after include
//
// Command-line flags override the values read from the file.
package config
