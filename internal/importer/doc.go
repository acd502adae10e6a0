// Package importer drives one report from text to layouts: it reads the
// source, parses it, drops filtered type names, synthesizes every remaining
// record and collects the resulting diagnostics.
//
// Documents are independent, so ImportAll imports several of them in
// parallel with a bounded number of workers.
package importer
