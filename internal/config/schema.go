package config

import (
	"regexp"
)

// DefaultPath is the file read when no path is given.
const DefaultPath = ".layout-importer.yaml"

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// File is the root structure of a configuration file.
type File struct {
	Version  string   `yaml:"version"`
	Package  string   `yaml:"package"`
	Output   string   `yaml:"output"`
	Comments bool     `yaml:"comments"`
	Strict   bool     `yaml:"strict"`
	Workers  int      `yaml:"workers"`
	Include  []string `yaml:"include,omitempty"`
	Exclude  []string `yaml:"exclude,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *File {
	return &File{
		Version:  CurrentVersion,
		Package:  "layouts",
		Output:   "./generated",
		Comments: true,
	}
}

// Filter selects type records by name.
type Filter struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// Match reports whether a type name passes the filter: it must match some
// include pattern (if any are given) and no exclude pattern.
func (f *Filter) Match(name string) bool {
	if f == nil {
		return true
	}

	if len(f.include) > 0 && !matchAny(f.include, name) {
		return false
	}

	return !matchAny(f.exclude, name)
}

func matchAny(patterns []*regexp.Regexp, name string) bool {
	for _, re := range patterns {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}
