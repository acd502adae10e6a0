package config

import (
	"fmt"
	"go/token"
	"regexp"

	"type-layout-importer/internal/diagnostic"
)

// Validate checks a configuration without touching the file system.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported config version %q, want %q", f.Version, CurrentVersion), "", "version")
	}

	if !token.IsIdentifier(f.Package) || f.Package == "_" {
		res.AddError("invalid_package", fmt.Sprintf("%q is not a valid Go package name", f.Package), "", "package")
	}

	if f.Workers < 0 {
		res.AddError("invalid_workers", fmt.Sprintf("workers must not be negative, got %d", f.Workers), "", "workers")
	}

	for _, p := range f.Include {
		if _, err := regexp.Compile(p); err != nil {
			res.AddError("invalid_pattern", err.Error(), "", "include")
		}
	}

	for _, p := range f.Exclude {
		if _, err := regexp.Compile(p); err != nil {
			res.AddError("invalid_pattern", err.Error(), "", "exclude")
		}
	}

	return res
}

// Filter compiles the include and exclude patterns.
func (f *File) Filter() (*Filter, error) {
	include, err := compileAll(f.Include)
	if err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}

	exclude, err := compileAll(f.Exclude)
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}

	return &Filter{include: include, exclude: exclude}, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}

		res = append(res, re)
	}

	return res, nil
}
