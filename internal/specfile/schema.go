// Package specfile defines the declarative YAML record-shape files consumed
// by statecast-gen. A file declares, per target record type, the ordered
// list of (source key, declared kind) pairs the generated conversion
// function extracts. This is the authoritative, human-reviewed shape
// definition.
package specfile

import (
	"strings"
	"unicode"

	"statecast/options"
)

// File represents the root of a YAML record-shape definition file.
type File struct {
	// Version of the spec file schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package"`

	// Categories names the coercion families the generated extractors may
	// apply beyond exact numeric fitting. Empty means the default
	// allowance.
	Categories []string `yaml:"categories,omitempty"`

	// Records lists the record shapes to generate conversion functions for.
	Records []Record `yaml:"records"`
}

// Record declares one target record shape.
type Record struct {
	// Name of the target record type (must exist in the package).
	Name string `yaml:"name"`

	// Func is the name of the generated conversion function.
	// Defaults to <Name>FromState.
	Func string `yaml:"func,omitempty"`

	// Fields in extraction order. Order decides which failure is reported
	// first when several fields are missing or invalid.
	Fields []Field `yaml:"fields"`
}

// Field declares one (source key, declared type) pair.
type Field struct {
	// Name is the source map key.
	Name string `yaml:"name"`

	// Kind is the declared primitive kind label (u8, i32, string, bool,
	// f64, time, duration). Exactly one of Kind and Record must be set.
	Kind string `yaml:"kind,omitempty"`

	// Record references another record declared in the same file; the
	// generated code delegates to that record's conversion function.
	Record string `yaml:"record,omitempty"`

	// Attr is the Go attribute name on the target record.
	// Defaults to the CamelCase form of Name.
	Attr string `yaml:"attr,omitempty"`
}

// Allowed folds the named categories into a bit set. Files that name no
// category get the default allowance.
func (f *File) Allowed() (options.CategoryEnum, bool) {
	if len(f.Categories) == 0 {
		return options.CategoryDefault, true
	}

	allowed := options.CategoryNone
	for _, name := range f.Categories {
		c, ok := options.ParseCategory(name)
		if !ok {
			return options.CategoryNone, false
		}

		allowed |= c
	}

	return allowed, true
}

// CamelCase converts a source map key to its default Go attribute name:
// fur_length_cm -> FurLengthCm.
func CamelCase(key string) string {
	var b strings.Builder

	for _, part := range strings.Split(key, "_") {
		if part == "" {
			continue
		}

		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}

	return b.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}

func isExportedIdentifier(s string) bool {
	if !isIdentifier(s) {
		return false
	}

	return unicode.IsUpper([]rune(s)[0])
}
