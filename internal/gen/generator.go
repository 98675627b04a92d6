// Package gen turns a validated record-shape file into Go source: one
// conversion function per declared record, assembled from per-field
// fieldmap extract calls. This is the compile-time rendition of the field
// mapper; the runtime rendition lives in statecast/fieldmap.
package gen

import (
	"fmt"
	"go/format"
	"strings"

	"statecast/internal/specfile"
	"statecast/options"
	"statecast/primitive"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName overrides the package declared in the spec file.
	PackageName string
	// Filename of the generated file. Defaults to records_gen.go.
	Filename string
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the bare name of the file (e.g. "records_gen.go").
	Filename string
	// Content is the gofmt-formatted Go source code.
	Content []byte
}

const header = "// Code generated by statecast-gen. DO NOT EDIT.\n\n"

// allowedVar is the name of the emitted allowance variable when the spec
// file declares a non-default category set.
const allowedVar = "fromStateAllowed"

// Generate emits the conversion functions for every record in the file.
func Generate(f *specfile.File, cfg Config) (GeneratedFile, error) {
	pkg := cfg.PackageName
	if pkg == "" {
		pkg = f.Package
	}

	filename := cfg.Filename
	if filename == "" {
		filename = "records_gen.go"
	}

	allowed, ok := f.Allowed()
	if !ok {
		return GeneratedFile{}, fmt.Errorf("spec file names an unknown coercion category (of %v)", f.Categories)
	}
	custom := allowed != options.CategoryDefault

	funcs := make(map[string]string, len(f.Records))
	for _, rec := range f.Records {
		funcs[rec.Name] = rec.Func
	}

	var body strings.Builder
	needsTime := false

	for i := range f.Records {
		if i > 0 {
			body.WriteString("\n")
		}

		needsTime = emitRecord(&body, &f.Records[i], custom, funcs) || needsTime
	}

	var src strings.Builder
	src.WriteString(header)
	src.WriteString("package " + pkg + "\n\n")

	src.WriteString("import (\n")
	if needsTime {
		src.WriteString("\t\"time\"\n\n")
	}
	src.WriteString("\t\"statecast/fieldmap\"\n")
	if custom {
		src.WriteString("\t\"statecast/options\"\n")
	}
	src.WriteString(")\n\n")

	if custom {
		src.WriteString("// " + allowedVar + " is the coercion allowance declared in the spec file.\n")
		src.WriteString("var " + allowedVar + " = " + categoryExpr(allowed) + "\n\n")
	}

	src.WriteString(body.String())

	formatted, err := format.Source([]byte(src.String()))
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("formatting generated code: %w", err)
	}

	return GeneratedFile{Filename: filename, Content: formatted}, nil
}

// emitRecord writes one conversion function and reports whether it needs
// the time import.
func emitRecord(b *strings.Builder, rec *specfile.Record, custom bool, funcs map[string]string) bool {
	needsTime := false

	fmt.Fprintf(b, "// %s converts a dynamic state map into a %s record.\n", rec.Func, rec.Name)
	b.WriteString("// It fails on the first missing or invalid field in declaration order.\n")
	fmt.Fprintf(b, "func %s(src map[string]any) (%s, error) {\n", rec.Func, rec.Name)
	fmt.Fprintf(b, "\tvar rec %s\n", rec.Name)
	b.WriteString("\tvar err error\n\n")

	for i := range rec.Fields {
		field := &rec.Fields[i]

		call := extractCall(field, custom, funcs)
		if strings.Contains(call, "[time.") {
			needsTime = true
		}

		fmt.Fprintf(b, "\tif rec.%s, err = %s; err != nil {\n", field.Attr, call)
		fmt.Fprintf(b, "\t\treturn %s{}, err\n", rec.Name)
		b.WriteString("\t}\n\n")
	}

	b.WriteString("\treturn rec, nil\n")
	b.WriteString("}\n")

	return needsTime
}

func extractCall(field *specfile.Field, custom bool, funcs map[string]string) string {
	if field.Record != "" {
		return fmt.Sprintf("fieldmap.ExtractRecord(src, %q, %s)", field.Name, funcs[field.Record])
	}

	kind, _ := primitive.ParseLabel(field.Kind) // validated on load
	typ := kind.GoType().String()

	if custom {
		return fmt.Sprintf("fieldmap.ExtractWith[%s](src, %q, %s)", typ, field.Name, allowedVar)
	}

	return fmt.Sprintf("fieldmap.Extract[%s](src, %q)", typ, field.Name)
}

// categoryExpr renders a category bit set as an options expression.
func categoryExpr(allowed options.CategoryEnum) string {
	named := []struct {
		c    options.CategoryEnum
		name string
	}{
		{options.CategorySafeNumber, "options.CategorySafeNumber"},
		{options.CategoryTextNumber, "options.CategoryTextNumber"},
		{options.CategoryNumericBool, "options.CategoryNumericBool"},
		{options.CategoryTextualBool, "options.CategoryTextualBool"},
		{options.CategoryDatetime, "options.CategoryDatetime"},
		{options.CategoryTimestamp, "options.CategoryTimestamp"},
		{options.CategoryDuration, "options.CategoryDuration"},
		{options.CategoryNanoseconds, "options.CategoryNanoseconds"},
		{options.CategorySeconds, "options.CategorySeconds"},
	}

	var parts []string
	for _, entry := range named {
		if allowed.Has(entry.c) {
			parts = append(parts, entry.name)
		}
	}

	if len(parts) == 0 {
		return "options.CategoryNone"
	}

	return strings.Join(parts, " | ")
}
