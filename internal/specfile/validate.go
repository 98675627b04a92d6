package specfile

import (
	"fmt"

	"statecast/primitive"
)

// Validate checks a parsed record-shape file for internal consistency:
// known kind labels and categories, unique names, resolvable and acyclic
// nested record references, exactly one of kind/record per field.
func Validate(f *File) error {
	if !isIdentifier(f.Package) {
		return fmt.Errorf("invalid package name %q", f.Package)
	}

	if len(f.Records) == 0 {
		return fmt.Errorf("spec file declares no records")
	}

	if _, ok := f.Allowed(); !ok {
		return fmt.Errorf("spec file names an unknown coercion category (of %v)", f.Categories)
	}

	declared := make(map[string]struct{}, len(f.Records))
	for _, rec := range f.Records {
		if !isExportedIdentifier(rec.Name) {
			return fmt.Errorf("record name %q is not an exported identifier", rec.Name)
		}

		if _, dup := declared[rec.Name]; dup {
			return fmt.Errorf("record %s declared twice", rec.Name)
		}
		declared[rec.Name] = struct{}{}
	}

	for _, rec := range f.Records {
		if err := validateRecord(&rec, declared); err != nil {
			return err
		}
	}

	if cycle := findReferenceCycle(f); cycle != "" {
		return fmt.Errorf("record %s reaches a nested reference cycle", cycle)
	}

	return nil
}

func validateRecord(rec *Record, declared map[string]struct{}) error {
	if len(rec.Fields) == 0 {
		return fmt.Errorf("record %s declares no fields", rec.Name)
	}

	if !isExportedIdentifier(rec.Func) {
		return fmt.Errorf("record %s: function name %q is not an exported identifier", rec.Name, rec.Func)
	}

	keys := make(map[string]struct{}, len(rec.Fields))
	attrs := make(map[string]struct{}, len(rec.Fields))

	for _, field := range rec.Fields {
		if field.Name == "" {
			return fmt.Errorf("record %s has a field without a name", rec.Name)
		}

		if _, dup := keys[field.Name]; dup {
			return fmt.Errorf("record %s extracts key %q twice", rec.Name, field.Name)
		}
		keys[field.Name] = struct{}{}

		if !isExportedIdentifier(field.Attr) {
			return fmt.Errorf("record %s field %s: attribute %q is not an exported identifier",
				rec.Name, field.Name, field.Attr)
		}

		if _, dup := attrs[field.Attr]; dup {
			return fmt.Errorf("record %s binds attribute %s twice", rec.Name, field.Attr)
		}
		attrs[field.Attr] = struct{}{}

		switch {
		case field.Kind != "" && field.Record != "":
			return fmt.Errorf("record %s field %s: kind and record are mutually exclusive", rec.Name, field.Name)

		case field.Kind != "":
			if _, ok := primitive.ParseLabel(field.Kind); !ok {
				return fmt.Errorf("record %s field %s: unknown kind %q", rec.Name, field.Name, field.Kind)
			}

		case field.Record != "":
			if _, ok := declared[field.Record]; !ok {
				return fmt.Errorf("record %s field %s: references undeclared record %q",
					rec.Name, field.Name, field.Record)
			}

		default:
			return fmt.Errorf("record %s field %s: needs either kind or record", rec.Name, field.Name)
		}
	}

	return nil
}

// findReferenceCycle returns the name of a record participating in a nested
// reference cycle, or empty string. Value-typed nested records cannot
// contain themselves.
func findReferenceCycle(f *File) string {
	refs := make(map[string][]string, len(f.Records))
	for _, rec := range f.Records {
		for _, field := range rec.Fields {
			if field.Record != "" {
				refs[rec.Name] = append(refs[rec.Name], field.Record)
			}
		}
	}

	const (
		visiting = 1
		done     = 2
	)

	state := make(map[string]int, len(refs))

	var visit func(name string) bool
	visit = func(name string) bool {
		switch state[name] {
		case visiting:
			return true
		case done:
			return false
		}

		state[name] = visiting
		for _, next := range refs[name] {
			if visit(next) {
				return true
			}
		}
		state[name] = done

		return false
	}

	for _, rec := range f.Records {
		if visit(rec.Name) {
			return rec.Name
		}
	}

	return ""
}
