package options

// CategoryEnum selects which coercion families the field mapper may apply
// when interpreting a dynamic value as a declared kind.
//
// Exact-value numeric fitting (CategorySafeNumber) is the baseline: a number
// of any dynamic width satisfies a numeric field when the value is exactly
// representable in the target kind. Everything past that is opt-in.
type CategoryEnum int

const (
	CategorySafeNumber  CategoryEnum = 1 << iota // number -> number: exact value fit, no truncation or rounding
	CategoryTextNumber                           // string -> number: textual number representation
	CategoryNumericBool                          // int -> bool: 0, 1 representation of boolean values
	CategoryTextualBool                          // string -> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                             // string(RFC3339Nano) -> time.Time: textual date and time representation
	CategoryTimestamp                            // int(Unix seconds) -> time.Time: Unix timestamp representation
	CategoryDuration                             // string(2h45m) -> time.Duration: textual duration representation
	CategoryNanoseconds                          // int(nanoseconds) -> time.Duration: numerical (integer) duration representation
	CategorySeconds                              // float(seconds) -> time.Duration: numerical (floating-point) duration representation

	CategoryAll  = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0  // no categories selected

	// CategoryDefault is what conversions use unless told otherwise.
	CategoryDefault = CategorySafeNumber
)

var categoryNames = map[string]CategoryEnum{
	"safe_number":  CategorySafeNumber,
	"text_number":  CategoryTextNumber,
	"numeric_bool": CategoryNumericBool,
	"textual_bool": CategoryTextualBool,
	"datetime":     CategoryDatetime,
	"timestamp":    CategoryTimestamp,
	"duration":     CategoryDuration,
	"nanoseconds":  CategoryNanoseconds,
	"seconds":      CategorySeconds,
	"all":          CategoryAll,
}

// ParseCategory resolves a category name (as used in record spec files).
func ParseCategory(name string) (CategoryEnum, bool) {
	c, ok := categoryNames[name]
	return c, ok
}

// Has reports whether all bits of the given category are enabled.
func (c CategoryEnum) Has(category CategoryEnum) bool {
	return c&category == category
}
