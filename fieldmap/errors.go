package fieldmap

import "errors"

var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidFieldType = errors.New("invalid field type")
)

// MissingFieldError reports that a declared field's key is absent from the
// source map. It matches ErrMissingField under errors.Is.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string { return "Missing " + e.Name }

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// InvalidFieldTypeError reports that a key is present but its dynamic value
// cannot be interpreted as the declared type. Expected carries the short
// label of the declared type, like "u8" or "grooming.Coat". It matches
// ErrInvalidFieldType under errors.Is.
type InvalidFieldTypeError struct {
	Name     string
	Expected string
}

func (e *InvalidFieldTypeError) Error() string {
	return "Invalid " + e.Name + ": expected " + e.Expected
}

func (e *InvalidFieldTypeError) Is(target error) bool { return target == ErrInvalidFieldType }
