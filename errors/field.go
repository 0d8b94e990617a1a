package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches a field name to err, so that validation failures of
// messages and models can be reported per attribute. A nil err gives nil.
//
// Field names follow Go naming. Nested attributes are joined with a dot
// and list elements use their index, for example Contracts.2.Admins.0.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, field: fieldName, desc: description}
}

// AppendField adds the error of a single field to errs. Nil field errors
// are ignored, so all attributes of a model can be checked in a row.
func AppendField(errs error, fieldName string, fieldErr error) error {
	return Append(errs, Field(fieldName, fieldErr, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.field, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.field, e.desc, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Field() string {
	return e.field
}

type fielder interface {
	Field() string
}

// FieldErrors collects all errors reported for fieldName, looking into
// grouped and wrapped errors.
func FieldErrors(err error, fieldName string) []error {
	var found []error
	collectField(err, fieldName, &found)
	return found
}

func collectField(err error, fieldName string, found *[]error) {
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == fieldName {
			*found = append(*found, err)
			return
		}
		// A group exposes all its members, there is nothing left to
		// unwrap once they are visited.
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				collectField(e, fieldName, found)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}
