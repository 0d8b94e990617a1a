package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no non-nil error is given, nil is returned. If exactly one error
// remains, it is returned as it is.
func Append(errs ...error) error {
	var all []error
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(*multiErr); ok {
			all = append(all, m.errs...)
			continue
		}
		all = append(all, err)
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return &multiErr{errs: all}
	}
}

// multiErr represents a set of errors that are reported together, for
// example all invalid fields of a message.
type multiErr struct {
	errs []error
}

var (
	_ unpacker = (*multiErr)(nil)
	_ coder    = (*multiErr)(nil)
)

func (e *multiErr) Error() string {
	if len(e.errs) == 1 {
		return e.errs[0].Error()
	}
	points := make([]string, len(e.errs))
	for i, err := range e.errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(e.errs), strings.Join(points, "\n\t"))
}

// Unpack returns all errors clubbed together in this instance.
func (e *multiErr) Unpack() []error {
	return e.errs
}

// ABCICode returns the code of the first error, consistent with fail-fast
// approach.
func (e *multiErr) ABCICode() uint32 {
	return abciCode(e.errs[0])
}
