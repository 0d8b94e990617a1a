package errors

import (
	"fmt"
	"testing"
)

func TestABCInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.code,
			wantLog:  "not found",
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrUnauthorized, "caller"), "withdraw"),
			wantCode: ErrUnauthorized.code,
			wantLog:  "withdraw: caller: unauthorized",
		},
		"nil is empty message": {
			err:      nil,
			wantCode: 0,
			wantLog:  "",
		},
		"nil registered error is not an error": {
			err:      (*Error)(nil),
			wantCode: 0,
			wantLog:  "",
		},
		"stdlib is generic message": {
			err:      fmt.Errorf("stdlib error"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"stdlib returns error message in debug mode": {
			err:      fmt.Errorf("stdlib error"),
			debug:    true,
			wantCode: 1,
			wantLog:  "stdlib error",
		},
		"multi error uses the first code": {
			err:      Append(ErrAmount, ErrEmpty),
			wantCode: ErrAmount.code,
			wantLog:  "2 errors occurred:\n\t* invalid amount\n\t* value is empty",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic, false); ErrPanic.Is(err) {
		t.Error("reduct must not pass through panic error")
	}
	if err := Redact(ErrPanic, true); !ErrPanic.Is(err) {
		t.Error("reduct should pass through panic error in debug mode")
	}
	if err := Redact(ErrUnauthorized, false); !ErrUnauthorized.Is(err) {
		t.Error("registered error must pass through")
	}
	if err := Redact(fmt.Errorf("secret path"), false); err.Error() != "internal error" {
		t.Errorf("stdlib error must be hidden, got %q", err)
	}
}
