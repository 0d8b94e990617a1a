/*
Package amount provides the unsigned 256 bit integer used for token
balances, supplies and caps.

An Amount is an immutable value. All arithmetic returns a new instance and
reports an error instead of wrapping around or going negative.
*/
package amount

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/iov-one/gamechain/errors"
)

// MaxBytes is the length of the binary representation of the biggest
// possible amount.
const MaxBytes = 32

// Max is the biggest representable amount, 2^256 - 1.
var Max = Amount{i: new(big.Int).Set(math.MaxBig256)}

// Amount is a non negative integer not greater than Max.
// The zero value represents zero.
type Amount struct {
	i *big.Int
}

// Zero returns an amount of zero.
func Zero() Amount {
	return Amount{}
}

// New returns an amount of the given value.
func New(v uint64) Amount {
	return Amount{i: new(big.Int).SetUint64(v)}
}

// FromBig returns an amount of the same value as n. It fails if n is
// negative or does not fit in 256 bits.
func FromBig(n *big.Int) (Amount, error) {
	if n == nil {
		return Zero(), nil
	}
	if n.Sign() < 0 {
		return Zero(), errors.Wrapf(errors.ErrAmount, "negative value %s", n)
	}
	if n.Cmp(math.MaxBig256) > 0 {
		return Zero(), errors.Wrapf(errors.ErrOverflow, "%s does not fit in 256 bits", n)
	}
	return Amount{i: new(big.Int).Set(n)}, nil
}

// Parse reads an amount from its decimal or 0x prefixed hexadecimal
// representation.
func Parse(s string) (Amount, error) {
	if s == "" {
		return Zero(), errors.Wrap(errors.ErrEmpty, "amount")
	}
	n, ok := math.ParseBig256(s)
	if !ok || n.Sign() < 0 {
		return Zero(), errors.Wrapf(errors.ErrAmount, "cannot parse %q", s)
	}
	return Amount{i: n}, nil
}

// MustParse is like Parse but panics on error. Use it only for constants.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromBytes decodes the big endian representation produced by Bytes.
func FromBytes(raw []byte) (Amount, error) {
	if len(raw) > MaxBytes {
		return Zero(), errors.Wrapf(errors.ErrOverflow, "%d bytes", len(raw))
	}
	if len(raw) == 0 {
		return Zero(), nil
	}
	return Amount{i: new(big.Int).SetBytes(raw)}, nil
}

// Bytes returns the minimal big endian representation. Zero is encoded as
// an empty slice.
func (a Amount) Bytes() []byte {
	if a.i == nil {
		return nil
	}
	return a.i.Bytes()
}

// Big returns a copy of the value as a big integer.
func (a Amount) Big() *big.Int {
	if a.i == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.i)
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.i == nil || a.i.Sign() == 0
}

// Cmp compares two amounts and returns -1, 0 or 1.
func (a Amount) Cmp(b Amount) int {
	return a.Big().Cmp(b.Big())
}

// Equals returns true if both amounts represent the same value.
func (a Amount) Equals(b Amount) bool {
	return a.Cmp(b) == 0
}

// LessThan returns true if a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.Cmp(b) < 0
}

// Add returns a + b or ErrOverflow if the result does not fit in 256 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := new(big.Int).Add(a.Big(), b.Big())
	if sum.Cmp(math.MaxBig256) > 0 {
		return Zero(), errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return Amount{i: sum}, nil
}

// Sub returns a - b or ErrInsufficientAmount if b is greater than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.LessThan(b) {
		return Zero(), errors.Wrapf(errors.ErrInsufficientAmount, "%s - %s", a, b)
	}
	return Amount{i: new(big.Int).Sub(a.Big(), b.Big())}, nil
}

// String returns the decimal representation.
func (a Amount) String() string {
	return a.Big().String()
}

// MarshalJSON encodes the amount as a decimal string, so that values
// bigger than 2^53 survive JavaScript clients.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a decimal string and a plain number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrAmount, err.Error())
		}
		s = n.String()
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalYAML encodes the amount as a decimal string.
func (a Amount) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML reads the amount from a string or an integer node.
func (a *Amount) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return errors.Wrap(errors.ErrAmount, err.Error())
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
