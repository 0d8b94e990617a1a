package admin

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
)

var _ orm.CloneableData = (*AdminSet)(nil)

// Validate ensures the owner and every admin are valid addresses and that
// no admin is listed twice.
func (m *AdminSet) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	for i, a := range m.Admins {
		if err := a.Validate(); err != nil {
			errs = errors.AppendField(errs, "Admins", errors.Wrapf(err, "admin %d", i))
			continue
		}
		for _, b := range m.Admins[:i] {
			if a.Equals(b) {
				errs = errors.AppendField(errs, "Admins", errors.Wrapf(errors.ErrDuplicate, "admin %s", a))
			}
		}
	}
	return errs
}

// Copy produces a new copy to fulfill the Model interface
func (m *AdminSet) Copy() orm.CloneableData {
	admins := make([]gamechain.Address, len(m.Admins))
	for i, a := range m.Admins {
		admins[i] = a.Clone()
	}
	return &AdminSet{
		Owner:  m.Owner.Clone(),
		Admins: admins,
	}
}

// Has returns true if addr was enabled as an admin.
func (m *AdminSet) Has(addr gamechain.Address) bool {
	for _, a := range m.Admins {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

const bucketName = "admin"

// NewBucket returns a bucket for admin sets, keyed by the address of the
// contract they guard.
func NewBucket() orm.ModelBucket {
	b := orm.NewBucket(bucketName, orm.NewSimpleObj(nil, &AdminSet{}))
	return orm.NewModelBucket(b)
}
