package weavetest

import "github.com/iov-one/gamechain"

// Decorator passes calls to the next handler and counts them. Setting
// CheckErr or DeliverErr makes the corresponding method fail without
// calling the next handler. Failed calls are counted too.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	checks   int
	delivers int
}

var _ gamechain.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx, next gamechain.Checker) (*gamechain.CheckResult, error) {
	d.checks++
	if err := d.CheckErr; err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx, next gamechain.Deliverer) (*gamechain.DeliverResult, error) {
	d.delivers++
	if err := d.DeliverErr; err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int   { return d.checks }
func (d *Decorator) DeliverCallCount() int { return d.delivers }
func (d *Decorator) CallCount() int        { return d.checks + d.delivers }

// Decorate wraps h with d, the way a decorator chain does it.
func Decorate(h gamechain.Handler, d gamechain.Decorator) gamechain.Handler {
	return decorated{next: h, dec: d}
}

type decorated struct {
	next gamechain.Handler
	dec  gamechain.Decorator
}

func (d decorated) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	return d.dec.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	return d.dec.Deliver(ctx, db, tx, d.next)
}
