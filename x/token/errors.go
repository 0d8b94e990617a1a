package token

import "github.com/iov-one/gamechain/errors"

// ErrSupplyCapExceeded is returned when minting would raise the total
// supply of a capped token above its max supply.
var ErrSupplyCapExceeded = errors.Register(200, "supply cap exceeded")
