package nft

import "github.com/iov-one/gamechain/errors"

// ErrUnknownToken is returned when an item id was never minted in the
// collection.
var ErrUnknownToken = errors.Register(210, "unknown token")
