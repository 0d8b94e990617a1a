/*
Package token implements fungible token ledgers.

Every token is a contract instance with its own address, derived from
a sequence. A token keeps a balance per account and the total supply.
A token created with a max supply is a governance token: minting beyond
the cap fails with ErrSupplyCapExceeded.

Minting is open to anyone unless the token was created with AdminMint,
in which case only the admins of the token (see x/admin) can mint.
*/
package token
