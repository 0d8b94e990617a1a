/*
Package vault implements custody vaults that hold fungible tokens.

A vault holds tokens under its own address: anyone deposits by minting
or transferring tokens to that address. Only admins of the vault can
withdraw.
*/
package vault
