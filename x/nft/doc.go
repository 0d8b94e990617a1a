/*
Package nft implements collections of non fungible items.

Items of a collection are numbered from 1 in the order they are minted.
Only admins of the collection (see x/admin) can mint. An item can be
transferred by its current owner.
*/
package nft
