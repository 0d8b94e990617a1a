/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* It has a primary index (which may be composite),
and may possess secondary indexes.
* Sequences provide auto incremented identifiers.
* Easy queries for one and iteration.
*/
package orm
