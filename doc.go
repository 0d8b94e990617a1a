/*

Package gamechain defines interfaces used throughout the contract runtime,
such as: storage, calls (transactions), handlers and addresses.
It also contains helpers to work with the context passed along every call.
Look into this package to get a brief overview of design decisions made
around interfaces and extension building blocks.

Contracts live in the x/ subpackages. Each contract kind registers its
handlers in a Registry and stores its state in prefixed buckets (see orm).
The app package executes calls one at a time, each inside a cache-wrapped
store, so every call either applies all of its writes or none of them.

*/

package gamechain
