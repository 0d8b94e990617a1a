/*
Package app contains the execution environment of the contracts: routing
of messages to handlers, chaining of decorators and the Executor that
applies calls to a committed store one at a time.
*/
package app
