/*
Package utils contains decorators shared by every contract call:
panic recovery, logging and savepoints that make a call atomic.
*/
package utils
