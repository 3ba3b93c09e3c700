// Package capi implements the C boundary of libdero in plain Go.
//
// The cgo entry points in cmd/libdero are thin: they wrap raw pointers in an
// Input, hand allocation of the result buffer to a callback, and return the
// Status this package computes. Everything that can be reasoned about without
// C types lives here so it can be tested without cgo.
//
// # Fault containment
//
// Every Boundary method defers a guard that recovers panics. Methods with a
// return channel turn a panic into StatusPanic. Explain has no return
// channel and exits the process instead. Free logs and returns.
//
// # Ownership
//
// Buffers published by Convert belong to the caller until they come back
// through Free. The Registry records every published address, so a second
// Free of the same address or an address the library never issued is
// reported and ignored.
package capi
