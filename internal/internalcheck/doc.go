// Package internalcheck holds repository policy tests.
//
// The checks load the module with golang.org/x/tools/go/packages and inspect
// source rather than behaviour: which packages use cgo, how the C entry
// points are written, and whether dero.h still matches them. The package has
// no API.
package internalcheck
