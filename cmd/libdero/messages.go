//go:build cgo

package main

// #include <stdlib.h>
import "C"

import "github.com/derolang/dero-go/internal/capi"

// The message strings live in C memory for the life of the process and are
// never written after init.
var (
	messageTable   map[int32]*C.char
	unknownMessage *C.char
)

func init() {
	statuses := capi.Statuses()
	messageTable = make(map[int32]*C.char, len(statuses))
	for _, s := range statuses {
		messageTable[int32(s)] = C.CString(s.Message())
	}
	unknownMessage = C.CString(capi.UnknownMessage)
}

func messageFor(code int32) *C.char {
	if p, ok := messageTable[code]; ok {
		return p
	}
	return unknownMessage
}
