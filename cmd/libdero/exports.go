//go:build cgo

package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef int32_t dero_Status;
*/
import "C"

import (
	"bytes"
	"unsafe"

	"github.com/derolang/dero-go/internal/capi"
)

// lib is the boundary shared by every entry point.
var lib = capi.New(capi.Config{})

// cText is a caller's NUL-terminated string, valid only during the call.
type cText struct {
	p *C.char
}

func (t cText) IsNull() bool { return t.p == nil }

func (t cText) Bytes() []byte {
	n := int(C.strlen(t.p))
	return bytes.Clone(unsafe.Slice((*byte)(unsafe.Pointer(t.p)), n))
}

//export dero_error_message
func dero_error_message(code C.dero_Status) *C.char {
	return messageFor(int32(code))
}

//export dero_explain_error
func dero_explain_error(text *C.char) {
	lib.Explain(cText{p: text})
}

//export dero_convert
func dero_convert(text *C.char, output **C.char) C.dero_Status {
	status := lib.Convert(cText{p: text}, func(s string) (uintptr, func(), error) {
		if output == nil {
			return 0, nil, capi.ErrNullPointer
		}
		p := C.CString(s)
		return uintptr(unsafe.Pointer(p)), func() { *output = p }, nil
	})
	return C.dero_Status(status)
}

//export dero_free_converted
func dero_free_converted(text *C.char) {
	lib.Free(uintptr(unsafe.Pointer(text)), func() {
		C.free(unsafe.Pointer(text))
	})
}
