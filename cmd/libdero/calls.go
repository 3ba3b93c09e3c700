//go:build cgo

package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef int32_t dero_Status;
*/
import "C"

import "unsafe"

// The helpers below call the entry points the way a C program would. Test
// files cannot use cgo, so they go through these.

// cBuffer copies b into a malloc'd, NUL-terminated buffer. b may hold bytes
// that are not valid UTF-8.
func cBuffer(b []byte) *C.char {
	p := (*C.char)(C.malloc(C.size_t(len(b) + 1)))
	buf := unsafe.Slice((*byte)(unsafe.Pointer(p)), len(b)+1)
	copy(buf, b)
	buf[len(b)] = 0
	return p
}

type convertCall struct {
	input      []byte
	nullInput  bool
	nullOutput bool
}

type convertResult struct {
	status    int32
	output    string
	handle    unsafe.Pointer
	untouched bool
}

func callConvert(c convertCall) convertResult {
	var text *C.char
	if !c.nullInput {
		text = cBuffer(c.input)
		defer C.free(unsafe.Pointer(text))
	}

	if c.nullOutput {
		return convertResult{status: int32(dero_convert(text, nil)), untouched: true}
	}

	sentinel := C.CString("untouched")
	defer C.free(unsafe.Pointer(sentinel))
	out := sentinel

	res := convertResult{status: int32(dero_convert(text, &out))}
	if out == sentinel {
		res.untouched = true
		return res
	}
	res.output = C.GoString(out)
	res.handle = unsafe.Pointer(out)
	return res
}

func callFree(handle unsafe.Pointer) {
	dero_free_converted((*C.char)(handle))
}

func callExplain(input []byte, nullInput bool) {
	if nullInput {
		dero_explain_error(nil)
		return
	}
	text := cBuffer(input)
	defer C.free(unsafe.Pointer(text))
	dero_explain_error(text)
}

func callErrorMessage(code int32) (string, unsafe.Pointer) {
	p := dero_error_message(C.dero_Status(code))
	return C.GoString(p), unsafe.Pointer(p)
}

// foreignBuffer returns memory the library did not allocate.
func foreignBuffer() unsafe.Pointer {
	return unsafe.Pointer(cBuffer([]byte("not ours")))
}

func releaseForeign(p unsafe.Pointer) {
	C.free(p)
}
