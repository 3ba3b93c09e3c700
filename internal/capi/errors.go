package capi

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrNullPointer reports a null text pointer or a null output slot.
	ErrNullPointer = errors.New("capi: null pointer")

	// ErrInvalidUTF8 reports input bytes or converter output that are not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("capi: invalid UTF-8")

	// ErrConversion wraps a failure reported by the Converter.
	ErrConversion = errors.New("capi: conversion failed")

	// ErrUnrepresentable reports converter output containing a NUL byte,
	// which cannot be returned as a C string. It shares StatusUTF8 with
	// ErrInvalidUTF8 for compatibility with existing callers.
	ErrUnrepresentable = errors.New("capi: output contains a NUL byte")
)

// StatusOf maps an error produced inside the boundary to the status returned
// to C. Errors the boundary does not recognise are unanticipated and map to
// StatusPanic.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrConversion):
		return StatusConvert
	case errors.Is(err, ErrNullPointer):
		return StatusNull
	case errors.Is(err, ErrInvalidUTF8), errors.Is(err, ErrUnrepresentable):
		return StatusUTF8
	default:
		return StatusPanic
	}
}

// PanicError is a recovered panic together with the stack that raised it.
type PanicError struct {
	Entry string
	Value any
	Stack []byte
}

func newPanicError(entry string, v any) *PanicError {
	return &PanicError{Entry: entry, Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("capi: panic in %s: %v", e.Entry, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
