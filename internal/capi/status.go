package capi

import "fmt"

// Status is the integer result code returned across the C boundary. The
// values are part of the ABI and must not change.
type Status int32

const (
	StatusOK      Status = 0
	StatusNull    Status = -1
	StatusUTF8    Status = -2
	StatusConvert Status = -3
	StatusPanic   Status = -128
)

// UnknownMessage is returned by Message for codes that are not a Status.
const UnknownMessage = "unknown error"

var messages = map[Status]string{
	StatusOK:      "no error",
	StatusNull:    "the text pointer is null",
	StatusUTF8:    "invalid UTF-8 in text",
	StatusConvert: "the full text could not be converted",
	StatusPanic:   "the converter panicked",
}

var names = map[Status]string{
	StatusOK:      "dero_OK",
	StatusNull:    "dero_ERR_NULL",
	StatusUTF8:    "dero_ERR_UTF8",
	StatusConvert: "dero_ERR_CONVERT",
	StatusPanic:   "dero_ERR_PANIC",
}

// Statuses lists every defined status in ABI order.
func Statuses() []Status {
	return []Status{StatusOK, StatusNull, StatusUTF8, StatusConvert, StatusPanic}
}

// Message returns the human-readable description of code. It accepts any
// integer because C callers may pass values that are not a Status.
func Message(code int32) string {
	if msg, ok := messages[Status(code)]; ok {
		return msg
	}
	return UnknownMessage
}

// Message returns the description of s.
func (s Status) Message() string {
	return Message(int32(s))
}

// String returns the C constant name of s.
func (s Status) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("dero_Status(%d)", int32(s))
}
