package capi

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValuesAreStable(t *testing.T) {
	assert.EqualValues(t, 0, StatusOK)
	assert.EqualValues(t, -1, StatusNull)
	assert.EqualValues(t, -2, StatusUTF8)
	assert.EqualValues(t, -3, StatusConvert)
	assert.EqualValues(t, -128, StatusPanic)
}

func TestMessageForDefinedStatuses(t *testing.T) {
	seen := map[string]Status{}
	for _, s := range Statuses() {
		msg := Message(int32(s))
		assert.NotEmpty(t, msg, "status %v", s)
		assert.NotEqual(t, UnknownMessage, msg, "status %v", s)
		assert.Equal(t, msg, s.Message())
		if prev, dup := seen[msg]; dup {
			t.Errorf("%v and %v share message %q", prev, s, msg)
		}
		seen[msg] = s
	}
	assert.Equal(t, "the text pointer is null", StatusNull.Message())
}

func TestMessageForUndefinedCodes(t *testing.T) {
	for _, code := range []int32{1, -4, -127, 127, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, UnknownMessage, Message(code), "code %d", code)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "dero_ERR_PANIC", StatusPanic.String())
	assert.Equal(t, "dero_Status(7)", Status(7).String())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want Status
	}{
		{nil, StatusOK},
		{ErrNullPointer, StatusNull},
		{fmt.Errorf("%w: 3 bytes", ErrInvalidUTF8), StatusUTF8},
		{ErrUnrepresentable, StatusUTF8},
		{fmt.Errorf("%w: %w", ErrConversion, errors.New("bad")), StatusConvert},
		{errors.New("unexpected"), StatusPanic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), "StatusOf(%v)", tt.err)
	}
}

func TestPanicErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	perr := newPanicError("dero_convert", cause)
	assert.ErrorIs(t, perr, cause)
	assert.Contains(t, perr.Error(), "dero_convert")
	assert.NotEmpty(t, perr.Stack)

	assert.Nil(t, newPanicError("dero_convert", "text").Unwrap())
}
