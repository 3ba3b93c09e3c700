package capi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/derolang/dero-go/pkg/dero"
	"github.com/derolang/dero-go/pkg/dero/logging"
)

// ExitFault is the process exit code used when Explain recovers a panic. It
// is the -1 of the C convention as seen by a POSIX parent.
const ExitFault = 255

// Input is a non-owning view of a NUL-terminated buffer supplied by a C
// caller. Implementations must not retain the underlying pointer after the
// call returns.
type Input interface {
	// IsNull reports whether the caller passed a null pointer.
	IsNull() bool
	// Bytes copies the buffer, excluding its terminating NUL, into Go memory.
	Bytes() []byte
}

// Converter is the text conversion capability wrapped by the boundary.
type Converter interface {
	Convert(text string) (string, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(text string) (string, error)

// Convert calls f(text).
func (f ConverterFunc) Convert(text string) (string, error) {
	return f(text)
}

// Explainer is implemented by conversion errors that can describe themselves
// against the original text.
type Explainer interface {
	PrintExplanation(w io.Writer, text string) error
}

// Publisher copies a converted string into a newly allocated C buffer and
// returns the buffer address together with a commit func that stores it in
// the caller's output slot. The Boundary registers the address before calling
// commit. A Publisher returns ErrNullPointer without allocating when the
// output slot is null.
type Publisher func(s string) (addr uintptr, commit func(), err error)

// Config holds the collaborators of a Boundary. Zero values select the
// defaults used by the shared library.
type Config struct {
	// Converter performs the conversion. Defaults to the strict dero
	// converter; pass dero.New(dero.Options{AllowForeign: true}) for the
	// permissive one.
	Converter Converter

	// Logger receives boundary diagnostics. Defaults to logging.Discard so
	// the library writes nothing on its own.
	Logger logging.Logger

	// Stderr receives the output of Explain. Defaults to os.Stderr.
	Stderr io.Writer

	// Exit terminates the process after Explain recovers a panic. Defaults
	// to os.Exit.
	Exit func(code int)
}

// Boundary implements the four entry points of libdero.
type Boundary struct {
	conv    Converter
	log     logging.Logger
	stderr  io.Writer
	exit    func(int)
	handles *Registry
}

// New returns a Boundary configured by cfg.
func New(cfg Config) *Boundary {
	b := &Boundary{
		conv:    cfg.Converter,
		log:     cfg.Logger,
		stderr:  cfg.Stderr,
		exit:    cfg.Exit,
		handles: NewRegistry(),
	}
	if b.conv == nil {
		b.conv = dero.New(dero.Options{})
	}
	if b.log == nil {
		b.log = logging.Discard()
	}
	b.log = b.log.With("component", "capi")
	if b.stderr == nil {
		b.stderr = os.Stderr
	}
	if b.exit == nil {
		b.exit = os.Exit
	}
	return b
}

// Outstanding returns the number of published buffers not yet freed.
func (b *Boundary) Outstanding() int {
	return b.handles.Outstanding()
}

// guard recovers a panic raised by the entry point that deferred it and
// passes it to onPanic. It must be deferred directly.
func (b *Boundary) guard(entry string, onPanic func(*PanicError)) {
	r := recover()
	if r == nil {
		return
	}
	perr := newPanicError(entry, r)
	b.log.Error(context.Background(), "recovered panic", "entry", entry, "panic", fmt.Sprint(r), "stack", string(perr.Stack))
	onPanic(perr)
}

// Convert decodes in, converts it and publishes the result. The output slot
// is written only when the returned status is StatusOK.
func (b *Boundary) Convert(in Input, publish Publisher) (status Status) {
	defer b.guard("dero_convert", func(*PanicError) { status = StatusPanic })

	out, err := b.convert(in)
	if err == nil {
		addr, commit, perr := publish(out)
		if perr == nil {
			b.handles.Track(addr)
			commit()
			return StatusOK
		}
		err = perr
	}

	status = StatusOf(err)
	b.log.Debug(context.Background(), "conversion rejected", "status", status.String(), "error", err, logging.Redacted("text"))
	return status
}

func (b *Boundary) convert(in Input) (string, error) {
	text, err := decode(in)
	if err != nil {
		return "", err
	}
	out, err := b.conv.Convert(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}
	if !utf8.ValidString(out) {
		return "", fmt.Errorf("%w: converter output", ErrInvalidUTF8)
	}
	if strings.IndexByte(out, 0) >= 0 {
		return "", ErrUnrepresentable
	}
	return out, nil
}

func decode(in Input) (string, error) {
	if in == nil || in.IsNull() {
		return "", ErrNullPointer
	}
	raw := in.Bytes()
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidUTF8, len(raw))
	}
	return string(raw), nil
}

// Explain writes a diagnostic about in to the configured stderr. A panic
// during the sequence terminates the process with ExitFault.
func (b *Boundary) Explain(in Input) {
	defer b.guard("dero_explain_error", func(*PanicError) { b.exit(ExitFault) })

	text, err := decode(in)
	switch {
	case errors.Is(err, ErrNullPointer):
		b.diagnose("The text pointer is null")
		return
	case err != nil:
		b.diagnose("Could not read text")
		return
	}

	_, err = b.conv.Convert(text)
	if err == nil {
		b.diagnose("No error found")
		return
	}

	var ex Explainer
	if errors.As(err, &ex) {
		// There is no channel left to report a failed explanation.
		_ = ex.PrintExplanation(b.stderr, text)
		return
	}
	b.diagnose(err.Error())
}

// diagnose writes one line to stderr. A failed write is a fault.
func (b *Boundary) diagnose(msg string) {
	if _, err := fmt.Fprintln(b.stderr, msg); err != nil {
		panic(fmt.Errorf("capi: write diagnostic: %w", err))
	}
}

// Free releases a buffer published by Convert. release performs the actual
// deallocation and is only called for addresses the Boundary issued.
func (b *Boundary) Free(addr uintptr, release func()) {
	defer b.guard("dero_free_converted", func(*PanicError) {})

	if addr == 0 {
		return
	}
	if !b.handles.Release(addr) {
		b.log.Warn(context.Background(), "ignoring free of unknown buffer", "addr", fmt.Sprintf("%#x", addr))
		return
	}
	release()
}
