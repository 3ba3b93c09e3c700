// Command libdero is the dero C library.
//
// Build it as a shared or static library:
//
//	go build -buildmode=c-shared -o libdero.so ./cmd/libdero
//	go build -buildmode=c-archive -o libdero.a ./cmd/libdero
//
// and include dero.h from this directory. The entry points are:
//
//	const char *dero_error_message(dero_Status);
//	dero_Status dero_convert(const char *text, const char **output);
//	void dero_free_converted(const char *);
//	void dero_explain_error(const char *);
//
// A string returned through dero_convert's output slot belongs to the caller
// and must be passed to dero_free_converted exactly once. Strings returned by
// dero_error_message are static and must not be freed.
//
// The library requires cgo.
package main

func main() {}
