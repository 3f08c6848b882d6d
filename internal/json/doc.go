// Package json encodes and decodes JSON with [sonic] where it has a native
// backend (amd64 and arm64 on Linux, macOS and Windows) and with
// encoding/json everywhere else.
package json

// Encoder is a streaming JSON encoder.
type Encoder interface {
	Encode(v any) error
	SetEscapeHTML(on bool)
	SetIndent(prefix, indent string)
}
