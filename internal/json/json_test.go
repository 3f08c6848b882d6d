package json

import (
	"bytes"
	"testing"
)

func TestMarshalUnmarshal(t *testing.T) {
	payload := map[string]any{"b": []string{"x", "y"}, "a": nil}

	got, err := Marshal(payload)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	const want = `{"a":null,"b":["x","y"]}`
	if string(got) != want {
		t.Fatalf("marshal = %q, want %q", string(got), want)
	}

	var back map[string][]string
	if err := Unmarshal(got, &back); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if len(back["b"]) != 2 || back["a"] != nil {
		t.Fatalf("unmarshal = %v", back)
	}
}

func TestEncoderEscapeHTML(t *testing.T) {
	var buf bytes.Buffer

	enc := NewEncoder(&buf)
	if err := enc.Encode("<tag>"); err != nil {
		t.Fatalf("encode returned error: %v", err)
	}
	const escaped = "\"\\u003ctag\\u003e\"\n"
	if buf.String() != escaped {
		t.Fatalf("encode with default config = %q, want %q", buf.String(), escaped)
	}

	buf.Reset()
	enc = NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode("<tag>"); err != nil {
		t.Fatalf("encode returned error: %v", err)
	}
	if buf.String() != "\"<tag>\"\n" {
		t.Fatalf("encode without HTML escaping = %q", buf.String())
	}
}
