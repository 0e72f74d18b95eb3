package codec

import (
	"bytes"
	"testing"
)

func TestRawCodecRoundTrips(t *testing.T) {
	r := NewRegistry()
	payload := []byte("hello")

	encoded, err := r.Encode("raw", payload)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := r.Decode("raw", encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Fatalf("decoded = %q, want %q", decoded, payload)
	}
}

func TestRegisterEncodeTwicePanics(t *testing.T) {
	r := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Fatal("expected re-registering \"raw\" to panic")
		}
	}()
	r.RegisterEncode("raw", rawCodec)
}

func TestUnknownCodecPanics(t *testing.T) {
	r := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Encode of an unknown codec to panic")
		}
	}()
	_, _ = r.Encode("nonexistent", []byte("x"))
}

func TestHas(t *testing.T) {
	r := NewRegistry()
	if !r.Has("raw") {
		t.Fatal("expected Has(raw) to be true")
	}
	if r.Has("gzip") {
		t.Fatal("expected Has(gzip) to be false before RegisterGzip")
	}
	RegisterGzip(r)
	if !r.Has("gzip") {
		t.Fatal("expected Has(gzip) to be true after RegisterGzip")
	}
}

func TestGzipCodecRoundTrips(t *testing.T) {
	r := NewRegistry()
	RegisterGzip(r)
	payload := bytes.Repeat([]byte("compress me "), 100)

	encoded, err := r.Encode("gzip", payload)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(encoded) >= len(payload) {
		t.Fatalf("expected gzip output to be smaller than input, got %d >= %d", len(encoded), len(payload))
	}
	decoded, err := r.Decode("gzip", encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Fatalf("decoded mismatch")
	}
}

// reverseCodec reverses the byte slice; it's its own inverse, and is used
// alongside a second codec to exercise composed/reentrant codecs.
func reverseCodec(b []byte) ([]byte, error) {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out, nil
}

func TestComposedCodecCallsBackIntoRegistry(t *testing.T) {
	r := NewRegistry()
	r.RegisterEncode("reverse", reverseCodec)
	r.RegisterDecode("reverse", reverseCodec)

	// "complex" composes reverse and gzip by calling back into r from
	// within its own encode/decode functions, the reentrancy the blob
	// pipeline's lock discipline exists to support.
	RegisterGzip(r)
	r.RegisterEncode("complex", func(payload []byte) ([]byte, error) {
		reversed, err := r.Encode("reverse", payload)
		if err != nil {
			return nil, err
		}
		return r.Encode("gzip", reversed)
	})
	r.RegisterDecode("complex", func(payload []byte) ([]byte, error) {
		gunzipped, err := r.Decode("gzip", payload)
		if err != nil {
			return nil, err
		}
		return r.Decode("reverse", gunzipped)
	})

	payload := []byte("round trip through two nested codecs")
	encoded, err := r.Encode("complex", payload)
	if err != nil {
		t.Fatalf("Encode(complex) failed: %v", err)
	}
	decoded, err := r.Decode("complex", encoded)
	if err != nil {
		t.Fatalf("Decode(complex) failed: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Fatalf("decoded = %q, want %q", decoded, payload)
	}
}
