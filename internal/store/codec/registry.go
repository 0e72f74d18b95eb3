// Package codec implements the name -> (encode, decode) registry that sits
// between a file's user-supplied payload and its persisted blob. Codec
// functions are pure byte-to-byte transformations; they never touch the
// database, and they are free to call back into the registry (a codec may
// be defined as the composition of two others).
package codec

import "fmt"

// Func is a pure byte-to-byte transformation, used for both the encode and
// decode side of a codec.
type Func func([]byte) ([]byte, error)

// Registry is a name -> (encode, decode) map. Lookups never touch a lock:
// by convention, all registration happens before the owning store is used
// concurrently (construction time, or from the single thread that holds
// the facade during setup). A defensive caller may still guard a Registry
// with its own mutex; store.FS does that for registration.
type Registry struct {
	encoders map[string]Func
	decoders map[string]Func
}

// NewRegistry returns a registry pre-populated with the built-in "raw"
// identity codec.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Func),
		decoders: make(map[string]Func),
	}
	r.RegisterEncode("raw", rawCodec)
	r.RegisterDecode("raw", rawCodec)
	return r
}

// RegisterEncode stores fn under name for the write path. Re-registering a
// name that already has an encoder is a programming error: codec names are
// meant to be stable identifiers persisted in fs_nodes.codec, so replacing
// one out from under existing data would silently change how old files
// decode.
func (r *Registry) RegisterEncode(name string, fn Func) {
	if _, exists := r.encoders[name]; exists {
		panic(fmt.Sprintf("codec: encoder %q already registered", name))
	}
	r.encoders[name] = fn
}

// RegisterDecode stores fn under name for the read path. See RegisterEncode
// for why re-registration panics.
func (r *Registry) RegisterDecode(name string, fn Func) {
	if _, exists := r.decoders[name]; exists {
		panic(fmt.Sprintf("codec: decoder %q already registered", name))
	}
	r.decoders[name] = fn
}

// Encode looks up name's encoder and applies it. An unknown name is a
// programming error (the caller asked for a codec that was never
// registered) and panics, matching RegisterEncode/RegisterDecode.
func (r *Registry) Encode(name string, payload []byte) ([]byte, error) {
	fn, ok := r.encoders[name]
	if !ok {
		panic(fmt.Sprintf("codec: unknown encoder %q", name))
	}
	return fn(payload)
}

// Decode looks up name's decoder and applies it.
func (r *Registry) Decode(name string, payload []byte) ([]byte, error) {
	fn, ok := r.decoders[name]
	if !ok {
		panic(fmt.Sprintf("codec: unknown decoder %q", name))
	}
	return fn(payload)
}

// Has reports whether name has both an encoder and a decoder registered.
func (r *Registry) Has(name string) bool {
	_, e := r.encoders[name]
	_, d := r.decoders[name]
	return e && d
}

func rawCodec(b []byte) ([]byte, error) {
	return b, nil
}
