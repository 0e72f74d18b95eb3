package codec

import (
	"bytes"
	"compress/gzip"
	"io"
)

// RegisterGzip adds an optional "gzip" codec pair to r, using the standard
// library compressor. Unlike "raw", this codec is not registered by
// NewRegistry automatically — callers that want it opt in explicitly, the
// same way they would register any third-party compression codec.
func RegisterGzip(r *Registry) {
	r.RegisterEncode("gzip", gzipEncode)
	r.RegisterDecode("gzip", gzipDecode)
}

func gzipEncode(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gzipDecode(payload []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(r)
}
