package transport

import (
	"errors"
	"io"
	"net/http"

	"github.com/fereidani/httpdecompressor"
)

// NewDecompressor wraps a round tripper so that response bodies are
// transparently decompressed according to the Content-Encoding header.
// Supported encodings include gzip, deflate, zlib, brotli, zstd, snappy,
// and lz4; uncompressed responses pass through untouched.
//
// Panics if roundTripper is nil.
func NewDecompressor(roundTripper http.RoundTripper) http.RoundTripper { //nolint:ireturn
	if roundTripper == nil {
		panic("transport: NewDecompressor requires a round tripper")
	}

	return &decompressor{next: roundTripper}
}

type decompressor struct {
	next http.RoundTripper
}

var _ http.RoundTripper = (*decompressor)(nil)

// RoundTrip performs the exchange and swaps in a decompressing body reader
// when the response is compressed. Closing the returned body closes the
// decoder first and the underlying connection body second, so buffered
// data is flushed before the connection is released.
func (d *decompressor) RoundTrip(request *http.Request) (*http.Response, error) {
	rsp, err := d.next.RoundTrip(request)
	if err != nil {
		return rsp, err
	}

	origBody := rsp.Body

	reader, err := httpdecompressor.Reader(rsp)
	if err != nil {
		_ = origBody.Close()

		return nil, err
	}

	// Not compressed; nothing to layer.
	if reader == origBody {
		return rsp, nil
	}

	rsp.Body = &decodedBody{reader: reader, conn: origBody}

	return rsp, nil
}

// decodedBody reads from the decoder while remembering the underlying
// connection body so both get closed.
type decodedBody struct {
	reader io.ReadCloser
	conn   io.Closer
}

func (b *decodedBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *decodedBody) Close() error {
	return errors.Join(b.reader.Close(), b.conn.Close())
}
