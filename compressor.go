package pmsnappy

import (
	"bytes"

	"github.com/golang/snappy"
)

// compressor is one outbound compression context: a snappy framing-format
// writer over an in-memory buffer. The stream identifier block is written
// once per context, so whether consecutive messages share a context is
// observable on the wire.
type compressor struct {
	buf bytes.Buffer
	sw  *snappy.Writer
}

func newCompressor() *compressor {
	c := &compressor{}
	c.sw = snappy.NewBufferedWriter(&c.buf)
	return c
}

// compress encodes one chunk and returns the frames produced for it. The
// writer is flushed per chunk so output is available immediately, not
// held until some internal block boundary.
func (c *compressor) compress(chunk []byte) ([]byte, error) {
	if _, err := c.sw.Write(chunk); err != nil {
		return nil, err
	}
	if err := c.sw.Flush(); err != nil {
		return nil, err
	}
	out := append([]byte(nil), c.buf.Bytes()...)
	c.buf.Reset()
	return out, nil
}
