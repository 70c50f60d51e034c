package pmsnappy

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunk builds a raw framing-format chunk.
func chunk(typ byte, body []byte) []byte {
	c := []byte{typ, byte(len(body)), byte(len(body) >> 8), byte(len(body) >> 16)}
	return append(c, body...)
}

func streamIdentifier() []byte {
	return chunk(chunkTypeStreamIdentifier, []byte(magicBody))
}

// uncompressedChunk builds an uncompressed data chunk carrying sum as its
// stored checksum.
func uncompressedChunk(payload []byte, sum uint32) []byte {
	body := binary.LittleEndian.AppendUint32(nil, sum)
	return chunk(chunkTypeUncompressedData, append(body, payload...))
}

func TestDecompressorUncompressedChunk(t *testing.T) {
	payload := []byte("stored verbatim")
	stream := append(streamIdentifier(), uncompressedChunk(payload, maskedCRC(payload))...)

	d := newDecompressor()
	out, err := d.decompress(stream)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestDecompressorSkippableChunk(t *testing.T) {
	payload := []byte("after a skippable chunk")
	stream := streamIdentifier()
	stream = append(stream, chunk(0x80, []byte("padding, ignored"))...)
	stream = append(stream, uncompressedChunk(payload, maskedCRC(payload))...)

	d := newDecompressor()
	out, err := d.decompress(stream)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestDecompressorErrors(t *testing.T) {
	payload := []byte("payload")

	tests := []struct {
		name    string
		stream  []byte
		wantErr error
	}{
		{
			name:    "Bad stream identifier",
			stream:  chunk(chunkTypeStreamIdentifier, []byte("sNaPpX")),
			wantErr: ErrCorruptStream,
		},
		{
			name:    "Short stream identifier",
			stream:  chunk(chunkTypeStreamIdentifier, []byte("sNaP")),
			wantErr: ErrCorruptStream,
		},
		{
			name:    "Data chunk before stream identifier",
			stream:  uncompressedChunk(payload, maskedCRC(payload)),
			wantErr: ErrCorruptStream,
		},
		{
			name:    "Unskippable reserved chunk",
			stream:  append(streamIdentifier(), chunk(0x02, payload)...),
			wantErr: ErrCorruptStream,
		},
		{
			name:    "Truncated data chunk",
			stream:  append(streamIdentifier(), chunk(chunkTypeUncompressedData, []byte{0x01, 0x02})...),
			wantErr: ErrCorruptStream,
		},
		{
			name:    "Invalid compressed block",
			stream:  append(streamIdentifier(), chunk(chunkTypeCompressedData, []byte{0, 0, 0, 0, 0xff, 0xff, 0xff})...),
			wantErr: ErrCorruptStream,
		},
		{
			name:    "Checksum mismatch",
			stream:  append(streamIdentifier(), uncompressedChunk(payload, maskedCRC(payload)+1)...),
			wantErr: ErrChecksum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecompressor()
			_, err := d.decompress(tt.stream)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecompressorPartialFrames(t *testing.T) {
	payload := []byte("delivered one byte at a time")
	stream := append(streamIdentifier(), uncompressedChunk(payload, maskedCRC(payload))...)

	d := newDecompressor()
	var out []byte
	for _, b := range stream {
		got, err := d.decompress([]byte{b})
		require.NoError(t, err)
		out = append(out, got...)
	}
	assert.Equal(t, payload, out)
}

func TestMaskedCRC(t *testing.T) {
	// The framing format checksum is CRC-32C, masked. Verify against the
	// codec's own writer output: compress a payload and check that the
	// stored checksum in the produced data chunk matches.
	payload := []byte("checksum reference payload")

	c := newCompressor()
	stream, err := c.compress(payload)
	require.NoError(t, err)

	// Skip the stream identifier, then read the data chunk's checksum.
	require.Greater(t, len(stream), len(streamIdentifier())+chunkHeaderSize+checksumSize)
	data := stream[len(streamIdentifier()):]
	sum := binary.LittleEndian.Uint32(data[chunkHeaderSize : chunkHeaderSize+checksumSize])

	assert.Equal(t, maskedCRC(payload), sum)
}

func FuzzDecompressMessageData(f *testing.F) {
	payload := []byte("seed payload")
	f.Add(append(streamIdentifier(), uncompressedChunk(payload, maskedCRC(payload))...))
	f.Add(streamIdentifier())
	f.Add([]byte{})
	f.Add([]byte{0xff, 0x06, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		d := newDecompressor()
		out, err := d.decompress(data)
		if err != nil {
			assert.Nil(t, out)
		}
	})
}
