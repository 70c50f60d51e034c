package pmsnappy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/golang/snappy"
)

// Snappy framing format constants, per
// https://github.com/google/snappy/blob/main/framing_format.txt
const (
	chunkTypeCompressedData   = 0x00
	chunkTypeUncompressedData = 0x01
	chunkTypeStreamIdentifier = 0xff

	// Chunk types 0x02-0x7f are reserved unskippable chunks and abort
	// decoding; 0x80-0xfe are reserved skippable chunks.
	maxUnskippableChunkType = 0x7f

	chunkHeaderSize = 4
	checksumSize    = 4
	magicBody       = "sNaPpY"

	// Maximum uncompressed payload of a single data chunk.
	maxBlockSize = 65536
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

// maskedCRC returns the masked CRC-32C of b as stored in data chunks.
func maskedCRC(b []byte) uint32 {
	c := crc32.Checksum(b, crcTable)
	return uint32(c>>15|c<<17) + 0xa282ead8
}

// decompressor is one inbound decompression context: an incremental
// decoder for the snappy framing format. Input arrives in arbitrary
// fragments; bytes belonging to an incomplete chunk stay buffered until
// the rest of the chunk arrives.
//
// The pull-style snappy.Reader cannot serve here: it wants a blocking
// io.Reader and latches any EOF it sees, while this decoder must return
// to the caller between fragments. The chunk walk is done by hand and
// block decompression is delegated to the snappy codec.
type decompressor struct {
	pending   bytes.Buffer
	gotHeader bool
}

func newDecompressor() *decompressor {
	return &decompressor{}
}

// decompress feeds one fragment into the context and returns the
// uncompressed data of every chunk completed by it. A short fragment may
// complete no chunk and return no output.
func (d *decompressor) decompress(chunk []byte) ([]byte, error) {
	d.pending.Write(chunk)

	var out []byte
	for {
		buf := d.pending.Bytes()
		if len(buf) < chunkHeaderSize {
			return out, nil
		}
		n := int(buf[1]) | int(buf[2])<<8 | int(buf[3])<<16
		if len(buf) < chunkHeaderSize+n {
			return out, nil
		}
		body := buf[chunkHeaderSize : chunkHeaderSize+n]

		switch typ := buf[0]; {
		case typ == chunkTypeStreamIdentifier:
			if n != len(magicBody) || string(body) != magicBody {
				return nil, fmt.Errorf("%w: bad stream identifier", ErrCorruptStream)
			}
			d.gotHeader = true

		case typ == chunkTypeCompressedData:
			decoded, err := d.decodeDataChunk(body, true)
			if err != nil {
				return nil, err
			}
			out = append(out, decoded...)

		case typ == chunkTypeUncompressedData:
			decoded, err := d.decodeDataChunk(body, false)
			if err != nil {
				return nil, err
			}
			out = append(out, decoded...)

		case typ <= maxUnskippableChunkType:
			return nil, fmt.Errorf("%w: unsupported chunk type %#02x", ErrCorruptStream, typ)

		default:
			// Reserved skippable chunk.
		}

		d.pending.Next(chunkHeaderSize + n)
	}
}

// decodeDataChunk decodes the body of a data chunk (checksum followed by
// payload) and verifies its checksum against the uncompressed data.
func (d *decompressor) decodeDataChunk(body []byte, compressed bool) ([]byte, error) {
	if !d.gotHeader {
		return nil, fmt.Errorf("%w: data chunk before stream identifier", ErrCorruptStream)
	}
	if len(body) < checksumSize {
		return nil, fmt.Errorf("%w: truncated data chunk", ErrCorruptStream)
	}
	sum := binary.LittleEndian.Uint32(body[:checksumSize])
	payload := body[checksumSize:]

	var decoded []byte
	if compressed {
		length, err := snappy.DecodedLen(payload)
		if err != nil || length > maxBlockSize {
			return nil, fmt.Errorf("%w: invalid compressed block", ErrCorruptStream)
		}
		if decoded, err = snappy.Decode(nil, payload); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
		}
	} else {
		if len(payload) > maxBlockSize {
			return nil, fmt.Errorf("%w: oversized uncompressed block", ErrCorruptStream)
		}
		decoded = append([]byte(nil), payload...)
	}

	if maskedCRC(decoded) != sum {
		return nil, ErrChecksum
	}
	return decoded, nil
}
