package fbx

import (
	"compress/flate"
	"encoding/binary"
	"hash"
	"hash/adler32"
	"io"
)

const (
	ARRAY_ENCODING_RAW      = 0
	ARRAY_ENCODING_DEFLATED = 1
)

// checksumReader accumulates an Adler-32 checksum over every
// decompressed byte it hands out, so the trailer can be compared
// against in-flight state without draining the stream first.
type checksumReader struct {
	r io.Reader
	h hash.Hash32
}

func newChecksumReader(r io.Reader) *checksumReader {
	return &checksumReader{r: r, h: adler32.New()}
}

func (cr *checksumReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.h.Write(p[:n])
	return n, err
}

func (cr *checksumReader) Sum32() uint32 {
	return cr.h.Sum32()
}

// readArray fills data, a slice already sized to the element count,
// from the remainder of an array payload: encoding flag, region byte
// length, then either raw elements or a zlib stream. Whatever the
// body contained, the cursor ends at the declared region end.
func (d *Decoder) readArray(data interface{}) error {
	headerOffset := d.c.Pos()
	encoding, err := d.c.ReadU32LE()
	if err != nil {
		return wrapError(ErrUnexpectedEOF, headerOffset, err, "Failed to read array encoding")
	}
	length, err := d.c.ReadU32LE()
	if err != nil {
		return wrapError(ErrUnexpectedEOF, headerOffset, err, "Failed to read array region length")
	}
	regionEnd := d.c.Pos() + int64(length)

	if encoding == ARRAY_ENCODING_RAW {
		if err := binary.Read(d.c, binary.LittleEndian, data); err != nil {
			return wrapError(ErrUnexpectedEOF, d.c.Pos(), err, "Failed to read raw array body")
		}
		d.c.Seek(regionEnd)
		return nil
	}
	if d.level >= Checked && encoding != ARRAY_ENCODING_DEFLATED {
		return newError(ErrInvalidEncoding, headerOffset, "Unknown array encoding %d", encoding)
	}

	zlibOffset := d.c.Pos()
	hdr, err := d.c.ReadBytes(2)
	if err != nil {
		return wrapError(ErrUnexpectedEOF, zlibOffset, err, "Failed to read zlib header")
	}
	if d.level >= Checked {
		cmf, flg := hdr[0], hdr[1]
		if cmf&0x0f != 8 {
			return newError(ErrInvalidCompressionFormat, zlibOffset, "Compression method %d is not deflate", cmf&0x0f)
		}
		if cmf>>4 > 7 {
			return newError(ErrInvalidCompressionFormat, zlibOffset, "Window size bits %d out of range", cmf>>4)
		}
		if flg&0x20 != 0 {
			return newError(ErrDictionaryUnsupported, zlibOffset, "Preset dictionaries are not supported")
		}
		if d.level >= Strict {
			if (uint16(cmf)<<8 | uint16(flg))%31 != 0 {
				return newError(ErrInvalidFCheck, zlibOffset, "Header check failed for CMF=0x%02x FLG=0x%02x", cmf, flg)
			}
		}
	}

	// The deflate reader buffers ahead, so the cursor position is
	// meaningless while it runs. LimitReader keeps it inside the
	// declared region, the final Seek restores determinism.
	body := newChecksumReader(flate.NewReader(io.LimitReader(d.c, regionEnd-d.c.Pos())))
	if err := binary.Read(body, binary.LittleEndian, data); err != nil {
		return wrapError(ErrMalformedCompressedData, zlibOffset, err, "Failed to decompress array body")
	}

	if d.level >= Checked {
		d.c.Seek(regionEnd - 4)
		want, err := d.c.ReadU32BE()
		if err != nil {
			return wrapError(ErrUnexpectedEOF, regionEnd-4, err, "Failed to read checksum trailer")
		}
		if got := body.Sum32(); got != want {
			return newError(ErrChecksumMismatch, regionEnd-4, "Computed checksum 0x%08x does not match trailer 0x%08x", got, want)
		}
		return nil
	}
	d.c.Seek(regionEnd)
	return nil
}
