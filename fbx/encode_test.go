package fbx

// Test-only encoding helpers. The production module is decode-only,
// so fixtures are synthesized here: compress/zlib emits exactly the
// CMF/FLG + deflate + big-endian Adler-32 layout array payloads use.

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
)

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func cat(parts ...[]byte) []byte {
	var out bytes.Buffer
	for _, p := range parts {
		out.Write(p)
	}
	return out.Bytes()
}

func leBytes(v interface{}) []byte {
	var out bytes.Buffer
	if err := binary.Write(&out, binary.LittleEndian, v); err != nil {
		panic(err)
	}
	return out.Bytes()
}

func propInt16(v int16) []byte     { return cat([]byte{TAG_INT16}, leBytes(v)) }
func propChar(v byte) []byte       { return []byte{TAG_CHAR, v} }
func propInt32(v int32) []byte     { return cat([]byte{TAG_INT32}, leBytes(v)) }
func propFloat32(v float32) []byte { return cat([]byte{TAG_FLOAT32}, leBytes(v)) }
func propFloat64(v float64) []byte { return cat([]byte{TAG_FLOAT64}, leBytes(v)) }
func propInt64(v int64) []byte     { return cat([]byte{TAG_INT64}, leBytes(v)) }

func propString(s string) []byte {
	return cat([]byte{TAG_STRING}, le32(uint32(len(s))), []byte(s))
}

func propRaw(b []byte) []byte {
	return cat([]byte{TAG_RAW}, le32(uint32(len(b))), b)
}

// propArrayRaw encodes an uncompressed array property. elems must be
// a slice of fixed-size values.
func propArrayRaw(tag byte, count int, elems interface{}) []byte {
	payload := leBytes(elems)
	return cat([]byte{tag}, le32(uint32(count)), le32(ARRAY_ENCODING_RAW), le32(uint32(len(payload))), payload)
}

// propArrayDeflated encodes a zlib-compressed array property.
func propArrayDeflated(tag byte, count int, elems interface{}) []byte {
	payload := leBytes(elems)
	var z bytes.Buffer
	zw := zlib.NewWriter(&z)
	if _, err := zw.Write(payload); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return cat([]byte{tag}, le32(uint32(count)), le32(ARRAY_ENCODING_DEFLATED), le32(uint32(z.Len())), z.Bytes())
}

type nodeSpec struct {
	name     string
	props    [][]byte
	children []nodeSpec
}

var nullRecord = make([]byte, 13)

// encodeNodeAt serializes one node record whose first byte sits at
// absolute offset abs, so the record can state its own end offset.
func encodeNodeAt(abs int64, n nodeSpec) []byte {
	var propBytes []byte
	for _, p := range n.props {
		propBytes = append(propBytes, p...)
	}

	pos := abs + 13 + int64(len(n.name)) + int64(len(propBytes))
	var childBytes []byte
	if len(n.children) > 0 {
		for _, c := range n.children {
			cb := encodeNodeAt(pos, c)
			childBytes = append(childBytes, cb...)
			pos += int64(len(cb))
		}
		childBytes = append(childBytes, nullRecord...)
		pos += int64(len(nullRecord))
	}

	var out bytes.Buffer
	out.Write(le32(uint32(pos)))
	out.Write(le32(uint32(len(n.props))))
	out.Write(le32(uint32(len(propBytes))))
	out.WriteByte(byte(len(n.name)))
	out.WriteString(n.name)
	out.Write(propBytes)
	out.Write(childBytes)
	return out.Bytes()
}

func encodeDocument(version uint32, nodes []nodeSpec) []byte {
	var out bytes.Buffer
	out.WriteString(HEADER_MAGIC)
	out.Write(le32(version))
	for _, n := range nodes {
		out.Write(encodeNodeAt(int64(out.Len()), n))
	}
	out.Write(nullRecord)

	out.Write(GenerateFooterCode(version))
	out.Write(make([]byte, 4))
	if pad := out.Len() % 16; pad != 0 {
		out.Write(make([]byte, 16-pad))
	}
	out.Write(le32(version))
	out.Write(make([]byte, footerExtensionZeroes))
	out.Write(footerExtensionMagic[:])
	return out.Bytes()
}

func newTestDecoder(b []byte, level Level) *Decoder {
	return NewDecoder(bytes.NewReader(b), level)
}

var allLevels = []Level{Permissive, Checked, Strict}
