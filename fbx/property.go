package fbx

import (
	"bytes"
	"strings"

	"github.com/mogaika/fbxbin/utils"
)

// Property type tags as they appear in the stream.
const (
	TAG_INT16   = 'Y'
	TAG_CHAR    = 'C'
	TAG_INT32   = 'I'
	TAG_FLOAT32 = 'F'
	TAG_FLOAT64 = 'D'
	TAG_INT64   = 'L'
	TAG_STRING  = 'S'
	TAG_RAW     = 'R'

	TAG_ARRAY_FLOAT32 = 'f'
	TAG_ARRAY_FLOAT64 = 'd'
	TAG_ARRAY_INT64   = 'l'
	TAG_ARRAY_INT32   = 'i'
	TAG_ARRAY_BOOL    = 'b'
)

// Property is one typed value attached positionally to a Node. The
// set of implementations is closed, a type switch over the types
// below is exhaustive.
type Property interface {
	fbxProperty()
}

type Int16 int16
type Char byte
type Int32 int32
type Float32 float32
type Float64 float64
type Int64 int64
type String string
type RawBytes []byte
type Float32Array []float32
type Float64Array []float64
type Int64Array []int64
type Int32Array []int32
type BoolArray []bool

func (Int16) fbxProperty()        {}
func (Char) fbxProperty()         {}
func (Int32) fbxProperty()        {}
func (Float32) fbxProperty()      {}
func (Float64) fbxProperty()      {}
func (Int64) fbxProperty()        {}
func (String) fbxProperty()       {}
func (RawBytes) fbxProperty()     {}
func (Float32Array) fbxProperty() {}
func (Float64Array) fbxProperty() {}
func (Int64Array) fbxProperty()   {}
func (Int32Array) fbxProperty()   {}
func (BoolArray) fbxProperty()    {}

// PropertyTag reports the stream type tag a property decodes from.
func PropertyTag(p Property) byte {
	switch p.(type) {
	case Int16:
		return TAG_INT16
	case Char:
		return TAG_CHAR
	case Int32:
		return TAG_INT32
	case Float32:
		return TAG_FLOAT32
	case Float64:
		return TAG_FLOAT64
	case Int64:
		return TAG_INT64
	case String:
		return TAG_STRING
	case RawBytes:
		return TAG_RAW
	case Float32Array:
		return TAG_ARRAY_FLOAT32
	case Float64Array:
		return TAG_ARRAY_FLOAT64
	case Int64Array:
		return TAG_ARRAY_INT64
	case Int32Array:
		return TAG_ARRAY_INT32
	case BoolArray:
		return TAG_ARRAY_BOOL
	}
	panic("not a property type")
}

// readProperty consumes one type tag byte plus its payload, leaving
// the cursor exactly past the value. An unknown tag is fatal at every
// level: the payload size is unknowable, so the cursor position can
// not be recovered.
func (d *Decoder) readProperty() (Property, error) {
	tagOffset := d.c.Pos()
	tag, err := d.c.ReadU8()
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read property type tag")
	}

	switch tag {
	case TAG_INT16:
		v, err := d.c.ReadI16LE()
		if err != nil {
			return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read int16 property")
		}
		return Int16(v), nil
	case TAG_CHAR:
		v, err := d.c.ReadU8()
		if err != nil {
			return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read char property")
		}
		return Char(v), nil
	case TAG_INT32:
		v, err := d.c.ReadI32LE()
		if err != nil {
			return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read int32 property")
		}
		return Int32(v), nil
	case TAG_FLOAT32:
		v, err := d.c.ReadF32LE()
		if err != nil {
			return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read float32 property")
		}
		return Float32(v), nil
	case TAG_FLOAT64:
		v, err := d.c.ReadF64LE()
		if err != nil {
			return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read float64 property")
		}
		return Float64(v), nil
	case TAG_INT64:
		v, err := d.c.ReadI64LE()
		if err != nil {
			return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read int64 property")
		}
		return Int64(v), nil
	case TAG_STRING:
		raw, err := d.readBlob()
		if err != nil {
			return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read string property")
		}
		return String(decodeString(raw)), nil
	case TAG_RAW:
		raw, err := d.readBlob()
		if err != nil {
			return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read raw property")
		}
		return RawBytes(raw), nil
	case TAG_ARRAY_FLOAT32:
		return d.readArrayProperty(tagOffset, func(count uint32) (Property, interface{}) {
			a := make(Float32Array, count)
			return a, a
		})
	case TAG_ARRAY_FLOAT64:
		return d.readArrayProperty(tagOffset, func(count uint32) (Property, interface{}) {
			a := make(Float64Array, count)
			return a, a
		})
	case TAG_ARRAY_INT64:
		return d.readArrayProperty(tagOffset, func(count uint32) (Property, interface{}) {
			a := make(Int64Array, count)
			return a, a
		})
	case TAG_ARRAY_INT32:
		return d.readArrayProperty(tagOffset, func(count uint32) (Property, interface{}) {
			a := make(Int32Array, count)
			return a, a
		})
	case TAG_ARRAY_BOOL:
		return d.readArrayProperty(tagOffset, func(count uint32) (Property, interface{}) {
			a := make(BoolArray, count)
			return a, a
		})
	}
	return nil, newError(ErrMalformedProperty, tagOffset, "Unknown property type tag %q", tag)
}

func (d *Decoder) readArrayProperty(tagOffset int64, alloc func(count uint32) (Property, interface{})) (Property, error) {
	count, err := d.c.ReadU32LE()
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, tagOffset, err, "Failed to read array element count")
	}
	prop, data := alloc(count)
	if err := d.readArray(data); err != nil {
		return nil, err
	}
	return prop, nil
}

// readBlob reads a 32-bit length prefix followed by that many bytes.
func (d *Decoder) readBlob() ([]byte, error) {
	length, err := d.c.ReadU32LE()
	if err != nil {
		return nil, err
	}
	return d.c.ReadBytes(int(length))
}

var binarySeparator = []byte{0x00, 0x01}

const asciiSeparator = "::"

// decodeString converts raw S-property bytes to a string. A payload
// containing the NUL+SOH separator is a reversed object path: tokens
// are split on the separator, reversed and rejoined with "::". The
// separator transform runs on raw bytes, before charmap decoding, so
// the NUL bytes survive up to this point.
func decodeString(raw []byte) string {
	if !bytes.Contains(raw, binarySeparator) {
		return utils.DecodeString(raw)
	}
	parts := bytes.Split(raw, binarySeparator)
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[len(parts)-1-i] = utils.DecodeString(p)
	}
	return strings.Join(tokens, asciiSeparator)
}
