package fbx

import (
	"io"

	"github.com/mogaika/fbxbin/readat"
)

// Decoder reads the binary fbx format from a seekable byte source.
// A Decoder owns its cursor: one Decoder must not be driven from two
// goroutines, while independent Decoders over independent sources are
// safe in parallel. There is no package-wide decode state.
type Decoder struct {
	c     *readat.Cursor
	level Level
}

func NewDecoder(source io.ReaderAt, level Level) *Decoder {
	return &Decoder{
		c:     readat.NewCursor(source),
		level: level,
	}
}

// Pos is the absolute offset of the next byte the Decoder will
// consume. Useful for callers doing partial (per-node) decoding.
func (d *Decoder) Pos() int64 {
	return d.c.Pos()
}

// Parse decodes a whole document from source.
func Parse(source io.ReaderAt, level Level) (*Document, error) {
	return NewDecoder(source, level).ReadDocument()
}
