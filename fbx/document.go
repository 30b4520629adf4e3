package fbx

import (
	"bytes"

	"github.com/mogaika/fbxbin/utils"
)

// The magic header every binary fbx file starts with: 21 bytes of
// text, a NUL, then 0x1a 0x00.
const HEADER_MAGIC = "Kaydara FBX Binary  \x00\x1a\x00"

// Document is the root of ownership for a decoded tree: the format
// version (7400 reads as "7.4") and the ordered top-level nodes.
type Document struct {
	Version uint32
	Nodes   []*Node
}

// GetNode returns the first top-level node with the given name, or nil.
func (doc *Document) GetNode(name string) *Node {
	for _, n := range doc.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// ReadDocument decodes a whole file: magic header, version, top-level
// nodes up to the terminator record, footer code, footer extension.
// A node failure aborts the whole decode, there is no partial result.
func (d *Decoder) ReadDocument() (*Document, error) {
	magic, err := d.c.ReadBytes(len(HEADER_MAGIC))
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, 0, err, "Failed to read file header")
	}
	if d.level >= Strict && string(magic) != HEADER_MAGIC {
		return nil, newError(ErrInvalidHeader, 0, "Magic %q is not a binary fbx header",
			utils.DumpToOneLineString(magic))
	}

	version, err := d.c.ReadU32LE()
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, d.c.Pos(), err, "Failed to read version")
	}

	doc := &Document{Version: version}
	for {
		node, err := d.ReadNode()
		if err != nil {
			return nil, err
		}
		if node == nil {
			break
		}
		doc.Nodes = append(doc.Nodes, node)
	}

	footerOffset := d.c.Pos()
	code, err := d.c.ReadBytes(FOOTER_CODE_SIZE)
	if err != nil {
		// Files cut off right after the node tree decode fine below
		// Strict, the tree is already complete at this point.
		if d.level >= Strict {
			return nil, wrapError(ErrUnexpectedEOF, footerOffset, err, "Failed to read footer code")
		}
		return doc, nil
	}
	if d.level >= Strict {
		if !bytes.Equal(code, GenerateFooterCode(version)) {
			return nil, newError(ErrInvalidFooterCode, footerOffset,
				"Footer code %s does not match the document", utils.DumpToOneLineString(code))
		}
		if err := d.checkFooterExtension(version); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
