package fbx

import (
	"github.com/mogaika/fbxbin/utils"
)

// Node is a named tree element carrying an ordered property list and
// an ordered child list. Property order is positional, not keyed.
// Nodes are immutable once decoded.
type Node struct {
	Name       string
	Properties []Property
	Children   []*Node
}

// GetNode returns the first child with the given name, or nil.
func (n *Node) GetNode(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// GetNodes returns every child with the given name.
func (n *Node) GetNodes(name string) []*Node {
	result := make([]*Node, 0, 4)
	for _, c := range n.Children {
		if c.Name == name {
			result = append(result, c)
		}
	}
	return result
}

// MAX_NODE_DEPTH bounds recursion so a hostile file full of nested
// records cannot exhaust the call stack.
const MAX_NODE_DEPTH = 512

// ReadNode decodes one node record at the cursor. A terminator record
// (declared end offset 0) yields (nil, nil), which ends a sibling
// sequence and is never materialized as a Node.
func (d *Decoder) ReadNode() (*Node, error) {
	return d.readNode(0)
}

func (d *Decoder) readNode(depth int) (*Node, error) {
	headerOffset := d.c.Pos()
	if depth > MAX_NODE_DEPTH {
		return nil, newError(ErrNestingTooDeep, headerOffset, "Node tree nested deeper than %d levels", MAX_NODE_DEPTH)
	}

	endOffset, err := d.c.ReadU32LE()
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, headerOffset, err, "Failed to read node end offset")
	}
	propertyCount, err := d.c.ReadU32LE()
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, headerOffset, err, "Failed to read node property count")
	}
	propertyListLen, err := d.c.ReadU32LE()
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, headerOffset, err, "Failed to read node property list length")
	}
	nameLen, err := d.c.ReadU8()
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, headerOffset, err, "Failed to read node name length")
	}
	name, err := d.c.ReadBytes(int(nameLen))
	if err != nil {
		return nil, wrapError(ErrUnexpectedEOF, headerOffset, err, "Failed to read node name")
	}

	if endOffset == 0 {
		if d.level >= Checked && (propertyCount != 0 || propertyListLen != 0 || nameLen != 0) {
			return nil, newError(ErrMalformedNullNode, headerOffset,
				"Terminator record with non-zero fields (properties=%d listLen=%d nameLen=%d)",
				propertyCount, propertyListLen, nameLen)
		}
		return nil, nil
	}

	node := &Node{Name: utils.DecodeString(name)}

	propertiesStart := d.c.Pos()
	for i := uint32(0); i < propertyCount; i++ {
		p, err := d.readProperty()
		if err != nil {
			return nil, err
		}
		node.Properties = append(node.Properties, p)
	}
	propertiesEnd := propertiesStart + int64(propertyListLen)
	if d.level >= Checked && d.c.Pos() != propertiesEnd {
		return nil, newError(ErrPropertyListLengthMismatch, d.c.Pos(),
			"Properties consumed %d bytes, header declared %d",
			d.c.Pos()-propertiesStart, propertyListLen)
	}
	// Permissive resyncs to the declared boundary so sibling reads
	// stay aligned even when a property list lied about its length.
	d.c.Seek(propertiesEnd)

	if int64(endOffset) < d.c.Pos() {
		if d.level >= Checked {
			return nil, newError(ErrInvalidEndOffset, headerOffset,
				"Node end offset 0x%x is before current position 0x%x", endOffset, d.c.Pos())
		}
		return node, nil
	}
	if int64(endOffset) > d.c.Pos() {
		for {
			child, err := d.readNode(depth + 1)
			if err != nil {
				return nil, err
			}
			if child == nil {
				break
			}
			node.Children = append(node.Children, child)
		}
		if d.level >= Checked && d.c.Pos() != int64(endOffset) {
			return nil, newError(ErrNodeLengthMismatch, d.c.Pos(),
				"Node declared end 0x%x but children ended at 0x%x", endOffset, d.c.Pos())
		}
		d.c.Seek(int64(endOffset))
	}
	return node, nil
}
