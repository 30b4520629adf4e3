package fbx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTerminatorRecord(t *testing.T) {
	for _, level := range allLevels {
		d := newTestDecoder(nullRecord, level)
		node, err := d.ReadNode()
		if err != nil {
			t.Errorf("at %v: %v", level, err)
			continue
		}
		if node != nil {
			t.Errorf("at %v: got %+v, want no node", level, node)
		}
		if d.Pos() != int64(len(nullRecord)) {
			t.Errorf("at %v: cursor at %d, want %d", level, d.Pos(), len(nullRecord))
		}
	}
}

func TestMalformedTerminator(t *testing.T) {
	in := cat(le32(0), le32(1), le32(0), []byte{0})

	d := newTestDecoder(in, Checked)
	_, err := d.ReadNode()
	if kind, ok := KindOf(err); !ok || kind != ErrMalformedNullNode {
		t.Errorf("at checked: got %v, want MalformedNullNode", err)
	}

	d = newTestDecoder(in, Permissive)
	if node, err := d.ReadNode(); err != nil || node != nil {
		t.Errorf("at permissive: got (%v, %v), want no node", node, err)
	}
}

func TestSimpleNode(t *testing.T) {
	in := encodeNodeAt(0, nodeSpec{
		name:  "Creator",
		props: [][]byte{propString("fbxbin"), propInt32(100)},
	})
	want := &Node{Name: "Creator", Properties: []Property{String("fbxbin"), Int32(100)}}

	for _, level := range allLevels {
		d := newTestDecoder(in, level)
		got, err := d.ReadNode()
		if err != nil {
			t.Errorf("at %v: %v", level, err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("at %v: mismatch (-want +got):\n%s", level, diff)
		}
		if d.Pos() != int64(len(in)) {
			t.Errorf("at %v: cursor at %d, want %d", level, d.Pos(), len(in))
		}
	}
}

func TestNestedNodes(t *testing.T) {
	in := encodeNodeAt(0, nodeSpec{
		name:  "Objects",
		props: [][]byte{},
		children: []nodeSpec{
			{
				name:  "Geometry",
				props: [][]byte{propInt64(1000), propString("Mesh")},
				children: []nodeSpec{
					{name: "Vertices", props: [][]byte{propArrayRaw(TAG_ARRAY_FLOAT64, 3, []float64{0, 1, 2})}},
				},
			},
			{name: "Model", props: [][]byte{propInt64(2000)}},
		},
	})

	want := &Node{
		Name: "Objects",
		Children: []*Node{
			{
				Name:       "Geometry",
				Properties: []Property{Int64(1000), String("Mesh")},
				Children: []*Node{
					{Name: "Vertices", Properties: []Property{Float64Array{0, 1, 2}}},
				},
			},
			{Name: "Model", Properties: []Property{Int64(2000)}},
		},
	}

	for _, level := range allLevels {
		got, err := newTestDecoder(in, level).ReadNode()
		if err != nil {
			t.Errorf("at %v: %v", level, err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("at %v: mismatch (-want +got):\n%s", level, diff)
		}
	}
}

func TestPropertyListLengthMismatch(t *testing.T) {
	// One int32 property (5 bytes) but a declared list length of 7:
	// two trailing bytes inside the property region are never read.
	prop := propInt32(5)
	in := cat(le32(20), le32(1), le32(7), []byte{0}, prop, []byte{0xaa, 0xbb})

	d := newTestDecoder(in, Checked)
	_, err := d.ReadNode()
	if kind, ok := KindOf(err); !ok || kind != ErrPropertyListLengthMismatch {
		t.Errorf("at checked: got %v, want PropertyListLengthMismatch", err)
	}

	// Permissive resyncs to the declared property list boundary.
	d = newTestDecoder(in, Permissive)
	got, err := d.ReadNode()
	if err != nil {
		t.Fatalf("at permissive: %v", err)
	}
	want := &Node{Properties: []Property{Int32(5)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("at permissive: mismatch (-want +got):\n%s", diff)
	}
	if d.Pos() != 20 {
		t.Errorf("at permissive: cursor at %d, want 20", d.Pos())
	}
}

func TestNodeLengthMismatch(t *testing.T) {
	child := encodeNodeAt(13, nodeSpec{name: "a"})
	body := cat(child, nullRecord)
	// The declared end offset claims two more bytes than the children
	// actually cover.
	in := cat(le32(uint32(13+len(body)+2)), le32(0), le32(0), []byte{0}, body, []byte{0, 0})

	d := newTestDecoder(in, Checked)
	_, err := d.ReadNode()
	if kind, ok := KindOf(err); !ok || kind != ErrNodeLengthMismatch {
		t.Errorf("at checked: got %v, want NodeLengthMismatch", err)
	}

	d = newTestDecoder(in, Permissive)
	got, err := d.ReadNode()
	if err != nil {
		t.Fatalf("at permissive: %v", err)
	}
	if len(got.Children) != 1 || got.Children[0].Name != "a" {
		t.Errorf("at permissive: got %+v", got)
	}
	if d.Pos() != int64(len(in)) {
		t.Errorf("at permissive: cursor at %d, want %d", d.Pos(), len(in))
	}
}

func TestInvalidEndOffset(t *testing.T) {
	// Node header ends at 13, but the declared end offset is 5.
	in := cat(le32(5), le32(0), le32(0), []byte{0})

	d := newTestDecoder(in, Checked)
	_, err := d.ReadNode()
	if kind, ok := KindOf(err); !ok || kind != ErrInvalidEndOffset {
		t.Errorf("at checked: got %v, want InvalidEndOffset", err)
	}

	d = newTestDecoder(in, Permissive)
	if node, err := d.ReadNode(); err != nil || node == nil {
		t.Errorf("at permissive: got (%v, %v), want a node", node, err)
	}
}

func TestNestingTooDeep(t *testing.T) {
	n := nodeSpec{name: "a"}
	for i := 0; i < MAX_NODE_DEPTH+10; i++ {
		n = nodeSpec{name: "a", children: []nodeSpec{n}}
	}
	in := encodeNodeAt(0, n)

	d := newTestDecoder(in, Checked)
	_, err := d.ReadNode()
	if kind, ok := KindOf(err); !ok || kind != ErrNestingTooDeep {
		t.Errorf("got %v, want NestingTooDeep", err)
	}
}

func TestGetNode(t *testing.T) {
	n := &Node{Children: []*Node{{Name: "P"}, {Name: "C"}, {Name: "P"}}}
	if got := n.GetNode("C"); got != n.Children[1] {
		t.Errorf("GetNode(C) = %+v", got)
	}
	if got := n.GetNode("missing"); got != nil {
		t.Errorf("GetNode(missing) = %+v", got)
	}
	if got := n.GetNodes("P"); len(got) != 2 {
		t.Errorf("GetNodes(P) returned %d nodes, want 2", len(got))
	}
}
