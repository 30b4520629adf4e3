package fbx

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Level selects how much validation the decoder performs. Levels are
// ordered: every check enforced at a level is also enforced at the
// levels above it, so raising the level never accepts more inputs.
type Level int

const (
	// Permissive decodes just enough to keep the cursor aligned for
	// subsequent reads and skips every consistency check, including
	// array checksums and header/footer magic.
	Permissive Level = iota
	// Checked additionally verifies internal self-consistency: node
	// length bookkeeping, terminator record shape, compression header
	// sanity and the compressed-array checksum trailer.
	Checked
	// Strict additionally verifies externally mandated values: the
	// file magic, the footer code and extension, and the zlib FCHECK
	// field.
	Strict
)

func (l Level) String() string {
	switch l {
	case Permissive:
		return "permissive"
	case Checked:
		return "checked"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a command line argument to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "permissive":
		return Permissive, nil
	case "checked":
		return Checked, nil
	case "strict":
		return Strict, nil
	}
	return Checked, errors.Errorf("Unknown strictness level %q", s)
}
