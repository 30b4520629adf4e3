package utils

import (
	"golang.org/x/text/transform"

	"github.com/mogaika/fbxbin/config"
)

// DecodeString converts raw string bytes using the configured charmap.
// fbx strings are length-prefixed and may legally contain NUL bytes,
// so there is no terminator truncation here.
func DecodeString(bs []byte) string {
	s, _, err := transform.Bytes(config.GetEncoding().NewDecoder(), bs)
	if err != nil {
		panic(err)
	}
	return string(s)
}
