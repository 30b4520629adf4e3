package fbx

const FOOTER_CODE_SIZE = 16

// The footer code is an externally mandated, checksum-like value: a
// seed table mixed with the document version through a chained xor.
// The transform has no documented rationale, it is ported byte for
// byte to match what conforming writers emit.
var footerCodeSeed = [FOOTER_CODE_SIZE]byte{
	0x58, 0xab, 0xa9, 0xf0, 0x6c, 0xa2, 0xd8, 0x3f,
	0x4d, 0x47, 0x49, 0xa3, 0xb4, 0xb2, 0xe7, 0x3d,
}

var footerCodeKey = [FOOTER_CODE_SIZE]byte{
	0xe2, 0x4f, 0x7b, 0x5f, 0xcd, 0xe4, 0xc8, 0x6d,
	0xdb, 0xd8, 0xfb, 0xd7, 0x40, 0x58, 0xc6, 0x78,
}

var footerExtensionMagic = [FOOTER_CODE_SIZE]byte{
	0xf8, 0x5a, 0x8c, 0x6a, 0xde, 0xf5, 0xd9, 0x7e,
	0xec, 0xe9, 0x0c, 0xe3, 0x75, 0x8f, 0x29, 0x0b,
}

func mixFooterCode(code []byte, key [FOOTER_CODE_SIZE]byte) {
	c := byte(64)
	for i := range code {
		code[i] ^= key[i] ^ c
		c = code[i]
	}
}

// GenerateFooterCode computes the footer code a conforming writer
// emits for a document of the given version.
func GenerateFooterCode(version uint32) []byte {
	code := make([]byte, FOOTER_CODE_SIZE)
	copy(code, footerCodeSeed[:])
	for i := range code {
		code[i] ^= byte(version >> uint((i%4)*8))
	}
	mixFooterCode(code, footerCodeKey)
	mixFooterCode(code, footerCodeSeed)
	mixFooterCode(code, footerCodeKey)
	return code
}

const footerExtensionZeroes = 120

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// checkFooterExtension validates the region after the footer code:
// four zero bytes, zero padding up to the next 16-byte file offset
// boundary, the version echoed, 120 zero bytes, then the extension
// magic. Only consulted at Strict.
func (d *Decoder) checkFooterExtension(version uint32) error {
	extOffset := d.c.Pos()

	zeros, err := d.c.ReadBytes(4)
	if err != nil {
		return wrapError(ErrUnexpectedEOF, extOffset, err, "Failed to read footer extension")
	}
	if !allZero(zeros) {
		return newError(ErrInvalidFooterExtension, extOffset, "Non-zero bytes after footer code")
	}

	if pad := int(d.c.Pos() % 16); pad != 0 {
		padding, err := d.c.ReadBytes(16 - pad)
		if err != nil {
			return wrapError(ErrUnexpectedEOF, extOffset, err, "Failed to read footer padding")
		}
		if !allZero(padding) {
			return newError(ErrInvalidFooterExtension, extOffset, "Non-zero footer alignment padding")
		}
	}

	echoOffset := d.c.Pos()
	echo, err := d.c.ReadU32LE()
	if err != nil {
		return wrapError(ErrUnexpectedEOF, echoOffset, err, "Failed to read footer version")
	}
	if echo != version {
		return newError(ErrInvalidFooterExtension, echoOffset,
			"Footer version %d does not match header version %d", echo, version)
	}

	zeros, err = d.c.ReadBytes(footerExtensionZeroes)
	if err != nil {
		return wrapError(ErrUnexpectedEOF, extOffset, err, "Failed to read footer extension")
	}
	if !allZero(zeros) {
		return newError(ErrInvalidFooterExtension, extOffset, "Non-zero bytes in footer reserved block")
	}

	magicOffset := d.c.Pos()
	magic, err := d.c.ReadBytes(FOOTER_CODE_SIZE)
	if err != nil {
		return wrapError(ErrUnexpectedEOF, magicOffset, err, "Failed to read footer magic")
	}
	if string(magic) != string(footerExtensionMagic[:]) {
		return newError(ErrInvalidFooterExtension, magicOffset, "Bad footer magic")
	}
	return nil
}
