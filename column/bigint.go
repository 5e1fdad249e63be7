package column

import "math/big"

// putBigLE writes v into buf (len(buf) == width) as a little-endian,
// fixed-width two's complement (signed) or plain (unsigned) integer.
func putBigLE(buf []byte, v *big.Int, signed bool) {
	width := len(buf)
	magnitude := v

	if signed && v.Sign() < 0 {
		// two's complement: (2^(8*width) + v), v is negative here.
		mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
		magnitude = new(big.Int).Add(mod, v)
	}

	be := magnitude.Bytes() // big-endian, no leading zero byte, may be shorter than width
	for i := range buf {
		buf[i] = 0
	}
	// be's least-significant byte is be[len(be)-1]; place it at buf[0] (LE).
	for i := 0; i < len(be) && i < width; i++ {
		buf[i] = be[len(be)-1-i]
	}
}

// getBigLE reads a little-endian fixed-width integer from buf, interpreting
// it as two's complement when signed is true.
func getBigLE(buf []byte, signed bool) *big.Int {
	width := len(buf)
	be := make([]byte, width)
	for i := 0; i < width; i++ {
		be[i] = buf[width-1-i]
	}

	result := new(big.Int).SetBytes(be)

	if signed && width > 0 && be[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
		result.Sub(result, mod)
	}

	return result
}
