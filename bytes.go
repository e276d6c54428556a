package probably

import "encoding/binary"

// EncodeUint64 returns the 8 byte big endian encoding of v. It is a ready
// made Encoder for NewEncoded.
func EncodeUint64(v uint64) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), v)
}

// EncodeInt64 encodes v as its two's complement bit pattern, see EncodeUint64.
func EncodeInt64(v int64) []byte { return EncodeUint64(uint64(v)) }
