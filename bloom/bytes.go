package bloom

import "encoding/binary"

// Buffers are processed as little-endian 64 bit words so that the bulk
// operations are independent of the host byte order.

func readU64LE(b []byte) uint64     { return binary.LittleEndian.Uint64(b) }
func writeU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

func wordCount(buf []byte) int { return len(buf) / wordBytes }

func word(buf []byte, i int) uint64 { return readU64LE(buf[i*wordBytes:]) }

func setWord(buf []byte, i int, v uint64) { writeU64LE(buf[i*wordBytes:], v) }
