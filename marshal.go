package fht7901

// Marshaling of register values in big-endian order.

func marshalUint16(n uint16) []byte {
	return []byte{byte(n >> 8), byte(n & 0xFF)}
}

func marshalUint24(n uint32) []byte {
	return append([]byte{byte(n >> 16)}, marshalUint16(uint16(n&0xFFFF))...)
}

func unmarshalUint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
