package insts

// Fields holds every bitfield of a MIPS instruction word. The position of
// each field is fixed by the encoding and does not depend on the format.
type Fields struct {
	Opcode  uint8  // bits [31:26]
	Rs      uint8  // bits [25:21]
	Rt      uint8  // bits [20:16]
	Rd      uint8  // bits [15:11]
	Shamt   uint8  // bits [10:6]
	Funct   uint8  // bits [5:0]
	Imm     int16  // bits [15:0], two's complement
	Address uint32 // bits [25:0]
}

// Extract splits a 32-bit word into its fields.
func Extract(word uint32) Fields {
	return Fields{
		Opcode:  uint8((word >> 26) & 0x3F),
		Rs:      uint8((word >> 21) & 0x1F),
		Rt:      uint8((word >> 16) & 0x1F),
		Rd:      uint8((word >> 11) & 0x1F),
		Shamt:   uint8((word >> 6) & 0x1F),
		Funct:   uint8(word & 0x3F),
		Imm:     int16(uint16(word & 0xFFFF)),
		Address: word & 0x3FFFFFF,
	}
}

// SImm returns the immediate sign-extended to 32 bits.
func (f Fields) SImm() int32 {
	return int32(f.Imm)
}

// UImm returns the immediate zero-extended to 32 bits.
func (f Fields) UImm() uint32 {
	return uint32(uint16(f.Imm))
}
