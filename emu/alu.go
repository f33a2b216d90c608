// Package emu provides functional MIPS emulation.
package emu

// ALU implements MIPS arithmetic and logic operations.
// All arithmetic is 32-bit and wraps silently on overflow.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADD performs addition: rd = rs + rt
func (a *ALU) ADD(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)+a.regFile.ReadReg(rt))
}

// SUB performs subtraction: rd = rs - rt
func (a *ALU) SUB(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)-a.regFile.ReadReg(rt))
}

// AND performs bitwise AND: rd = rs & rt
func (a *ALU) AND(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)&a.regFile.ReadReg(rt))
}

// OR performs bitwise OR: rd = rs | rt
func (a *ALU) OR(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)|a.regFile.ReadReg(rt))
}

// SLT performs signed set-less-than: rd = (rs < rt) ? 1 : 0
func (a *ALU) SLT(rd, rs, rt uint8) {
	var result int32
	if a.regFile.ReadReg(rs) < a.regFile.ReadReg(rt) {
		result = 1
	}
	a.regFile.WriteReg(rd, result)
}

// ADDI performs addition with a sign-extended immediate: rt = rs + imm
func (a *ALU) ADDI(rt, rs uint8, imm int32) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)+imm)
}

// ANDI performs bitwise AND with a zero-extended immediate: rt = rs & imm
func (a *ALU) ANDI(rt, rs uint8, imm uint32) {
	a.regFile.WriteRegU(rt, a.regFile.ReadRegU(rs)&imm)
}

// ORI performs bitwise OR with a zero-extended immediate: rt = rs | imm
func (a *ALU) ORI(rt, rs uint8, imm uint32) {
	a.regFile.WriteRegU(rt, a.regFile.ReadRegU(rs)|imm)
}

// LUI loads the immediate into the upper half: rt = imm << 16
func (a *ALU) LUI(rt uint8, imm uint32) {
	a.regFile.WriteRegU(rt, (imm&0xFFFF)<<16)
}
