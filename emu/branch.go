// Package emu provides functional MIPS emulation.
package emu

// BranchUnit evaluates MIPS branch conditions. There is no program counter,
// so it only reports whether a branch would be taken.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// BEQ reports whether rs and rt hold equal values.
func (b *BranchUnit) BEQ(rs, rt uint8) bool {
	return b.regFile.ReadReg(rs) == b.regFile.ReadReg(rt)
}

// BNE reports whether rs and rt hold different values.
func (b *BranchUnit) BNE(rs, rt uint8) bool {
	return b.regFile.ReadReg(rs) != b.regFile.ReadReg(rt)
}
