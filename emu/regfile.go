// Package emu provides functional MIPS emulation.
package emu

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/sarchlab/mipsdec/insts"
)

// RegFile represents the MIPS register file.
// It contains 32 general-purpose 32-bit registers, all zero at creation.
//
// R[0] ($zero) is not hardwired: writes to it are stored like any other
// register.
type RegFile struct {
	R [insts.NumRegs]int32
}

// NewRegFile creates a zeroed register file.
func NewRegFile() *RegFile {
	return &RegFile{}
}

// ReadReg reads a register value. The index is masked to 5 bits.
func (r *RegFile) ReadReg(reg uint8) int32 {
	return r.R[reg&0x1F]
}

// WriteReg writes a register value. The index is masked to 5 bits.
func (r *RegFile) WriteReg(reg uint8, value int32) {
	r.R[reg&0x1F] = value
}

// ReadRegU reads a register as an unsigned bit pattern.
func (r *RegFile) ReadRegU(reg uint8) uint32 {
	return uint32(r.ReadReg(reg))
}

// WriteRegU writes an unsigned bit pattern to a register.
func (r *RegFile) WriteRegU(reg uint8, value uint32) {
	r.WriteReg(reg, int32(value))
}

// Snapshot returns the register values keyed by register name, in index
// order.
func (r *RegFile) Snapshot() *orderedmap.OrderedMap[string, int32] {
	m := orderedmap.New[string, int32]()
	for i, v := range r.R {
		m.Set(insts.RegName(uint8(i)), v)
	}
	return m
}
