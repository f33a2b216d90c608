package insts

// NumRegs is the number of general-purpose registers.
const NumRegs = 32

var regNames = [NumRegs]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

// RegName returns the conventional assembler name of a register.
// Out-of-range indexes are masked to 5 bits.
func RegName(reg uint8) string {
	return regNames[reg&0x1F]
}

// RegIndex looks up a register by its assembler name.
func RegIndex(name string) (uint8, bool) {
	for i, n := range regNames {
		if n == name {
			return uint8(i), true
		}
	}
	return 0, false
}
