// Package insts provides MIPS instruction definitions and decoding.
package insts

import "fmt"

// Op represents a MIPS operation.
type Op uint16

// MIPS operations.
const (
	OpUnknown Op = iota
	OpADD
	OpSUB
	OpAND
	OpOR
	OpSLT
	OpADDI
	OpANDI
	OpORI
	OpLUI
	OpLW
	OpSW
	OpBEQ
	OpBNE
)

var opNames = [...]string{
	OpUnknown: "unknown",
	OpADD:     "add",
	OpSUB:     "sub",
	OpAND:     "and",
	OpOR:      "or",
	OpSLT:     "slt",
	OpADDI:    "addi",
	OpANDI:    "andi",
	OpORI:     "ori",
	OpLUI:     "lui",
	OpLW:      "lw",
	OpSW:      "sw",
	OpBEQ:     "beq",
	OpBNE:     "bne",
}

// String returns the assembler mnemonic.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint16(o))
}

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	// FormatR is the register format, opcode == 0.
	FormatR
	// FormatI is the immediate ALU format.
	FormatI
	// FormatMem is the load/store format, base + offset.
	FormatMem
	// FormatBranch is the conditional branch format.
	FormatBranch
)

// Primary opcodes.
const (
	OpcodeSpecial uint8 = 0x00
	OpcodeBEQ     uint8 = 0x04
	OpcodeBNE     uint8 = 0x05
	OpcodeADDI    uint8 = 0x08
	OpcodeANDI    uint8 = 0x0C
	OpcodeORI     uint8 = 0x0D
	OpcodeLUI     uint8 = 0x0F
	OpcodeLW      uint8 = 0x23
	OpcodeSW      uint8 = 0x2B
)

// Function codes for OpcodeSpecial.
const (
	FunctADD uint8 = 0x20
	FunctSUB uint8 = 0x22
	FunctAND uint8 = 0x24
	FunctOR  uint8 = 0x25
	FunctSLT uint8 = 0x2A
)

// Instruction represents a decoded MIPS instruction.
type Instruction struct {
	Fields

	Word   uint32 // Raw instruction word
	Op     Op     // Operation
	Format Format // Encoding format
}

// Decoder decodes MIPS machine words into instructions.
type Decoder struct{}

// NewDecoder creates a new MIPS instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit MIPS instruction word.
// Words outside the supported set decode to OpUnknown. An R-type word with
// an unsupported function code keeps FormatR so callers can tell the two
// cases apart.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{
		Fields: Extract(word),
		Word:   word,
		Op:     OpUnknown,
		Format: FormatUnknown,
	}

	if inst.Opcode == OpcodeSpecial {
		d.decodeSpecial(inst)
		return inst
	}

	switch inst.Opcode {
	case OpcodeADDI:
		inst.Op, inst.Format = OpADDI, FormatI
	case OpcodeANDI:
		inst.Op, inst.Format = OpANDI, FormatI
	case OpcodeORI:
		inst.Op, inst.Format = OpORI, FormatI
	case OpcodeLUI:
		inst.Op, inst.Format = OpLUI, FormatI
	case OpcodeLW:
		inst.Op, inst.Format = OpLW, FormatMem
	case OpcodeSW:
		inst.Op, inst.Format = OpSW, FormatMem
	case OpcodeBEQ:
		inst.Op, inst.Format = OpBEQ, FormatBranch
	case OpcodeBNE:
		inst.Op, inst.Format = OpBNE, FormatBranch
	}

	return inst
}

// decodeSpecial decodes R-type instructions by function code.
// Format: 000000 | rs | rt | rd | shamt | funct
func (d *Decoder) decodeSpecial(inst *Instruction) {
	inst.Format = FormatR

	switch inst.Funct {
	case FunctADD:
		inst.Op = OpADD
	case FunctSUB:
		inst.Op = OpSUB
	case FunctAND:
		inst.Op = OpAND
	case FunctOR:
		inst.Op = OpOR
	case FunctSLT:
		inst.Op = OpSLT
	}
}

// String returns the assembler text of the instruction. Branches are
// rendered without the taken annotation, which depends on register state.
func (i *Instruction) String() string {
	switch i.Op {
	case OpADD, OpSUB, OpAND, OpOR, OpSLT:
		return fmt.Sprintf("%s %s, %s, %s",
			i.Op, RegName(i.Rd), RegName(i.Rs), RegName(i.Rt))
	case OpADDI:
		return fmt.Sprintf("addi %s, %s, %d", RegName(i.Rt), RegName(i.Rs), i.Imm)
	case OpANDI, OpORI:
		return fmt.Sprintf("%s %s, %s, 0x%04X",
			i.Op, RegName(i.Rt), RegName(i.Rs), i.UImm())
	case OpLUI:
		return fmt.Sprintf("lui %s, 0x%04X", RegName(i.Rt), i.UImm())
	case OpLW, OpSW:
		return fmt.Sprintf("%s %s, %d(%s)", i.Op, RegName(i.Rt), i.Imm, RegName(i.Rs))
	case OpBEQ, OpBNE:
		return fmt.Sprintf("%s %s, %s, %d", i.Op, RegName(i.Rs), RegName(i.Rt), i.Imm)
	case OpUnknown:
		if i.Format == FormatR {
			return fmt.Sprintf("Unknown R-type funct: 0x%02X", i.Funct)
		}
		return fmt.Sprintf("Unknown opcode: 0x%02X", i.Opcode)
	}

	return fmt.Sprintf("Unknown opcode: 0x%02X", i.Opcode)
}
