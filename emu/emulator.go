// Package emu provides functional MIPS emulation.
package emu

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mipsdec/insts"
)

// HookPosInstExecuted marks the point right after an instruction has been
// executed. The hook item is the StepResult.
var HookPosInstExecuted = &sim.HookPos{Name: "InstExecuted"}

// Branch annotations appended to branch disassembly.
const (
	BranchTaken    = "(branch taken)"
	BranchNotTaken = "(branch not taken)"
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Inst is the decoded instruction.
	Inst *insts.Instruction

	// Text is the disassembly line, including the branch annotation.
	Text string

	// Branch is true for conditional branches; Taken reports the outcome.
	Branch bool
	Taken  bool

	// Wrote is true if the instruction wrote Dest.
	Wrote bool
	Dest  uint8
}

// Unknown reports whether the word did not decode to a supported
// instruction.
func (r StepResult) Unknown() bool {
	return r.Inst == nil || r.Inst.Op == insts.OpUnknown
}

// Emulator decodes MIPS words and applies them to a register file.
type Emulator struct {
	*sim.HookableBase

	regFile *RegFile
	decoder *insts.Decoder

	// Execution units
	alu        *ALU
	branchUnit *BranchUnit

	instructionCount uint64
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithRegFile runs the emulator against an existing register file.
func WithRegFile(regFile *RegFile) EmulatorOption {
	return func(e *Emulator) {
		e.regFile = regFile
	}
}

// WithHook registers a hook invoked after every executed instruction.
func WithHook(hook sim.Hook) EmulatorOption {
	return func(e *Emulator) {
		e.AcceptHook(hook)
	}
}

// NewEmulator creates a new MIPS emulator.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		HookableBase: sim.NewHookableBase(),
		regFile:      NewRegFile(),
		decoder:      insts.NewDecoder(),
	}

	for _, opt := range opts {
		opt(e)
	}

	// Units are created after options so they bind to the final regFile.
	e.alu = NewALU(e.regFile)
	e.branchUnit = NewBranchUnit(e.regFile)

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// InstructionCount returns the number of words executed, unknown ones
// included.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// Step decodes and executes a single instruction word.
func (e *Emulator) Step(word uint32) StepResult {
	return e.Execute(e.decoder.Decode(word))
}

// Execute executes an already decoded instruction. A nil instruction
// yields an unknown result and leaves the register file untouched.
func (e *Emulator) Execute(inst *insts.Instruction) StepResult {
	if inst == nil {
		return StepResult{}
	}

	// Text is rendered before execution so it reflects pre-write state.
	result := StepResult{Inst: inst, Text: inst.String()}

	switch inst.Op {
	case insts.OpADD:
		e.alu.ADD(inst.Rd, inst.Rs, inst.Rt)
		result.Wrote, result.Dest = true, inst.Rd
	case insts.OpSUB:
		e.alu.SUB(inst.Rd, inst.Rs, inst.Rt)
		result.Wrote, result.Dest = true, inst.Rd
	case insts.OpAND:
		e.alu.AND(inst.Rd, inst.Rs, inst.Rt)
		result.Wrote, result.Dest = true, inst.Rd
	case insts.OpOR:
		e.alu.OR(inst.Rd, inst.Rs, inst.Rt)
		result.Wrote, result.Dest = true, inst.Rd
	case insts.OpSLT:
		e.alu.SLT(inst.Rd, inst.Rs, inst.Rt)
		result.Wrote, result.Dest = true, inst.Rd
	case insts.OpADDI:
		e.alu.ADDI(inst.Rt, inst.Rs, inst.SImm())
		result.Wrote, result.Dest = true, inst.Rt
	case insts.OpANDI:
		e.alu.ANDI(inst.Rt, inst.Rs, inst.UImm())
		result.Wrote, result.Dest = true, inst.Rt
	case insts.OpORI:
		e.alu.ORI(inst.Rt, inst.Rs, inst.UImm())
		result.Wrote, result.Dest = true, inst.Rt
	case insts.OpLUI:
		e.alu.LUI(inst.Rt, inst.UImm())
		result.Wrote, result.Dest = true, inst.Rt
	case insts.OpLW, insts.OpSW:
		// No memory model; decode only.
	case insts.OpBEQ:
		e.annotateBranch(&result, e.branchUnit.BEQ(inst.Rs, inst.Rt))
	case insts.OpBNE:
		e.annotateBranch(&result, e.branchUnit.BNE(inst.Rs, inst.Rt))
	case insts.OpUnknown:
		// Reported through Text only.
	}

	e.instructionCount++

	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    HookPosInstExecuted,
		Item:   result,
	})

	return result
}

func (e *Emulator) annotateBranch(result *StepResult, taken bool) {
	result.Branch = true
	result.Taken = taken
	if taken {
		result.Text += " " + BranchTaken
	} else {
		result.Text += " " + BranchNotTaken
	}
}
