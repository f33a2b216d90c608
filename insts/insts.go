// Package insts provides MIPS instruction definitions and decoding.
//
// This package implements decoding of 32-bit MIPS machine words into
// structured instruction representations. It supports a small subset:
//   - R-type ALU: ADD, SUB, AND, OR, SLT
//   - I-type ALU: ADDI, ANDI, ORI, LUI
//   - Memory (decode only): LW, SW
//   - Conditional branches: BEQ, BNE
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x20020005) // ADDI $v0, $zero, 5
//	fmt.Printf("Op: %v, Rt: %d, Rs: %d, Imm: %d\n", inst.Op, inst.Rt, inst.Rs, inst.Imm)
package insts
