package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsdec/emu"
)

var _ = Describe("BranchUnit", func() {
	var (
		regFile    *emu.RegFile
		branchUnit *emu.BranchUnit
	)

	BeforeEach(func() {
		regFile = emu.NewRegFile()
		branchUnit = emu.NewBranchUnit(regFile)
	})

	It("should take BEQ on equal registers", func() {
		regFile.WriteReg(1, 5)
		regFile.WriteReg(2, 5)

		Expect(branchUnit.BEQ(1, 2)).To(BeTrue())
		Expect(branchUnit.BNE(1, 2)).To(BeFalse())
	})

	It("should take BNE on different registers", func() {
		regFile.WriteReg(1, 5)
		regFile.WriteReg(2, -5)

		Expect(branchUnit.BEQ(1, 2)).To(BeFalse())
		Expect(branchUnit.BNE(1, 2)).To(BeTrue())
	})

	It("should always take BEQ on the same register", func() {
		regFile.WriteReg(1, 12345)

		Expect(branchUnit.BEQ(1, 1)).To(BeTrue())
	})

	It("should not modify registers", func() {
		regFile.WriteReg(1, 1)
		before := *regFile

		branchUnit.BEQ(1, 2)
		branchUnit.BNE(1, 2)

		Expect(*regFile).To(Equal(before))
	})
})
