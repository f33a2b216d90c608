package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsdec/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have an Instruction type", func() {
		var i insts.Instruction
		Expect(i).To(BeZero())
	})

	It("should have a Decoder type", func() {
		decoder := insts.NewDecoder()
		Expect(decoder).ToNot(BeNil())
	})

	Describe("Register names", func() {
		It("should name the conventional registers", func() {
			Expect(insts.RegName(0)).To(Equal("$zero"))
			Expect(insts.RegName(8)).To(Equal("$t0"))
			Expect(insts.RegName(29)).To(Equal("$sp"))
			Expect(insts.RegName(31)).To(Equal("$ra"))
		})

		It("should look up registers by name", func() {
			idx, ok := insts.RegIndex("$s3")
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(uint8(19)))

			_, ok = insts.RegIndex("$x9")
			Expect(ok).To(BeFalse())
		})
	})
})
