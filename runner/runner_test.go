package runner_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipsdec/console"
	"github.com/sarchlab/mipsdec/emu"
	"github.com/sarchlab/mipsdec/runner"
	"github.com/sarchlab/mipsdec/source"
)

const (
	addAtZeroZero = "000000 00000 00000 00001 00000 100000" // add $at, $zero, $zero
	addiV0At5     = "001000 00001 00010 0000000000000101"   // addi $v0, $at, 5
	beqAtAt4      = "000100 00001 00001 0000000000000100"   // beq $at, $at, 4
)

var _ = Describe("Runner", func() {
	var (
		out    *bytes.Buffer
		diag   *bytes.Buffer
		log    *logrus.Logger
		newRun func(opts ...runner.Option) *runner.Runner
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		diag = &bytes.Buffer{}
		log = logrus.New()
		log.SetOutput(diag)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

		newRun = func(opts ...runner.Option) *runner.Runner {
			base := []runner.Option{
				runner.WithPrinter(console.NewPrinter(out,
					console.WithRegisters(false), console.WithColor(false))),
				runner.WithLogger(log),
			}
			return runner.New(append(base, opts...)...)
		}
	})

	It("should execute every line and carry register state", func() {
		r := newRun()

		summary, err := r.Run(context.Background(),
			strings.NewReader(addAtZeroZero+"\n"+addiV0At5+"\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(summary).To(Equal(runner.Summary{Lines: 2, Executed: 2}))
		Expect(r.Emulator().RegFile().ReadReg(2)).To(Equal(int32(5)))
		Expect(out.String()).To(Equal(
			"Instruction: 0000 0000 0000 0000 0000 1000 0010 0000\n" +
				"add $at, $zero, $zero\n" +
				"Instruction: 0010 0000 0010 0010 0000 0000 0000 0101\n" +
				"addi $v0, $at, 5\n"))
	})

	It("should skip a 31-digit line and continue", func() {
		r := newRun()

		summary, err := r.Run(context.Background(),
			strings.NewReader(addiV0At5[1:]+"\n"+addiV0At5+"\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Skipped).To(Equal(1))
		Expect(summary.Executed).To(Equal(1))
		Expect(diag.String()).To(ContainSubstring("line 1: invalid instruction, must contain exactly 32 bits"))
		Expect(diag.String()).To(ContainSubstring("line=1"))
	})

	It("should skip an overlong line of digits and continue", func() {
		r := newRun()

		summary, err := r.Run(context.Background(),
			strings.NewReader(strings.Repeat("0", 70000)+"\n"+addiV0At5+"\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Lines).To(Equal(2))
		Expect(summary.Skipped).To(Equal(1))
		Expect(summary.Executed).To(Equal(1))
		Expect(r.Emulator().RegFile().ReadReg(2)).To(Equal(int32(5)))
	})

	It("should stop at a line containing an invalid character", func() {
		r := newRun()

		summary, err := r.Run(context.Background(),
			strings.NewReader(addiV0At5+"\n"+"0010x\n"+addiV0At5+"\n"))

		Expect(source.IsFatal(err)).To(BeTrue())
		Expect(err).To(MatchError("line 2: invalid character: x"))
		Expect(summary.Executed).To(Equal(1))
		Expect(summary.Lines).To(Equal(2))
	})

	It("should report unknown words and keep going", func() {
		r := newRun()

		summary, err := r.Run(context.Background(),
			strings.NewReader(strings.Repeat("1", 32)+"\n"+addiV0At5+"\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Executed).To(Equal(2))
		Expect(out.String()).To(ContainSubstring("Unknown opcode: 0x3F\n"))
	})

	It("should stop when the pacing policy says so", func() {
		calls := 0
		r := newRun(runner.WithContinue(func(emu.StepResult) bool {
			calls++
			return false
		}))

		summary, err := r.Run(context.Background(),
			strings.NewReader(beqAtAt4+"\n"+addiV0At5+"\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(1))
		Expect(summary.Stopped).To(BeTrue())
		Expect(summary.Executed).To(Equal(1))
	})

	It("should stop on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		summary, err := newRun().Run(ctx, strings.NewReader(addiV0At5+"\n"))

		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(summary.Executed).To(BeZero())
	})

	It("should print registers when the printer is configured to", func() {
		r := runner.New(
			runner.WithPrinter(console.NewPrinter(out, console.WithColor(false))),
			runner.WithLogger(log),
		)

		_, err := r.Run(context.Background(), strings.NewReader(addiV0At5+"\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("Register state:\n"))
	})

	Describe("Prompt", func() {
		It("should continue on yes and stop on no", func() {
			prompts := &bytes.Buffer{}
			in := bufio.NewReader(strings.NewReader("y\n\n  N\n"))
			r := newRun(runner.WithContinue(runner.Prompt(in, prompts)))

			summary, err := r.Run(context.Background(),
				strings.NewReader(addAtZeroZero+"\n"+addiV0At5+"\n"+beqAtAt4+"\n"))

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Executed).To(Equal(2))
			Expect(summary.Stopped).To(BeTrue())
			Expect(strings.Count(prompts.String(), "Show next instruction? (y/n): ")).To(Equal(2))
			Expect(prompts.String()).To(HaveSuffix("Execution stopped by user.\n"))
		})

		It("should stop at end of input", func() {
			prompts := &bytes.Buffer{}
			next := runner.Prompt(bufio.NewReader(strings.NewReader("")), prompts)

			Expect(next(emu.StepResult{})).To(BeFalse())
		})
	})

	Describe("AskMode", func() {
		DescribeTable("should map menu choices to modes",
			func(input, mode string) {
				menu := &bytes.Buffer{}
				got, err := runner.AskMode(bufio.NewReader(strings.NewReader(input)), menu)

				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(mode))
				Expect(menu.String()).To(HaveSuffix("Option: "))
			},
			Entry("one by one", "1\n", "step"),
			Entry("all at once", "2\n", "all"),
			Entry("without newline", " 2", "all"),
		)

		It("should reject other choices", func() {
			_, err := runner.AskMode(bufio.NewReader(strings.NewReader("3\n")), &bytes.Buffer{})

			Expect(errors.Is(err, runner.ErrInvalidOption)).To(BeTrue())
		})
	})

	Describe("ForMode", func() {
		It("should reject the ask mode", func() {
			_, err := runner.ForMode("ask", bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})

			Expect(errors.Is(err, runner.ErrInvalidOption)).To(BeTrue())
		})

		It("should never stop in all mode", func() {
			next, err := runner.ForMode("all", nil, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(next(emu.StepResult{})).To(BeTrue())
		})
	})
})
