package trace

import (
	"fmt"
	"io"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mipsdec/emu"
	"github.com/sarchlab/mipsdec/insts"
)

// Statistics holds counters over an instruction stream.
type Statistics struct {
	Instructions uint64
	Unknown      uint64
	RegWrites    uint64
	Branches     uint64
	Taken        uint64
	PerOp        map[insts.Op]uint64
}

// Counter is a hook that accumulates Statistics.
type Counter struct {
	stats Statistics
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{stats: Statistics{PerOp: make(map[insts.Op]uint64)}}
}

// Func implements sim.Hook.
func (c *Counter) Func(ctx sim.HookCtx) {
	if ctx.Pos != emu.HookPosInstExecuted {
		return
	}

	result, ok := ctx.Item.(emu.StepResult)
	if !ok {
		return
	}

	c.stats.Instructions++
	if result.Unknown() {
		c.stats.Unknown++
	} else {
		c.stats.PerOp[result.Inst.Op]++
	}
	if result.Wrote {
		c.stats.RegWrites++
	}
	if result.Branch {
		c.stats.Branches++
		if result.Taken {
			c.stats.Taken++
		}
	}
}

// Stats returns a copy of the collected statistics.
func (c *Counter) Stats() Statistics {
	s := c.stats
	s.PerOp = make(map[insts.Op]uint64, len(c.stats.PerOp))
	for op, n := range c.stats.PerOp {
		s.PerOp[op] = n
	}
	return s
}

// Report writes a summary of the statistics.
func (s Statistics) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Instructions: %d\nUnknown: %d\nRegister writes: %d\nBranches: %d (taken %d)\n",
		s.Instructions, s.Unknown, s.RegWrites, s.Branches, s.Taken)
	if err != nil {
		return err
	}

	for op := insts.OpADD; op <= insts.OpBNE; op++ {
		if n := s.PerOp[op]; n > 0 {
			if _, err := fmt.Fprintf(w, "  %-5s %d\n", op, n); err != nil {
				return err
			}
		}
	}

	return nil
}
