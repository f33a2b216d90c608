// Package trace provides hooks that observe instructions executed by the
// emulator.
package trace

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipsdec/emu"
	"github.com/sarchlab/mipsdec/insts"
)

// Logger logs every executed instruction at debug level.
type Logger struct {
	log logrus.FieldLogger
}

// NewLogger creates a Logger hook writing to log.
func NewLogger(log logrus.FieldLogger) *Logger {
	return &Logger{log: log}
}

// Func implements sim.Hook.
func (l *Logger) Func(ctx sim.HookCtx) {
	if ctx.Pos != emu.HookPosInstExecuted {
		return
	}

	result, ok := ctx.Item.(emu.StepResult)
	if !ok {
		return
	}

	fields := logrus.Fields{
		"word": result.Inst.Word,
		"op":   result.Inst.Op.String(),
	}
	if result.Wrote {
		fields["dest"] = insts.RegName(result.Dest)
	}
	if result.Branch {
		fields["taken"] = result.Taken
	}

	entry := l.log.WithFields(fields)
	if result.Unknown() {
		entry.Warn(result.Text)
		return
	}
	entry.Debug(result.Text)
}
