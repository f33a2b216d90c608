package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/mipsdec/config"
	"github.com/sarchlab/mipsdec/emu"
)

// ErrInvalidOption is returned by AskMode for an unrecognized menu choice.
var ErrInvalidOption = errors.New("invalid option")

// ContinueFunc decides, after each instruction, whether the run goes on.
type ContinueFunc func(result emu.StepResult) bool

// All never stops the run.
func All() ContinueFunc {
	return func(emu.StepResult) bool { return true }
}

// Prompt asks on out after every instruction and stops when the answer
// starts with 'n' or 'N'. End of input also stops the run. The read blocks,
// so a cancelled context is only seen by Run once the answer arrives.
func Prompt(in *bufio.Reader, out io.Writer) ContinueFunc {
	return func(emu.StepResult) bool {
		fmt.Fprint(out, "Show next instruction? (y/n): ")

		answer, err := readAnswer(in)
		if err != nil || answer == 'n' || answer == 'N' {
			fmt.Fprintln(out, "Execution stopped by user.")
			return false
		}
		return true
	}
}

// ForMode returns the pacing policy of a display mode.
func ForMode(mode string, in *bufio.Reader, out io.Writer) (ContinueFunc, error) {
	switch mode {
	case config.ModeStep:
		return Prompt(in, out), nil
	case config.ModeAll:
		return All(), nil
	}
	return nil, fmt.Errorf("%w: mode %q", ErrInvalidOption, mode)
}

// AskMode shows the display mode menu and reads the choice.
func AskMode(in *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Choose an option:\n"+
		"1 - Show instructions one by one\n"+
		"2 - Show all instructions at once\n"+
		"Option: ")

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read option: %w", err)
	}

	switch strings.TrimSpace(line) {
	case "1":
		return config.ModeStep, nil
	case "2":
		return config.ModeAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOption, strings.TrimSpace(line))
}

// readAnswer returns the first non-space character of the next line.
func readAnswer(in *bufio.Reader) (byte, error) {
	for {
		line, err := in.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
