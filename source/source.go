// Package source turns text lines of '0'/'1' characters into MIPS
// instruction words.
//
// Each line must hold exactly 32 binary digits once whitespace is removed,
// most significant bit first. A line containing any other character is a
// fatal fault that ends the run; a line with the wrong number of digits is
// skipped.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// WordBits is the number of binary digits in an instruction line.
const WordBits = 32

// Sentinel errors for the two fault kinds. A *LineError unwraps to one of
// them.
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrWrongBitCount    = errors.New("wrong bit count")
)

// FaultKind classifies a malformed line.
type FaultKind uint8

// Fault kinds.
const (
	// InvalidCharacter is fatal: it stops the run.
	InvalidCharacter FaultKind = iota + 1
	// WrongBitCount is skippable.
	WrongBitCount
)

// LineError describes a malformed input line.
type LineError struct {
	Line int       // 1-based line number, 0 when parsed standalone
	Kind FaultKind // Fault classification
	Char rune      // Offending character for InvalidCharacter
	Bits int       // Digits found for WrongBitCount
}

// Error implements error.
func (e *LineError) Error() string {
	var msg string
	switch e.Kind {
	case InvalidCharacter:
		msg = fmt.Sprintf("invalid character: %c", e.Char)
	default:
		msg = fmt.Sprintf("invalid instruction, must contain exactly %d bits", WordBits)
	}

	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Unwrap returns the sentinel for the fault kind.
func (e *LineError) Unwrap() error {
	if e.Kind == InvalidCharacter {
		return ErrInvalidCharacter
	}
	return ErrWrongBitCount
}

// Fatal reports whether the fault must stop the run.
func (e *LineError) Fatal() bool {
	return e.Kind == InvalidCharacter
}

// IsFatal reports whether err stops a run. Errors that are not line faults
// (such as read failures) are fatal.
func IsFatal(err error) bool {
	var lineErr *LineError
	if errors.As(err, &lineErr) {
		return lineErr.Fatal()
	}
	return err != nil
}

// ParseLine converts one text line into an instruction word.
func ParseLine(line string) (uint32, error) {
	var (
		value uint32
		bits  int
	)

	for _, c := range line {
		if unicode.IsSpace(c) {
			continue
		}
		if c != '0' && c != '1' {
			return 0, &LineError{Kind: InvalidCharacter, Char: c}
		}
		value = value<<1 | uint32(c-'0')
		bits++
	}

	if bits != WordBits {
		return 0, &LineError{Kind: WrongBitCount, Bits: bits}
	}

	return value, nil
}

// Word is an instruction word together with the line it came from.
type Word struct {
	Line  int
	Value uint32
}

// Reader reads instruction words line by line. Lines have no length
// limit; an overlong line of digits is a wrong bit count like any other.
type Reader struct {
	in   *bufio.Reader
	line int
	done bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(r)}
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next word. Malformed lines are returned as *LineError
// with Line set; the caller decides whether to continue. At the end of
// input Next returns io.EOF.
func (r *Reader) Next() (Word, error) {
	if r.done {
		return Word{}, io.EOF
	}

	text, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return Word{}, fmt.Errorf("failed to read instructions: %w", err)
		}
		r.done = true
		if text == "" {
			return Word{}, io.EOF
		}
	}

	r.line++

	value, err := ParseLine(text)
	if err != nil {
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			lineErr.Line = r.line
		}
		return Word{Line: r.line}, err
	}

	return Word{Line: r.line, Value: value}, nil
}
