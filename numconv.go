package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Status classifies the outcome of ParseUint.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusInvalidArgument
	StatusIncomplete
	StatusOverflow
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusIncomplete:
		return "incomplete"
	case StatusOverflow:
		return "overflow"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

func digitValue(c byte, base int) (int, bool) {
	var d byte
	switch {
	case '0' <= c && c <= '9':
		d = c - '0'
	case 'a' <= c && c <= 'z':
		d = c - 'a' + 10
	case 'A' <= c && c <= 'Z':
		d = c - 'A' + 10
	default:
		return 0, false
	}
	if int(d) >= base {
		return 0, false
	}
	return int(d), true
}

// ParseUint converts the maximal numeric prefix of s to a uint64 under base.
// A base of 0 auto-detects from the prefix: "0x"/"0X" is hexadecimal, a
// leading "0" is octal, anything else is decimal. An explicit base 16 also
// accepts an optional "0x"/"0X" prefix. The returned Status reports whether
// s was consumed fully (StatusSuccess), partially (StatusIncomplete, value
// still valid), or not at all (StatusFailure), whether s was empty
// (StatusInvalidArgument), or whether the magnitude exceeds the uint64 range
// (StatusOverflow, value not meaningful).
func ParseUint(s string, base int) (uint64, Status) {
	if s == "" {
		return 0, StatusInvalidArgument
	}
	i := 0
	switch {
	case base == 0:
		base = 10
		if s[0] == '0' {
			base = 8
			if len(s) >= 3 && (s[1] == 'x' || s[1] == 'X') {
				if _, ok := digitValue(s[2], 16); ok {
					base = 16
					i = 2
				}
			}
		}
	case base == 16:
		if len(s) >= 3 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			if _, ok := digitValue(s[2], 16); ok {
				i = 2
			}
		}
	case base < 2 || base > 36:
		return 0, StatusInvalidArgument
	}

	// Overflow on n*base is caught by the cutoff, overflow on the
	// following add by the wraparound check.
	cutoff := uint64(math.MaxUint64)/uint64(base) + 1

	start := i
	var n uint64
	overflow := false
	for ; i < len(s); i++ {
		d, ok := digitValue(s[i], base)
		if !ok {
			break
		}
		if n >= cutoff {
			overflow = true
		}
		n1 := n*uint64(base) + uint64(d)
		if n1 < n {
			overflow = true
		}
		n = n1
	}

	switch {
	case i == start:
		return 0, StatusFailure
	case overflow:
		return 0, StatusOverflow
	case i < len(s):
		return n, StatusIncomplete
	}
	return n, StatusSuccess
}

// ParseError describes a number token that could not be parsed.
type ParseError struct {
	Num    string
	Base   int
	Status Status
}

func (e *ParseError) Error() string {
	switch e.Status {
	case StatusOverflow:
		return e.Num + " is a too large number."
	case StatusInvalidArgument:
		return "missing number argument"
	}
	if e.Base != 0 {
		return fmt.Sprintf("%s is not a valid number. Base %d is required.", e.Num, e.Base)
	}
	return e.Num + " is not a valid number."
}

// EnsureNumber parses s under base and converts any non-success Status
// into a *ParseError suitable for a user-facing diagnostic.
func EnsureNumber(s string, base int) (uint64, error) {
	n, status := ParseUint(s, base)
	if status != StatusSuccess {
		return 0, &ParseError{Num: s, Base: base, Status: status}
	}
	return n, nil
}

// EnsureBase returns base unchanged if it is in [2, 36].
func EnsureBase(base int) (int, error) {
	if base < 2 || base > 36 {
		return 0, fmt.Errorf("Unsupported base: %d", base)
	}
	return base, nil
}

// ErrBufferSize is returned by Binary when the buffer cannot hold every
// binary digit of the value plus the terminator.
var ErrBufferSize = errors.New("buffer too small for binary representation")

// Binary writes the binary representation of x into the tail of buf, filling
// right to left, and returns the slice of digit bytes. The final byte of buf
// always holds a 0 terminator; digits occupy the positions immediately before
// it. A zero value renders as "0". No allocation is performed; a 65 byte
// buffer is sufficient for any uint64.
func Binary(x uint64, buf []byte) ([]byte, error) {
	if len(buf) == 0 {
		return nil, ErrBufferSize
	}
	end := len(buf) - 1
	buf[end] = 0
	for i := end; i > 0; i-- {
		if x%2 == 0 {
			buf[i-1] = '0'
		} else {
			buf[i-1] = '1'
		}
		x /= 2
		if x == 0 {
			return buf[i-1 : end], nil
		}
	}
	return nil, ErrBufferSize
}

// NumInfo is a parsed number paired with the base it was interpreted under
// (0 when the base was auto-detected).
type NumInfo struct {
	Num  uint64
	Base int
}

// WriteTo writes the number in all four representations on one line.
func (n *NumInfo) WriteTo(w io.Writer) (int64, error) {
	var buf [1024]byte
	bin, err := Binary(n.Num, buf[:])
	if err != nil {
		return 0, err
	}
	nn, err := fmt.Fprintf(w, "[dec]\t%d\t=\t[hex]\t%x\t[oct]\t%o\t[bin]\t%s\n",
		n.Num, n.Num, n.Num, bin)
	return int64(nn), err
}

type numJSON struct {
	Dec  uint64 `json:"dec"`
	Hex  string `json:"hex"`
	Oct  string `json:"oct"`
	Bin  string `json:"bin"`
	Base int    `json:"base,omitempty"`
}

func (n *NumInfo) MarshalJSON() ([]byte, error) {
	var buf [65]byte
	bin, err := Binary(n.Num, buf[:])
	if err != nil {
		return nil, err
	}
	return json.Marshal(numJSON{
		Dec:  n.Num,
		Hex:  strconv.FormatUint(n.Num, 16),
		Oct:  strconv.FormatUint(n.Num, 8),
		Bin:  string(bin),
		Base: n.Base,
	})
}
