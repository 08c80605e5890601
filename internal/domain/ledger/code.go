package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CodePrefix identifies a document code family. Codes are the prefix followed
// by a zero-padded sequence number, e.g. PT0007, stored upper-case.
type CodePrefix string

const (
	PrefixWallet     CodePrefix = "W"
	PrefixIncome     CodePrefix = "PT"
	PrefixExpense    CodePrefix = "PC"
	PrefixTransfer   CodePrefix = "TF"
	PrefixAdjustment CodePrefix = "AD"
)

// CodeWidth is the fixed width of the numeric suffix (0001-9999)
const CodeWidth = 4

// MaxCodeSequence is the highest sequence number the fixed width can hold
const MaxCodeSequence = 9999

// String returns the prefix as a string
func (p CodePrefix) String() string {
	return string(p)
}

// Format renders a document code for the given sequence number
func (p CodePrefix) Format(seq int) string {
	return fmt.Sprintf("%s%0*d", p, CodeWidth, seq)
}

var codeSuffixPattern = regexp.MustCompile(`^[0-9]+$`)

// ParseSequence extracts the numeric suffix from a code of this prefix family.
// Returns 0 and false when the code does not belong to the family.
func (p CodePrefix) ParseSequence(code string) (int, bool) {
	code = NormalizeCode(code)
	if !strings.HasPrefix(code, string(p)) {
		return 0, false
	}
	suffix := code[len(p):]
	if len(suffix) != CodeWidth || !codeSuffixPattern.MatchString(suffix) {
		return 0, false
	}
	seq, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return seq, true
}

// NormalizeCode canonicalizes a code for storage and lookup. Codes are stored
// upper-case; lookups accept any case.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeDate expands a possibly date-only instant to the canonical
// start-of-day in UTC so inclusive range queries stay well-defined.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last instant of the given day in UTC, used for the
// inclusive upper bound of [from, to] filters.
func EndOfDay(t time.Time) time.Time {
	return NormalizeDate(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
