package parser

import (
	"strings"

	"github.com/pkg/errors"
)

// FilePrefix marks the argument that names the output file.
const FilePrefix = "file:"

// Errors returned by Classify and ParseTime, recoverable with errors.Cause.
var (
	ErrMissingOutputFile = errors.New("file:<filename> argument was not specified")
	ErrNoTimesSpecified  = errors.New("no times were specified")
	ErrInvalidCharacter  = errors.New("invalid character")
	ErrHourOutOfRange    = errors.New("hour is > 23")
	ErrMinuteOutOfRange  = errors.New("minute is > 59")
)

// Invocation is the classified command line: one destination and the
// time specifications in the order given.
type Invocation struct {
	FileName string
	Times    []string
}

// Classify splits args into the destination file and time specifications.
// When several file: arguments are given the last one wins.
func Classify(args []string) (*Invocation, error) {
	inv := &Invocation{}
	found := false
	for _, a := range args {
		if strings.HasPrefix(a, FilePrefix) {
			inv.FileName = a[len(FilePrefix):]
			found = true
			continue
		}
		inv.Times = append(inv.Times, a)
	}

	if !found {
		return nil, ErrMissingOutputFile
	}
	if len(inv.Times) == 0 {
		return nil, ErrNoTimesSpecified
	}
	return inv, nil
}

// Clock is a parsed time of day.
type Clock struct {
	Hour, Minute int
}

// Minutes returns the minute of day, 0-1439 for a valid Clock.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

const iNF = 100

// ParseTime parses "h", "h:m" or "h.m" into a Clock.
// Hour = Digits [Sep Minute]
// Sep  = ":" | "." (repeated separators are ignored)
// Fields are range checked after the whole string has been scanned, an
// invalid character fails as soon as it is seen.
func ParseTime(s string) (Clock, error) {
	var c Clock
	hrs := true
	for _, r := range s {
		if r == ':' || r == '.' {
			hrs = false
			continue
		}
		if r < '0' || '9' < r {
			return Clock{}, errors.Wrapf(ErrInvalidCharacter, "'%c' in parameter '%s'", r, s)
		}
		if hrs {
			c.Hour = accumulate(c.Hour, r)
		} else {
			c.Minute = accumulate(c.Minute, r)
		}
	}

	if c.Hour > 23 {
		return Clock{}, errors.Wrapf(ErrHourOutOfRange, "parameter '%s'", s)
	}
	if c.Minute > 59 {
		return Clock{}, errors.Wrapf(ErrMinuteOutOfRange, "parameter '%s'", s)
	}
	return c, nil
}

// accumulate appends a digit, saturating at iNF.
func accumulate(acc int, r rune) int {
	acc = acc*10 + int(r-'0')
	if acc > iNF {
		acc = iNF
	}
	return acc
}
