package schedule

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DayCount is the number of days in the generated window.
	DayCount = 7
	// MinsPerDay is the offset between consecutive days.
	MinsPerDay = 1440
	// MinsPerHour scales values in Legacy mode.
	MinsPerHour = 60
	// MaxValues caps the number of offsets in one file.
	MaxValues = 56
)

// Errors returned by this package, recoverable with errors.Cause.
var (
	ErrTooManyValues = errors.New("too many values")
	ErrFileWrite     = errors.New("file write failed")
	ErrMalformed     = errors.New("malformed value list")
	ErrMismatch      = errors.New("file content does not match generated values")
)

// Scale selects how a minute-of-day value is placed within its day.
type Scale int

const (
	// PerDay places a value at day*MinsPerDay + value.
	PerDay Scale = iota
	// Legacy multiplies the value by MinsPerHour before adding the day
	// offset, matching files produced by older generators.
	Legacy
)

func (s Scale) String() string {
	if s == Legacy {
		return "legacy"
	}
	return "per-day"
}

func (s Scale) offset(day, value int) int {
	if s == Legacy {
		return day*MinsPerDay + MinsPerHour*value
	}
	return day*MinsPerDay + value
}

// Generate expands minute-of-day values over DayCount days, days outer and
// values inner. fileName only appears in the TooManyValues error.
func Generate(values []int, fileName string, scale Scale) ([]int, error) {
	offsets := make([]int, 0, DayCount*len(values))
	for day := 0; day < DayCount; day++ {
		for _, v := range values {
			offsets = append(offsets, scale.offset(day, v))
			if len(offsets) > MaxValues {
				return nil, errors.Wrapf(ErrTooManyValues, "count is %d, max is %d, file is %s", len(offsets), MaxValues, fileName)
			}
		}
	}
	return offsets, nil
}

// Format renders offsets as "[v0,v1,...,vn]".
func Format(offsets []int) string {
	var b strings.Builder
	b.WriteString("[")
	for i, o := range offsets {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(o))
	}
	b.WriteString("]")
	return b.String()
}

// Parse reads a list produced by Format.
func Parse(s string) ([]int, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, errors.Wrapf(ErrMalformed, "missing brackets in '%s'", s)
	}
	body := s[1 : len(s)-1]
	if body == "" {
		return []int{}, nil
	}

	fields := strings.Split(body, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "value '%s'", f)
		}
		values = append(values, v)
	}
	return values, nil
}

// WriteFile creates or truncates path and writes the formatted offsets as
// its whole content. It returns the content written.
func WriteFile(path string, offsets []int) (string, error) {
	content := Format(offsets)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(ErrFileWrite, "%s: %v", path, err)
	}
	return content, nil
}

// Verify reads path back and checks it holds exactly offsets.
func Verify(path string, offsets []int) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	got, err := Parse(string(b))
	if err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	if len(got) != len(offsets) {
		return errors.Wrapf(ErrMismatch, "%s holds %d values, expected %d", path, len(got), len(offsets))
	}
	for i := range got {
		if got[i] != offsets[i] {
			return errors.Wrapf(ErrMismatch, "%s value %d is %d, expected %d", path, i, got[i], offsets[i])
		}
	}
	return nil
}
