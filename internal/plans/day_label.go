package plans

import (
	"fmt"
	"strconv"
	"strings"
)

// dayLabelPrefix is the fixed display template of plan day labels. The
// Bulgarian word for "day" is what the plan views render, so the wire and
// storage formats keep it.
const dayLabelPrefix = "Ден "

// DayLabel is a plan day counter, displayed as "Ден {N}". All ordering and
// arithmetic happen on the integer, the textual form exists only at the
// JSON boundary. The zero value is invalid, days start at 1.
type DayLabel int

func ParseDayLabel(s string) (DayLabel, error) {
	rest, found := strings.CutPrefix(s, dayLabelPrefix)
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayLabel, s)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayLabel, s)
	}
	return DayLabel(n), nil
}

func (d DayLabel) String() string {
	return dayLabelPrefix + strconv.Itoa(int(d))
}

func (d DayLabel) Valid() bool {
	return d >= 1
}

func (d DayLabel) Next() DayLabel {
	return d + 1
}

func (d DayLabel) Prev() DayLabel {
	return d - 1
}

func (d DayLabel) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: day %d", ErrInvalidDayLabel, int(d))
	}
	return []byte(d.String()), nil
}

func (d *DayLabel) UnmarshalText(text []byte) error {
	parsed, err := ParseDayLabel(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
