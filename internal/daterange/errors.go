package daterange

import (
	"fmt"
	"time"
)

// InvalidDateError indicates that an explicit from/to string failed
// calendar-date parsing.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %q (expected YYYY-MM-DD)", e.Input)
}

// InvertedRangeError indicates an explicit range whose start falls after its
// end. The bounds are never swapped silently.
type InvertedRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("inverted range: start %s is after end %s",
		e.Start.Format(dateLayout), e.End.Format(dateLayout))
}
