package forwarding

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"logistics/internal/pkg/errs"
)

var orderNumberPattern = regexp.MustCompile(`^(\d+)/(\d+)/(\d+)$`)

// OrderNumber is the human order number NNNN/MM/YYYY.
type OrderNumber struct {
	seq   int
	month int
	year  int
}

// ParseOrderNumber reads a stored number. Only the leading sequence matters for
// numbering; month and year are kept for display.
func ParseOrderNumber(s string) (OrderNumber, error) {
	m := orderNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match NNNN/MM/YYYY", s))
	}
	seq, err := strconv.Atoi(m[1])
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return OrderNumber{seq: seq, month: month, year: year}, nil
}

// HighestOrderNumber returns the number with the greatest sequence, or nil when
// none of the inputs parse.
func HighestOrderNumber(numbers []string) *OrderNumber {
	var highest *OrderNumber
	for _, s := range numbers {
		n, err := ParseOrderNumber(s)
		if err != nil {
			continue
		}
		if highest == nil || n.seq > highest.seq {
			highest = &n
		}
	}
	return highest
}

// NextOrderNumber issues the number following highest within the bucket of now.
// The caller is responsible for passing the highest number of that bucket.
func NextOrderNumber(highest *OrderNumber, now time.Time) OrderNumber {
	seq := 1
	if highest != nil {
		seq = highest.seq + 1
	}
	return OrderNumber{seq: seq, month: int(now.Month()), year: now.Year()}
}

// MonthBucket returns the creation-time range [from, to) that shares a number sequence with t.
func MonthBucket(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}

func (n OrderNumber) Sequence() int { return n.seq }
func (n OrderNumber) Month() int    { return n.month }
func (n OrderNumber) Year() int     { return n.year }

func (n OrderNumber) String() string {
	return fmt.Sprintf("%04d/%02d/%04d", n.seq, n.month, n.year)
}
