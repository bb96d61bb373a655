package campaign

import "fmt"

// Date is a calendar day with no time-of-day or zone. The zero value is not
// a valid date.
type Date struct {
	Day   int
	Month int
	Year  int
}

var monthDays = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the length of month in year, applying the Gregorian
// leap-year rule to February. It returns 0 for a month outside [1,12].
func DaysIn(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// Valid reports whether d names an existing calendar day.
func (d Date) Valid() bool {
	return d.Day >= 1 && d.Day <= DaysIn(d.Month, d.Year)
}

// Compare orders dates lexicographically by year, month, day. It returns a
// negative value when d is earlier than o, zero when equal, positive when
// later.
func (d Date) Compare(o Date) int {
	if d.Year != o.Year {
		return d.Year - o.Year
	}
	if d.Month != o.Month {
		return d.Month - o.Month
	}
	return d.Day - o.Day
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// String formats the date as dd-mm-yyyy. Day and month are zero-padded to
// two digits; the year is printed as-is.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%d", d.Day, d.Month, d.Year)
}
