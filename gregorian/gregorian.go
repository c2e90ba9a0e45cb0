/*
Package gregorian implements the proleptic Gregorian calendar leaf: a
bijection between a GDate and a jdn.JDN, plus construction from
user-facing fields. The rules are applied uniformly before 1582; there is
no switchover.
*/
package gregorian

import (
	"github.com/kvassilev/calconv/calerr"
	"github.com/kvassilev/calconv/jdn"
	"github.com/kvassilev/calconv/roman"
)

// firstJanuary1AD is the JDN of 1 January AD 1 (proleptic Gregorian).
const firstJanuary1AD jdn.JDN = 1721425

// adjustment shifts every representable year onto a strictly-positive
// timeline; it must be a positive multiple of 400.
const adjustment int64 = 4400

var rules = roman.Rules{
	FirstJanuary1AD: firstJanuary1AD,
	Adjustment:      adjustment,
	Levels: []roman.CycleLevel{
		{Years: 400, Days: 365*400 + 97, Clamp: -1},
		{Years: 100, Days: 365*100 + 24, Clamp: 3},
		{Years: 4, Days: 365*4 + 1, Clamp: 24},
		{Years: 1, Days: 365, Clamp: 3},
	},
	IsLeap: isLeapShiftedYear,
}

// IsLeapYear reports whether year is a Gregorian leap year (divisible by
// 4, except century years not divisible by 400).
func IsLeapYear(year int32) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func isLeapShiftedYear(shiftedYear int64) bool {
	return (shiftedYear%4 == 0 && shiftedYear%100 != 0) || shiftedYear%400 == 0
}

// GDate is a proleptic Gregorian date: Era distinguishes BC/BCE from
// AD/CE, Year is positive (no year 0), Month is 1..12, Day is 1..31.
type GDate struct {
	Era   roman.Era
	Year  int32
	Month int32
	Day   int32
}

// New validates day/month/year/era and constructs a GDate, or returns
// calerr.InvalidInput if the fields don't name a date that exists.
func New(era roman.Era, year, month, day int32) (GDate, error) {
	if year <= 0 {
		return GDate{}, calerr.InvalidInput
	}
	shifted := roman.ShiftedYear(adjustment, era, year)
	if err := roman.ValidateDate(isLeapShiftedYear, shifted, era, year, month, day); err != nil {
		return GDate{}, err
	}
	return GDate{Era: era, Year: year, Month: month, Day: day}, nil
}

// ToJDN converts d to its Julian Day Number.
func (d GDate) ToJDN() (jdn.JDN, error) {
	return roman.ToJDN(rules, d.Era, d.Year, d.Month, d.Day)
}

// FromJDN decodes j into a GDate.
func FromJDN(j jdn.JDN) (GDate, error) {
	era, year, month, day, err := roman.FromJDN(rules, j)
	if err != nil {
		return GDate{}, err
	}
	return GDate{Era: era, Year: year, Month: month, Day: day}, nil
}
