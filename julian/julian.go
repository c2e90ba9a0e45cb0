/*
Package julian implements the proleptic Julian calendar leaf. It shares
its cycle-peeling structure with package gregorian (see package roman)
and differs only in its epoch, its year-shift constant, and its simpler
leap rule (every fourth year, no century correction).
*/
package julian

import (
	"github.com/kvassilev/calconv/calerr"
	"github.com/kvassilev/calconv/jdn"
	"github.com/kvassilev/calconv/roman"
)

// firstJanuary1AD is the JDN of 1 January AD 1 (proleptic Julian); it
// differs from the Gregorian epoch by two days at this point in history.
const firstJanuary1AD jdn.JDN = 1721423

// adjustment must be a positive multiple of 4.
const adjustment int64 = 4712

var rules = roman.Rules{
	FirstJanuary1AD: firstJanuary1AD,
	Adjustment:      adjustment,
	Levels: []roman.CycleLevel{
		{Years: 4, Days: 365*4 + 1, Clamp: -1},
		{Years: 1, Days: 365, Clamp: 3},
	},
	IsLeap: isLeapShiftedYear,
}

// IsLeapYear reports whether year is a Julian leap year (every year
// divisible by 4).
func IsLeapYear(year int32) bool {
	return year%4 == 0
}

func isLeapShiftedYear(shiftedYear int64) bool {
	return shiftedYear%4 == 0
}

// JDate is a proleptic Julian date.
type JDate struct {
	Era   roman.Era
	Year  int32
	Month int32
	Day   int32
}

// New validates day/month/year/era and constructs a JDate.
func New(era roman.Era, year, month, day int32) (JDate, error) {
	if year <= 0 {
		return JDate{}, calerr.InvalidInput
	}
	shifted := roman.ShiftedYear(adjustment, era, year)
	if err := roman.ValidateDate(isLeapShiftedYear, shifted, era, year, month, day); err != nil {
		return JDate{}, err
	}
	return JDate{Era: era, Year: year, Month: month, Day: day}, nil
}

// ToJDN converts d to its Julian Day Number.
func (d JDate) ToJDN() (jdn.JDN, error) {
	return roman.ToJDN(rules, d.Era, d.Year, d.Month, d.Day)
}

// FromJDN decodes j into a JDate.
func FromJDN(j jdn.JDN) (JDate, error) {
	era, year, month, day, err := roman.FromJDN(rules, j)
	if err != nil {
		return JDate{}, err
	}
	return JDate{Era: era, Year: year, Month: month, Day: day}, nil
}
