/*
Package convert implements the conversion orchestrator: it composes one
calendar leaf's forward map with another's inverse map through the shared
jdn.JDN pivot, and lowers the result (or the first error encountered) into
GenericDate, the uniform output record every caller — CLI or library —
consumes.
*/
package convert

import (
	"github.com/kvassilev/calconv/calerr"
	"github.com/kvassilev/calconv/gregorian"
	"github.com/kvassilev/calconv/hebrew"
	"github.com/kvassilev/calconv/jdn"
	"github.com/kvassilev/calconv/julian"
	"github.com/kvassilev/calconv/roman"
)

// Calendar names a supported calendar by the strings a caller types.
type Calendar string

const (
	Gregorian Calendar = "Gregorian"
	Julian    Calendar = "Julian"
	Hebrew    Calendar = "Hebrew"
)

// GenericDate is the uniform output record: on failure the numeric fields
// are zero and exactly one of Valid/NotOverflow is false. MonthName is a
// display index, not the internal Hebrew month ordinal (see
// package hebrew's DisplayMonth); Era is always false for Hebrew output.
type GenericDate struct {
	Valid       bool
	NotOverflow bool
	Era         bool
	Year        int32
	MonthName   int32
	Day         int32
}

func failed(err error) GenericDate {
	return GenericDate{
		Valid:       !calerr.Is(err, calerr.InvalidInput),
		NotOverflow: !calerr.Is(err, calerr.Overflow),
	}
}

// Convert parses (day, monthName, year, eraName) as a date in the from
// calendar, pivots it through a JDN, and decodes that JDN into the to
// calendar. era is ignored for Hebrew input and output.
func Convert(from, to Calendar, day int32, monthName string, year int32, eraName string) GenericDate {
	j, err := toJDN(from, day, monthName, year, eraName)
	if err != nil {
		return failed(err)
	}
	return fromJDN(to, j)
}

func toJDN(cal Calendar, day int32, monthName string, year int32, eraName string) (jdn.JDN, error) {
	switch cal {
	case Gregorian:
		era, err := roman.ParseEra(eraName)
		if err != nil {
			return 0, err
		}
		month, err := roman.ParseMonth(monthName)
		if err != nil {
			return 0, err
		}
		date, err := gregorian.New(era, year, month, day)
		if err != nil {
			return 0, err
		}
		return date.ToJDN()

	case Julian:
		era, err := roman.ParseEra(eraName)
		if err != nil {
			return 0, err
		}
		month, err := roman.ParseMonth(monthName)
		if err != nil {
			return 0, err
		}
		date, err := julian.New(era, year, month, day)
		if err != nil {
			return 0, err
		}
		return date.ToJDN()

	case Hebrew:
		month, err := hebrew.ParseMonth(year, monthName)
		if err != nil {
			return 0, err
		}
		date, err := hebrew.New(year, month, day)
		if err != nil {
			return 0, err
		}
		return date.ToJDN()

	default:
		return 0, calerr.InvalidInput
	}
}

func fromJDN(cal Calendar, j jdn.JDN) GenericDate {
	switch cal {
	case Gregorian:
		date, err := gregorian.FromJDN(j)
		if err != nil {
			return failed(err)
		}
		return GenericDate{
			Valid: true, NotOverflow: true,
			Era: bool(date.Era), Year: date.Year, MonthName: date.Month, Day: date.Day,
		}

	case Julian:
		date, err := julian.FromJDN(j)
		if err != nil {
			return failed(err)
		}
		return GenericDate{
			Valid: true, NotOverflow: true,
			Era: bool(date.Era), Year: date.Year, MonthName: date.Month, Day: date.Day,
		}

	case Hebrew:
		date, err := hebrew.FromJDN(j)
		if err != nil {
			return failed(err)
		}
		return GenericDate{
			Valid: true, NotOverflow: true,
			Era: false, Year: date.Year, MonthName: hebrew.DisplayMonth(date.Year, date.Month), Day: date.Day,
		}

	default:
		return failed(calerr.InvalidInput)
	}
}
