/*
Package roman holds the arithmetic shared by the Gregorian and Julian
codecs: both date a day within the proleptic Roman month table against a
shifted, strictly-positive year on a single linear timeline, and both peel
that timeline back into nested year-cycles to invert a JDN into a year and
day-of-year. The two codecs differ only in their cycle table, their epoch
constants and their leap-year predicate, all supplied here as a Rules
value.
*/
package roman

import (
	"github.com/kvassilev/calconv/calerr"
	"github.com/kvassilev/calconv/jdn"
)

// Era distinguishes the two eras of a Roman calendar date. false is the
// first era (BC/BCE), true is the second era (AD/CE). There is no year 0:
// first-era year 1 immediately precedes second-era year 1.
type Era bool

const (
	EraFirst  Era = false
	EraSecond Era = true
)

// MonthLengths is the Roman civil calendar's month table, January first,
// with February fixed at 28; callers add the leap day explicitly.
var MonthLengths = [12]int32{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// CycleLevel is one level of a nested year-cycle: Years years span exactly
// Days days. Clamp bounds the quotient taken at this level during JDN
// decoding so that the last day of the outer cycle (which the leap rule
// treats as belonging to an extra inner cycle) doesn't spill into a
// phantom next cycle. Clamp is -1 for the outermost, unclamped level.
type CycleLevel struct {
	Years int64
	Days  int64
	Clamp int64
}

// Rules bundles everything that differs between the Gregorian and Julian
// codecs: the epoch, the shift that keeps every representable year
// strictly positive, the nested cycle table (outermost level first, the
// innermost always {Years: 1, Days: 365, Clamp: 3}), and the leap
// predicate over a shifted year.
type Rules struct {
	FirstJanuary1AD jdn.JDN
	Adjustment      int64
	Levels          []CycleLevel
	IsLeap          func(shiftedYear int64) bool
}

// MinDay is the constant FIRST_JANUARY_1_AD - (Adjustment/Levels[0].Years)*Levels[0].Days,
// the smallest JDN this ruleset can decode or encode.
func (r Rules) MinDay() jdn.JDN {
	outer := r.Levels[0]
	return r.FirstJanuary1AD - jdn.JDN((r.Adjustment/outer.Years)*outer.Days)
}

func monthLength(month int32, leap bool) int32 {
	if month == 2 && leap {
		return 29
	}
	return MonthLengths[month-1]
}

// ValidateDate checks a day/month/year/era combination is an in-calendar
// date under the given leap predicate, independent of range.
func ValidateDate(isLeap func(shiftedYear int64) bool, shiftedYear int64, era Era, year, month, day int32) error {
	if year <= 0 || month <= 0 || month > 12 || day <= 0 {
		return calerr.InvalidInput
	}
	if day > monthLength(month, isLeap(shiftedYear)) {
		return calerr.InvalidInput
	}
	return nil
}

// ShiftedYear maps an era/year onto the ruleset's strictly-increasing
// linear timeline: second-era years increase from Adjustment+1 upward,
// first-era years decrease from Adjustment toward (and through) zero.
func ShiftedYear(adjustment int64, era Era, year int32) int64 {
	if era == EraSecond {
		return adjustment + int64(year)
	}
	return adjustment - (int64(year) - 1)
}

// ToJDN encodes a validated era/year/month/day under r into a JDN.
func ToJDN(r Rules, era Era, year, month, day int32) (jdn.JDN, error) {
	if era == EraFirst && int64(year) > r.Adjustment {
		return 0, calerr.Overflow
	}

	shifted := ShiftedYear(r.Adjustment, era, year)
	if err := ValidateDate(r.IsLeap, shifted, era, year, month, day); err != nil {
		return 0, err
	}

	yearsLeft := shifted - 1
	var yearDays int64
	for _, lvl := range r.Levels {
		q := yearsLeft / lvl.Years
		yearDays += q * lvl.Days
		yearsLeft -= q * lvl.Years
	}

	leap := r.IsLeap(shifted)
	var monthDays int32
	for m := int32(1); m < month; m++ {
		monthDays += monthLength(m, leap)
	}

	return r.MinDay() + jdn.JDN(yearDays) + jdn.JDN(monthDays) + jdn.JDN(day-1), nil
}

// FromJDN decodes a JDN under r back into an era/year/month/day.
func FromJDN(r Rules, j jdn.JDN) (era Era, year, month, day int32, err error) {
	minDay := r.MinDay()
	if j < minDay {
		return false, 0, 0, 0, calerr.Overflow
	}

	daysLeft := int64(j - minDay)

	var shifted int64 = 1
	for _, lvl := range r.Levels {
		q := daysLeft / lvl.Days
		if lvl.Clamp >= 0 && q > lvl.Clamp {
			q = lvl.Clamp
		}
		daysLeft -= q * lvl.Days
		shifted += q * lvl.Years
	}

	leap := r.IsLeap(shifted)
	m := int32(1)
	for {
		l := int64(monthLength(m, leap))
		if daysLeft < l {
			break
		}
		daysLeft -= l
		m++
	}

	final := shifted - r.Adjustment
	if final <= 0 {
		era = EraFirst
		year = int32(1 - final)
	} else {
		era = EraSecond
		year = int32(final)
	}

	return era, year, m, int32(daysLeft) + 1, nil
}
