/*
Package hebrew implements the traditional Hebrew calendar leaf: a bijection
between an HDate and a jdn.JDN built on the molad (mean lunar conjunction)
and the four dechiyot (postponement rules) that keep 1 Tishrei off the days
the sages barred it from falling on. Internal month numbering always starts
at Tishrei (1); package monthname.go handles the Adar I/Adar II display
split and the name aliases a caller actually types.
*/
package hebrew

import (
	"math"
	"math/big"

	"github.com/kvassilev/calconv/calerr"
	"github.com/kvassilev/calconv/jdn"
)

// dayLengthParts is the number of "parts" (1/1080 hour) in a day.
const dayLengthParts int64 = 24 * 60 * 18

// moladLengthParts is the mean length of a lunar month, in parts.
const moladLengthParts int64 = 765433

// monthsPerCycle is the number of lunar months in the 19-year Metonic
// cycle: 12 per common year, 13 per each of the cycle's 7 leap years.
const monthsPerCycle int64 = 19*12 + 7

// moladTishrei1Parts is the molad of Tishrei of year 1, reached by walking
// back from the molad of Tishrei 5758 (a well-attested reference point) a
// whole number of 19-year cycles.
var moladTishrei1Parts = func() int64 {
	moladTishrei5758 := int64(2450722)*dayLengthParts + 23889
	return moladTishrei5758 - (5758/19)*monthsPerCycle*moladLengthParts
}()

// commonYearMonthLengths and leapYearMonthLengths assume Cheshvan and
// Kislev are both deficient (29 days); postponementAdder lengthens one or both to
// reconcile the assumed length with the molad-driven actual year length.
var commonYearMonthLengths = [12]int32{30, 29, 29, 29, 30, 29, 30, 29, 30, 29, 30, 29}
var leapYearMonthLengths = [13]int32{30, 29, 29, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29}

// moladNumLength walks one 19-year cycle: 13 months in each of the cycle's
// 7 leap years, 12 in the other 12. moladNumLengthSum is its running total,
// used to locate a year within a cycle from an accumulated molad residue.
var moladNumLength = [19]int64{12, 12, 13, 12, 12, 13, 12, 13, 12, 12, 13, 12, 12, 13, 12, 12, 13, 12, 13}
var moladNumLengthSum = [19]int64{12, 24, 37, 49, 61, 74, 86, 99, 111, 123, 136, 148, 160, 173, 185, 197, 210, 222, 235}

// IsLeapYear reports whether Hebrew year y carries a 13th month (Adar I):
// true for the 7 years of the 19-year cycle at positions 3, 6, 8, 11, 14,
// 17 and 19 (0 mod 19).
func IsLeapYear(y int32) bool {
	switch ((y % 19) + 19) % 19 {
	case 3, 6, 8, 11, 14, 17, 0:
		return true
	default:
		return false
	}
}

func monthLengths(leap bool) ([]int32, int32) {
	if leap {
		return leapYearMonthLengths[:], 13
	}
	return commonYearMonthLengths[:], 12
}

// postponementAdder returns the per-month day addition that stretches
// Cheshvan and/or Kislev to reconcile a year's assumed (fully deficient)
// length with its actual molad-driven length (the distance between this
// year's and next year's 1 Tishrei): one extra day lengthens Kislev, two
// lengthen Cheshvan and Kislev.
func postponementAdder(yearLength int64, leap bool) []int32 {
	n, extra := 12, yearLength-353
	if leap {
		n, extra = 13, yearLength-383
	}
	adder := make([]int32, n)
	switch extra {
	case 1:
		adder[2] = 1
	case 2:
		adder[1] = 1
		adder[2] = 1
	}
	return adder
}

// tishrei1 applies the four dechiyot to the molad of Tishrei of year year
// (given in parts) and returns the postponement applied (0, 1 or 2) and
// the resulting JDN of 1 Tishrei.
func tishrei1(moladParts int64, year int32) (postponement int64, tishreiJDN int64) {
	moladDay := moladParts / dayLengthParts
	timeParts := moladParts % dayLengthParts
	weekday := (moladDay + 2) % 7

	switch {
	case weekday == 0 || weekday == 3 || weekday == 5:
		// A: Lo ADU Rosh — Tishrei 1 never falls on Sunday, Wednesday or Friday.
		postponement = 1
	case timeParts > dayLengthParts/2:
		// B: Molad Zaken — molad after noon pushes to the next day,
		// and again if that day is itself barred by rule A.
		postponement = 1
		if weekday == 6 || weekday == 2 || weekday == 4 {
			postponement++
		}
	case timeParts > 3*60*18+204 && weekday == 2 && !IsLeapYear(year):
		// C: GaTaRaD, a common year.
		postponement = 2
	case timeParts > 9*60*18+589 && weekday == 1 && IsLeapYear(year-1):
		// D: BeTuTaKPaT, the year after a leap year.
		postponement = 1
	}

	return postponement, moladDay + postponement
}

func moladTishreiParts(year int32) int64 {
	cycles := int64(year-1) / 19
	yearsAfterCycle := int64(year-1) % 19
	var monthsFromYearsAfterCycle int64
	if yearsAfterCycle != 0 {
		monthsFromYearsAfterCycle = moladNumLengthSum[yearsAfterCycle-1]
	}
	moladNum := cycles*monthsPerCycle + monthsFromYearsAfterCycle
	return moladNum*moladLengthParts + moladTishrei1Parts
}

// HDate is a traditional Hebrew date. Month is 1..13, ordinal within the
// year starting at Tishrei; see package monthname.go for the display-name
// mapping and parsing a caller actually uses.
type HDate struct {
	Year  int32
	Month int32
	Day   int32
}

// New validates year/month/day and constructs an HDate.
func New(year, month, day int32) (HDate, error) {
	d := HDate{Year: year, Month: month, Day: day}
	if _, err := d.ToJDN(); err != nil {
		return HDate{}, err
	}
	return d, nil
}

func validate(year, month, day int32) error {
	if year < 1 || day < 1 || month < 1 || month > 13 {
		return calerr.InvalidInput
	}
	if !IsLeapYear(year) && month == 13 {
		return calerr.InvalidInput
	}
	return nil
}

// checkedDayParts multiplies j by dayLengthParts, reporting calerr.Overflow
// rather than wrapping if the result would not fit in an int64 — the Go
// analogue of original_source's checked_mul guard on the same product.
func checkedDayParts(j jdn.JDN) (int64, error) {
	product := new(big.Int).Mul(big.NewInt(int64(j)), big.NewInt(dayLengthParts))
	if !product.IsInt64() {
		return 0, calerr.Overflow
	}
	return product.Int64(), nil
}

// ToJDN converts d to its Julian Day Number.
func (d HDate) ToJDN() (jdn.JDN, error) {
	if err := validate(d.Year, d.Month, d.Day); err != nil {
		return 0, err
	}

	leap := IsLeapYear(d.Year)
	lengths, _ := monthLengths(leap)

	molad := moladTishreiParts(d.Year)
	_, tishreiJDN := tishrei1(molad, d.Year)

	var nextMoladOffset int64 = 12
	if leap {
		nextMoladOffset = 13
	}
	_, nextTishreiJDN := tishrei1(molad+nextMoladOffset*moladLengthParts, d.Year+1)
	adder := postponementAdder(nextTishreiJDN-tishreiJDN, leap)

	if d.Day > lengths[d.Month-1]+adder[d.Month-1] {
		return 0, calerr.InvalidInput
	}

	var daysSinceTishrei1 int64 = int64(d.Day) - 1
	for m := d.Month - 1; m >= 1; m-- {
		daysSinceTishrei1 += int64(lengths[m-1] + adder[m-1])
	}

	return jdn.JDN(tishreiJDN + daysSinceTishrei1), nil
}

// FromJDN decodes j into an HDate.
func FromJDN(j jdn.JDN) (HDate, error) {
	// jParts is the last part of day j, so a molad falling anywhere on day j
	// counts as preceding it.
	jParts, err := checkedDayParts(j + 1)
	if err != nil {
		return HDate{}, err
	}
	jParts--
	partsSinceMoladTishrei1 := jParts - moladTishrei1Parts

	cycleLenParts := monthsPerCycle * moladLengthParts
	cycles := partsSinceMoladTishrei1 / cycleLenParts
	partsLeft := partsSinceMoladTishrei1 % cycleLenParts

	year64 := cycles*19 + 1
	for i := 0; partsLeft >= moladNumLength[i]*moladLengthParts; i++ {
		partsLeft -= moladNumLength[i] * moladLengthParts
		year64++
	}
	if year64 < 1 || year64 > math.MaxInt32 {
		return HDate{}, calerr.Overflow
	}
	year := int32(year64)

	lastMoladParts := jParts - partsLeft
	_, lastTishreiJDN := tishrei1(lastMoladParts, year)

	leap := IsLeapYear(year)
	var nextMoladOffset int64 = 12
	if leap {
		nextMoladOffset = 13
	}
	_, nextTishreiJDN := tishrei1(lastMoladParts+nextMoladOffset*moladLengthParts, year+1)

	if lastTishreiJDN > int64(j) {
		year--
		month := int32(12)
		if IsLeapYear(year) {
			month = 13
		}
		day := int32(29 - (lastTishreiJDN - int64(j) - 1))
		return HDate{Year: year, Month: month, Day: day}, nil
	}

	daysLeft := int64(j) - lastTishreiJDN
	lengths, _ := monthLengths(leap)
	adder := postponementAdder(nextTishreiJDN-lastTishreiJDN, leap)

	month := int32(0)
	for daysLeft >= int64(lengths[month]+adder[month]) {
		daysLeft -= int64(lengths[month] + adder[month])
		month++
	}

	return HDate{Year: year, Month: month + 1, Day: int32(daysLeft) + 1}, nil
}
