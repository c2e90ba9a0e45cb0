package hebrew

import (
	"strings"

	"github.com/kvassilev/calconv/calerr"
	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

func normalizeName(s string) string {
	return foldCaser.String(strings.TrimSpace(s))
}

// ParseMonth resolves a Hebrew month name to its internal (Tishrei-based)
// index for the given year, honoring the leap-year-dependent aliases:
// "Adar I" only exists in a leap year, and "Adar"/"Adar II" both name
// whichever of internal month 6 (common) or 7 (leap) is the plain/second
// Adar.
func ParseMonth(year int32, name string) (int32, error) {
	leap := IsLeapYear(year)
	leapOffset := int32(0)
	if leap {
		leapOffset = 1
	}

	switch normalizeName(name) {
	case normalizeName("Tishrei"):
		return 1, nil
	case normalizeName("Chesvan"), normalizeName("Cheshvan"):
		return 2, nil
	case normalizeName("Kislev"):
		return 3, nil
	case normalizeName("Tevet"):
		return 4, nil
	case normalizeName("Shevat"):
		return 5, nil
	case normalizeName("Adar I"):
		if !leap {
			return 0, calerr.InvalidInput
		}
		return 6, nil
	case normalizeName("Adar"), normalizeName("Adar II"), normalizeName("Adar/Adar II"):
		return 6 + leapOffset, nil
	case normalizeName("Nisan"):
		return 7 + leapOffset, nil
	case normalizeName("Iyar"):
		return 8 + leapOffset, nil
	case normalizeName("Sivan"):
		return 9 + leapOffset, nil
	case normalizeName("Tammuz"):
		return 10 + leapOffset, nil
	case normalizeName("Av"):
		return 11 + leapOffset, nil
	case normalizeName("Elul"):
		return 12 + leapOffset, nil
	default:
		return 0, calerr.InvalidInput
	}
}

// DisplayMonth maps an internal (Tishrei-based) month index to the display
// index a GenericDate reports: identity in a common year; in a leap year,
// internal 1..5 stay put, internal 6 (Adar I) becomes 13, internal 7 (Adar
// II) becomes 14, and internal 8..13 shift back down to 7..12.
func DisplayMonth(year, internalMonth int32) int32 {
	if !IsLeapYear(year) {
		return internalMonth
	}
	switch {
	case internalMonth <= 5:
		return internalMonth
	case internalMonth == 6:
		return 13
	case internalMonth == 7:
		return 14
	default:
		return internalMonth - 1
	}
}

// DisplayName returns the name of a GenericDate's display month code for
// the given Hebrew year, the inverse of DisplayMonth composed with
// MonthName; it exists so a caller holding only the uniform output
// record (which carries the display code, not the internal index) can
// still print a month name.
func DisplayName(year, displayMonth int32) string {
	if !IsLeapYear(year) {
		return MonthName(year, displayMonth)
	}
	switch {
	case displayMonth <= 5:
		return MonthName(year, displayMonth)
	case displayMonth == 13:
		return MonthName(year, 6)
	case displayMonth == 14:
		return MonthName(year, 7)
	default:
		return MonthName(year, displayMonth+1)
	}
}

// MonthName returns the display name of a Hebrew date's internal month
// index, the inverse of ParseMonth.
func MonthName(year, internalMonth int32) string {
	leap := IsLeapYear(year)
	switch internalMonth {
	case 1:
		return "Tishrei"
	case 2:
		return "Chesvan"
	case 3:
		return "Kislev"
	case 4:
		return "Tevet"
	case 5:
		return "Shevat"
	case 6:
		if leap {
			return "Adar I"
		}
		return "Adar"
	case 7:
		if leap {
			return "Adar II"
		}
		return "Nisan"
	case 8:
		if leap {
			return "Nisan"
		}
		return "Iyar"
	case 9:
		if leap {
			return "Iyar"
		}
		return "Sivan"
	case 10:
		if leap {
			return "Sivan"
		}
		return "Tammuz"
	case 11:
		if leap {
			return "Tammuz"
		}
		return "Av"
	case 12:
		if leap {
			return "Av"
		}
		return "Elul"
	case 13:
		return "Elul"
	default:
		return ""
	}
}
