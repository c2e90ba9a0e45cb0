package roman

import (
	"strings"

	"github.com/kvassilev/calconv/calerr"
	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

func normalize(s string) string {
	return foldCaser.String(strings.TrimSpace(s))
}

// MonthNames is January..December, index 0..11.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseMonth resolves a Roman month name (case-insensitive) to 1..12.
func ParseMonth(name string) (int32, error) {
	n := normalize(name)
	for i, candidate := range MonthNames {
		if normalize(candidate) == n {
			return int32(i + 1), nil
		}
	}
	return 0, calerr.InvalidInput
}

// MonthName returns the name of month (1..12), or "" if out of range.
func MonthName(month int32) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}

// ParseEra resolves "AD"/"CE" to EraSecond and "BC"/"BCE" to EraFirst,
// case-insensitively.
func ParseEra(name string) (Era, error) {
	switch normalize(name) {
	case normalize("AD"), normalize("CE"):
		return EraSecond, nil
	case normalize("BC"), normalize("BCE"):
		return EraFirst, nil
	default:
		return false, calerr.InvalidInput
	}
}
