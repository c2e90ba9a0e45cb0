package hebrew

import (
	"testing"

	"github.com/kvassilev/calconv/calerr"
	"github.com/kvassilev/calconv/helper/assert"
)

func TestParseMonthAcceptsChesvanAndCheshvanAliases(t *testing.T) {
	tag := "TestParseMonthAcceptsChesvanAndCheshvanAliases"

	for _, name := range []string{"Chesvan", "Cheshvan", "cheshvan"} {
		m, err := ParseMonth(5780, name)
		assert.Equal(t, tag, nil, err)
		assert.Equal(t, tag, int32(2), m)
	}
}

func TestParseMonthRejectsAdarIInCommonYear(t *testing.T) {
	tag := "TestParseMonthRejectsAdarIInCommonYear"

	_, err := ParseMonth(5780, "Adar I")
	assert.Equal(t, tag, calerr.InvalidInput, err)

	m, err := ParseMonth(5780, "Adar")
	assert.Equal(t, tag, nil, err)
	assert.Equal(t, tag, int32(6), m)
}

func TestParseMonthSplitsAdarInLeapYear(t *testing.T) {
	tag := "TestParseMonthSplitsAdarInLeapYear"

	m, err := ParseMonth(5784, "Adar I")
	assert.Equal(t, tag, nil, err)
	assert.Equal(t, tag, int32(6), m)

	for _, name := range []string{"Adar II", "Adar/Adar II"} {
		m, err := ParseMonth(5784, name)
		assert.Equal(t, tag, nil, err)
		assert.Equal(t, tag, int32(7), m)
	}
}

func TestParseMonthShiftsMonthsAfterAdarInLeapYear(t *testing.T) {
	tag := "TestParseMonthShiftsMonthsAfterAdarInLeapYear"

	m, err := ParseMonth(5784, "Nisan")
	assert.Equal(t, tag, nil, err)
	assert.Equal(t, tag, int32(8), m)

	m, err = ParseMonth(5784, "Elul")
	assert.Equal(t, tag, nil, err)
	assert.Equal(t, tag, int32(13), m)
}

func TestDisplayMonthMapping(t *testing.T) {
	tag := "TestDisplayMonthMapping"

	// Common year: identity.
	for i := int32(1); i <= 12; i++ {
		assert.Equal(t, tag, i, DisplayMonth(5780, i))
	}

	// Leap year: 1..5 identity, 6 -> 13 (Adar I), 7 -> 14 (Adar II), 8..13 -> 7..12.
	assert.Equal(t, tag, int32(5), DisplayMonth(5784, 5))
	assert.Equal(t, tag, int32(13), DisplayMonth(5784, 6))
	assert.Equal(t, tag, int32(14), DisplayMonth(5784, 7))
	assert.Equal(t, tag, int32(7), DisplayMonth(5784, 8))
	assert.Equal(t, tag, int32(12), DisplayMonth(5784, 13))
}

func TestDisplayNameRoundTripsWithParseMonth(t *testing.T) {
	tag := "TestDisplayNameRoundTripsWithParseMonth"

	for _, year := range []int32{5779, 5784} {
		months := int32(12)
		if IsLeapYear(year) {
			months = 13
		}
		for internal := int32(1); internal <= months; internal++ {
			display := DisplayMonth(year, internal)
			name := DisplayName(year, display)
			reparsed, err := ParseMonth(year, name)
			assert.Equal(t, tag, nil, err)
			assert.Equal(t, tag, internal, reparsed)
		}
	}
}
