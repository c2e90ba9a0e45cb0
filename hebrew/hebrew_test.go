package hebrew

import (
	"testing"

	"github.com/kvassilev/calconv/calerr"
	"github.com/kvassilev/calconv/helper/assert"
)

// Reference years covering all six year-length types, adapted from the teacher's helper/test/test_util.go fixture
// years (there keyed to the teacher's own Hebrew-year arithmetic; here
// re-verified against this package's postponement and year-length rules).
const (
	yearLeapShelaimim  int32 = 5776 // leap, complete (385 days)
	yearLeapKesidran   int32 = 5755 // leap, regular (384 days)
	yearLeapChaseirim  int32 = 5765 // leap, deficient (383 days)
	yearCommonShelaimim int32 = 5770 // common, complete (355 days)
	yearCommonKesidran  int32 = 5762 // common, regular (354 days)
	yearCommonChaseirim int32 = 5777 // common, deficient (353 days)
)

func yearLength(t *testing.T, tag string, year int32) int64 {
	t.Helper()
	first, err := HDate{Year: year, Month: 1, Day: 1}.ToJDN()
	assert.Equal(t, tag, nil, err)
	next, err := HDate{Year: year + 1, Month: 1, Day: 1}.ToJDN()
	assert.Equal(t, tag, nil, err)
	return int64(next - first)
}

func TestLeapCadence(t *testing.T) {
	tag := "TestLeapCadence"

	leapPositions := map[int32]bool{3: true, 6: true, 8: true, 11: true, 14: true, 17: true, 0: true}
	count := 0
	for y := int32(1); y <= 19; y++ {
		pos := y % 19
		want := leapPositions[pos]
		assert.Equal(t, tag, want, IsLeapYear(y))
		if want {
			count++
		}
	}
	assert.Equal(t, tag, 7, count)
}

func TestYearLengthsMatchKnownTypes(t *testing.T) {
	tag := "TestYearLengthsMatchKnownTypes"

	assert.Equal(t, tag, int64(385), yearLength(t, tag, yearLeapShelaimim))
	assert.Equal(t, tag, int64(384), yearLength(t, tag, yearLeapKesidran))
	assert.Equal(t, tag, int64(383), yearLength(t, tag, yearLeapChaseirim))
	assert.Equal(t, tag, int64(355), yearLength(t, tag, yearCommonShelaimim))
	assert.Equal(t, tag, int64(354), yearLength(t, tag, yearCommonKesidran))
	assert.Equal(t, tag, int64(353), yearLength(t, tag, yearCommonChaseirim))
}

func TestRoshHashanaNeverFallsOnBarredWeekday(t *testing.T) {
	tag := "TestRoshHashanaNeverFallsOnBarredWeekday"

	for y := int32(5700); y <= 5800; y++ {
		j, err := HDate{Year: y, Month: 1, Day: 1}.ToJDN()
		assert.Equal(t, tag, nil, err)
		weekday := (int64(j) + 2) % 7
		assert.False(t, tag, weekday == 0 || weekday == 3 || weekday == 5)
	}
}

func TestRoundTripAcrossYearTypes(t *testing.T) {
	tag := "TestRoundTripAcrossYearTypes"

	for _, y := range []int32{
		yearLeapShelaimim, yearLeapKesidran, yearLeapChaseirim,
		yearCommonShelaimim, yearCommonKesidran, yearCommonChaseirim,
	} {
		months := int32(12)
		if IsLeapYear(y) {
			months = 13
		}
		for m := int32(1); m <= months; m++ {
			for _, d := range []int32{1, 15} {
				date := HDate{Year: y, Month: m, Day: d}
				j, err := date.ToJDN()
				assert.Equal(t, tag, nil, err)
				got, err := FromJDN(j)
				assert.Equal(t, tag, nil, err)
				assert.Equal(t, tag, date, got)
			}
		}
	}
}

func TestCheshvanLengthVariesWithYearCompleteness(t *testing.T) {
	tag := "TestCheshvanLengthVariesWithYearCompleteness"

	// 5770 is a complete ("shelaimim") year: Cheshvan has 30 days.
	_, err := New(5770, 2, 30)
	assert.Equal(t, tag, nil, err)

	// 5765 is a deficient ("chaseirim") year: Cheshvan has only 29.
	_, err = New(5765, 2, 30)
	assert.Equal(t, tag, calerr.InvalidInput, err)
}

func TestThirteenthMonthOnlyExistsInLeapYears(t *testing.T) {
	tag := "TestThirteenthMonthOnlyExistsInLeapYears"

	_, err := New(yearCommonKesidran, 13, 1)
	assert.Equal(t, tag, calerr.InvalidInput, err)

	_, err = New(yearLeapKesidran, 13, 1)
	assert.Equal(t, tag, nil, err)
}

func TestRejectsOutOfRangeFields(t *testing.T) {
	tag := "TestRejectsOutOfRangeFields"

	_, err := New(0, 1, 1)
	assert.Equal(t, tag, calerr.InvalidInput, err)

	_, err = New(5780, 0, 1)
	assert.Equal(t, tag, calerr.InvalidInput, err)

	_, err = New(5780, 1, 0)
	assert.Equal(t, tag, calerr.InvalidInput, err)

	_, err = New(5780, 14, 1)
	assert.Equal(t, tag, calerr.InvalidInput, err)
}

func TestFromJDNOverflowsOnOversizedInput(t *testing.T) {
	tag := "TestFromJDNOverflowsOnOversizedInput"

	_, err := FromJDN(1<<62 - 1)
	assert.Equal(t, tag, calerr.Overflow, err)
}
