package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/kvassilev/calconv/convert"
	"github.com/kvassilev/calconv/hebrew"
	"github.com/kvassilev/calconv/roman"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	fromFlag  string
	toFlag    string
	dayFlag   int32
	monthFlag string
	yearFlag  int32
	eraFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "calconv",
	Short: "Convert a date between the Gregorian, Julian and Hebrew calendars",
	Long: `calconv converts a single date between the proleptic Gregorian,
proleptic Julian and traditional Hebrew calendars, pivoting through the
Julian Day Number.`,
	RunE: runConvert,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&fromFlag, "from", "", `source calendar: "Gregorian", "Julian" or "Hebrew"`)
	rootCmd.Flags().StringVar(&toFlag, "to", "", `target calendar: "Gregorian", "Julian" or "Hebrew"`)
	rootCmd.Flags().Int32Var(&dayFlag, "day", 0, "day of the month")
	rootCmd.Flags().StringVar(&monthFlag, "month", "", "month name in the source calendar")
	rootCmd.Flags().Int32Var(&yearFlag, "year", 0, "year in the source calendar")
	rootCmd.Flags().StringVar(&eraFlag, "era", "AD", `era of the source year: "AD" or "BC" (ignored for Hebrew)`)

	for _, name := range []string{"from", "to", "month", "year"} {
		_ = rootCmd.MarkFlagRequired(name)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	from := convert.Calendar(fromFlag)
	to := convert.Calendar(toFlag)

	result := convert.Convert(from, to, dayFlag, monthFlag, yearFlag, eraFlag)
	renderResult(to, result)

	if !result.Valid {
		return fmt.Errorf("not a valid date")
	}
	if !result.NotOverflow {
		return fmt.Errorf("date is outside the supported range")
	}
	return nil
}

func renderResult(to convert.Calendar, g convert.GenericDate) {
	buf := &bytes.Buffer{}
	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"valid", "in range", "era", "year", "month", "day"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	if g.Valid && g.NotOverflow {
		table.Append([]string{
			strconv.FormatBool(g.Valid),
			strconv.FormatBool(g.NotOverflow),
			eraName(to, g.Era),
			strconv.Itoa(int(g.Year)),
			monthName(to, g.Year, g.MonthName),
			strconv.Itoa(int(g.Day)),
		})
	} else {
		table.Append([]string{
			strconv.FormatBool(g.Valid),
			strconv.FormatBool(g.NotOverflow),
			"-", "-", "-", "-",
		})
	}

	table.Render()
	fmt.Print(buf.String())
}

func eraName(to convert.Calendar, era bool) string {
	if to == convert.Hebrew {
		return "-"
	}
	if era {
		return "AD"
	}
	return "BC"
}

func monthName(to convert.Calendar, year, displayMonth int32) string {
	if to == convert.Hebrew {
		return hebrew.DisplayName(year, displayMonth)
	}
	return roman.MonthName(displayMonth)
}
