package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/calendrics-api/internal/calendar"
)

// dateRecord is one converted date.
type dateRecord struct {
	Calendar     string `json:"calendar" yaml:"calendar"`
	RataDie      int64  `json:"rd" yaml:"rd"`
	Date         string `json:"date" yaml:"date"`
	Era          string `json:"era" yaml:"era"`
	Year         int32  `json:"year" yaml:"year"`
	ExtendedYear int32  `json:"extended_year" yaml:"extended_year"`
	Month        uint8  `json:"month" yaml:"month"`
	MonthCode    string `json:"month_code" yaml:"month_code"`
	Day          uint8  `json:"day" yaml:"day"`
	DayOfYear    uint16 `json:"day_of_year" yaml:"day_of_year"`
	LeapYear     bool   `json:"leap_year" yaml:"leap_year"`
}

func newDateRecord(d calendar.Date) dateRecord {
	ey := d.EraYear()
	m := d.Month()
	return dateRecord{
		Calendar:     d.Calendar().Name(),
		RataDie:      d.RataDie().Int64(),
		Date:         fmt.Sprint(d),
		Era:          ey.Era,
		Year:         ey.Year,
		ExtendedYear: d.ExtendedYear(),
		Month:        m.Ordinal,
		MonthCode:    string(m.Code),
		Day:          d.DayOfMonth(),
		DayOfYear:    d.DayOfYear(),
		LeapYear:     d.IsInLeapYear(),
	}
}

func (r dateRecord) line() string {
	return fmt.Sprintf("%-24s %s (%s %d, %s day %d)", r.Calendar, r.Date, r.Era, r.Year, r.MonthCode, r.Day)
}

type offsetRecord struct {
	Start    dateRecord            `json:"start" yaml:"start"`
	Duration calendar.DateDuration `json:"duration" yaml:"duration"`
	Result   dateRecord            `json:"result" yaml:"result"`
}

type easterRecord struct {
	Year         int32  `json:"year" yaml:"year"`
	Western      string `json:"western" yaml:"western"`
	Orthodox     string `json:"orthodox" yaml:"orthodox"`
	AshWednesday string `json:"ash_wednesday" yaml:"ash_wednesday"`
	Ascension    string `json:"ascension" yaml:"ascension"`
	Pentecost    string `json:"pentecost" yaml:"pentecost"`
	Advent       string `json:"advent" yaml:"advent"`
}

// print writes v in the selected format, using text for the plain form.
func (a *app) print(v any, text func(io.Writer)) error {
	switch a.v.GetString(keyOutput) {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	text(a.out)
	return nil
}
