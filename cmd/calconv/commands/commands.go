// Package commands holds the calconv command tree.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zapponejosh/calendrics-api/internal/astronomy"
	"github.com/zapponejosh/calendrics-api/internal/calendar"
	"github.com/zapponejosh/calendrics-api/internal/calendrical"
	"github.com/zapponejosh/calendrics-api/internal/database"
	"github.com/zapponejosh/calendrics-api/internal/logger"
)

// Flag keys shared through viper. Each can also be set as CALCONV_<KEY>
// with dots and dashes as underscores, e.g. CALCONV_WARM_FROM.
const (
	keyOutput   = "output"
	keyDB       = "db"
	keyLogLevel = "log-level"
)

// app carries what the subcommands share.
type app struct {
	v   *viper.Viper
	out io.Writer
	log *slog.Logger
}

// NewRootCommand builds calconv writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}
	a.v.SetEnvPrefix("CALCONV")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "calconv",
		Short:         "Convert dates between calendars",
		Long:          "calconv converts dates between solar and Hijri calendars, does calendar arithmetic and precomputes astronomical Hijri years.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.v.GetString(keyOutput) {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown output format %q", a.v.GetString(keyOutput))
			}
			a.log = logger.New(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel), "text")
			return nil
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringP(keyOutput, "o", "text", "output format: text, json or yaml")
	pf.String(keyDB, "", "SQLite file caching astronomical Hijri years")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	for _, key := range []string{keyOutput, keyDB, keyLogLevel} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		a.newConvertCommand(),
		a.newCalendarsCommand(),
		a.newOffsetCommand(),
		a.newEasterCommand(),
		a.newWarmCommand(),
		a.newCacheCommand(),
	)
	return root
}

func (a *app) newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <YYYY-MM-DD|rd>",
		Short: "Show a day in one or more calendars",
		Example: `  calconv convert 2024-03-11 --to hijri-umm-al-qura
  calconv convert 738956 --to gregorian,ethiopian -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := parseDay(args[0])
			if err != nil {
				return err
			}
			reg, closeDB, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			names := a.v.GetStringSlice("convert.to")
			if len(names) == 1 && names[0] == "all" {
				names = reg.Names()
			}
			records := make([]dateRecord, 0, len(names))
			for _, name := range names {
				cal, err := reg.Get(name)
				if err != nil {
					return err
				}
				records = append(records, newDateRecord(cal.FromRataDie(rd)))
			}
			return a.print(records, func(w io.Writer) {
				for _, r := range records {
					fmt.Fprintln(w, r.line())
				}
			})
		},
	}
	cmd.Flags().StringSlice("to", []string{"iso"}, `target calendars, or "all"`)
	_ = a.v.BindPFlag("convert.to", cmd.Flags().Lookup("to"))
	return cmd
}

func (a *app) newCalendarsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calendars",
		Short: "List the calendar names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := calendar.NewRegistry(calendar.RegistryConfig{Ephemeris: astronomy.Astronomical{}}).Names()
			return a.print(map[string][]string{"calendars": names}, func(w io.Writer) {
				for _, n := range names {
					fmt.Fprintln(w, n)
				}
			})
		},
	}
}

func (a *app) newOffsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offset <YYYY-MM-DD|rd>",
		Short: "Add years, months, weeks and days to a date",
		Example: `  calconv offset 2023-01-31 --calendar gregorian --months 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := parseDay(args[0])
			if err != nil {
				return err
			}
			reg, closeDB, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			cal, err := reg.Get(a.v.GetString("offset.calendar"))
			if err != nil {
				return err
			}
			f := cmd.Flags()
			var dur calendar.DateDuration
			for _, p := range []struct {
				name string
				dst  *int32
			}{
				{"years", &dur.Years},
				{"months", &dur.Months},
				{"weeks", &dur.Weeks},
				{"days", &dur.Days},
			} {
				if *p.dst, err = f.GetInt32(p.name); err != nil {
					return err
				}
			}

			start := cal.FromRataDie(rd)
			res := offsetRecord{
				Start:    newDateRecord(start),
				Duration: dur,
				Result:   newDateRecord(start.Offset(dur)),
			}
			return a.print(res, func(w io.Writer) {
				fmt.Fprintf(w, "%s + %dy %dm %dw %dd = %s\n",
					res.Start.Date, dur.Years, dur.Months, dur.Weeks, dur.Days, res.Result.line())
			})
		},
	}
	f := cmd.Flags()
	f.String("calendar", "iso", "calendar to do the arithmetic in")
	_ = a.v.BindPFlag("offset.calendar", f.Lookup("calendar"))
	f.Int32("years", 0, "years to add")
	f.Int32("months", 0, "months to add")
	f.Int32("weeks", 0, "weeks to add")
	f.Int32("days", 0, "days to add")
	return cmd
}

func (a *app) newEasterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "easter <year>",
		Short: "Show Western and Orthodox Easter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			year := int32(n)
			if year < 1 || year > 9999 {
				return &calendar.RangeError{Field: "year", Value: year, Min: 1, Max: 9999}
			}

			f := calendar.WesternFeasts(year)
			rec := easterRecord{
				Year:         year,
				Western:      calendar.FormatISODate(f.Easter),
				Orthodox:     calendar.FormatISODate(calendar.EasterOrthodox(year)),
				AshWednesday: calendar.FormatISODate(f.AshWednesday),
				Ascension:    calendar.FormatISODate(f.Ascension),
				Pentecost:    calendar.FormatISODate(f.Pentecost),
				Advent:       calendar.FormatISODate(f.Advent),
			}
			return a.print(rec, func(w io.Writer) {
				fmt.Fprintf(w, "Western:  %s\nOrthodox: %s\n", rec.Western, rec.Orthodox)
			})
		},
	}
}

func (a *app) newWarmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Precompute astronomical Hijri years into the cache",
		Example: `  calconv warm --calendar hijri-umm-al-qura --from 1440 --to 1450 --db ./data/calendrics.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.v.GetString(keyDB) == "" {
				return errors.New("warm needs --db (or CALCONV_DB)")
			}
			from, to := a.v.GetInt32("warm.from"), a.v.GetInt32("warm.to")
			if to < from {
				return fmt.Errorf("--to %d is before --from %d", to, from)
			}
			reg, closeDB, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			name := a.v.GetString("warm.calendar")
			n, err := reg.Warm(name, from, to)
			if err != nil {
				return err
			}
			res := map[string]any{"calendar": name, "from": from, "to": to, "years": n}
			return a.print(res, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %d years (%d..%d)\n", name, n, from, to)
			})
		},
	}
	f := cmd.Flags()
	f.String("calendar", calendar.HijriUmmAlQuraName, "astronomical Hijri calendar")
	f.Int32("from", 1440, "first Hijri year")
	f.Int32("to", 1450, "last Hijri year")
	for _, key := range []string{"calendar", "from", "to"} {
		_ = a.v.BindPFlag("warm."+key, f.Lookup(key))
	}
	return cmd
}

func (a *app) newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the Hijri year cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Summarize the cached years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			stats, err := db.GetCacheStats(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(stats, func(w io.Writer) {
				for _, s := range stats {
					fmt.Fprintf(w, "%s: %d years (%d..%d)\n", s.Calendar, s.Years, s.MinYear, s.MaxYear)
				}
			})
		},
	})

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the cached years of a calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			name, _ := cmd.Flags().GetString("calendar")
			n, err := db.DeleteHijriYears(cmd.Context(), name)
			if err != nil {
				return err
			}
			return a.print(map[string]any{"calendar": name, "deleted": n}, func(w io.Writer) {
				fmt.Fprintf(w, "%s: deleted %d years\n", name, n)
			})
		},
	}
	clearCmd.Flags().String("calendar", calendar.HijriUmmAlQuraName, "astronomical Hijri calendar")
	cmd.AddCommand(clearCmd)

	return cmd
}

// registry builds the calendars, persisting astronomical years when --db is
// set. The returned func closes the database.
func (a *app) registry(ctx context.Context) (*calendar.Registry, func(), error) {
	cfg := calendar.RegistryConfig{
		Ephemeris:    astronomy.Astronomical{},
		CacheEnabled: true,
		Logger:       logger.Component(a.log, "calendar"),
	}
	if a.v.GetString(keyDB) == "" {
		return calendar.NewRegistry(cfg), func() {}, nil
	}
	db, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	cfg.Store = database.NewHijriYearStore(db)
	return calendar.NewRegistry(cfg), func() { db.Close() }, nil
}

func (a *app) openDB(ctx context.Context) (*database.DB, error) {
	path := a.v.GetString(keyDB)
	if path == "" {
		return nil, errors.New("no database: set --db or CALCONV_DB")
	}
	db, err := database.Open(database.DefaultConfig(path), logger.Component(a.log, "database"))
	if err != nil {
		return nil, err
	}
	if _, err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// parseDay accepts an ISO date or a bare day number.
func parseDay(s string) (calendrical.RataDie, error) {
	if strings.Count(s, "-") >= 2 && !strings.HasPrefix(s, "-") {
		return calendar.ParseISODate(s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is neither YYYY-MM-DD nor a day number", s)
	}
	return calendrical.NewRataDie(n), nil
}
