package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	datetime "github.com/goliatone/go-datetime"
)

type app struct {
	Locale   string
	TimeZone string
	Calendar string
	Ref      string
	Debug    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "datetime",
		Short:        "Parse and format locale aware dates and ranges",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Shortcut, relative and keyword input
  datetime parse 0203
  datetime --locale de parse +2woche
  datetime range lw

  # Persian calendar
  datetime --locale fa parse 1398/12/30
`),
	}

	cmd.PersistentFlags().StringVar(&a.Locale, "locale", envOr("DATETIME_LOCALE", datetime.DefaultLocale), "Locale tag (e.g. en, de, fa, en-GB, en-u-ca-persian)")
	cmd.PersistentFlags().StringVar(&a.TimeZone, "tz", envOr("DATETIME_TZ", ""), "IANA time zone (default: local)")
	cmd.PersistentFlags().StringVar(&a.Calendar, "calendar", "", "Calendar override (gregory|persian)")
	cmd.PersistentFlags().StringVar(&a.Ref, "ref", "", "Reference instant, RFC 3339 or YYYY-MM-DD (default: now)")
	cmd.PersistentFlags().BoolVar(&a.Debug, "debug", false, "Log parser decisions to stderr")

	cmd.AddCommand(newParseCmd(a))
	cmd.AddCommand(newRangeCmd(a))
	cmd.AddCommand(newSpanCmd(a))
	cmd.AddCommand(newFactsCmd(a))

	return cmd
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a single date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, ref, err := a.parser(cmd)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			result, ok := parser.Parse(text, ref)
			if !ok {
				return fmt.Errorf("no match for %q", text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), parser.Formatter().Format(result))
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}

func newRangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "range <text>",
		Short: "Parse a date range or range keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, ref, err := a.parser(cmd)
			if err != nil {
				return err
			}
			r := parser.ParseRange(strings.Join(args, " "), ref)
			fmt.Fprintln(cmd.OutOrStdout(), r.Format(parser.Formatter()))
			fmt.Fprintln(cmd.OutOrStdout(), r.CanonicalString())
			return nil
		},
	}
}

func newSpanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "span <duration>",
		Short: "Format a Go duration (90m, -72h) as relative time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, _, err := a.parser(cmd)
			if err != nil {
				return err
			}
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("parse duration: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), datetime.TimeSpanFromDuration(d).Format(parser.Formatter()))
			return nil
		},
	}
}

func newFactsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "Show the locale facts used for parsing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, _, err := a.parser(cmd)
			if err != nil {
				return err
			}
			f := parser.Facts()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "locale:          %s\n", f.Locale)
			fmt.Fprintf(out, "tag:             %s\n", f.Tag)
			fmt.Fprintf(out, "calendar:        %s\n", f.Calendar.ID())
			fmt.Fprintf(out, "time zone:       %s\n", f.TimeZone)
			fmt.Fprintf(out, "date order:      %s\n", f.DateOrder)
			fmt.Fprintf(out, "day-month order: %s\n", f.DayMonthOrder)
			fmt.Fprintf(out, "date separator:  %q\n", f.DateSeparator)
			fmt.Fprintf(out, "time separator:  %q\n", f.TimeSeparator)
			fmt.Fprintf(out, "first weekday:   %s\n", f.FirstWeekday)
			fmt.Fprintf(out, "until:           %q\n", f.Until)
			return nil
		},
	}
}

func (a *app) parser(cmd *cobra.Command) (*datetime.Parser, datetime.Instant, error) {
	opts := []datetime.Option{
		datetime.WithTimeZone(a.TimeZone),
		datetime.WithCalendar(a.Calendar),
	}
	if a.Debug {
		opts = append(opts, datetime.WithLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	parser, err := datetime.NewParser(a.Locale, opts...)
	if err != nil {
		return nil, datetime.Instant{}, err
	}

	ref, err := a.reference(parser)
	if err != nil {
		return nil, datetime.Instant{}, err
	}
	return parser, ref, nil
}

func (a *app) reference(parser *datetime.Parser) (datetime.Instant, error) {
	if strings.TrimSpace(a.Ref) == "" {
		return datetime.Instant{}, nil
	}
	loc := parser.Facts().Location
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, a.Ref, loc); err == nil {
			return datetime.NewInstant(t, parser.Facts().Calendar), nil
		}
	}
	return datetime.Instant{}, errors.New("invalid --ref: want RFC 3339 or YYYY-MM-DD")
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
