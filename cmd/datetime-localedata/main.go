package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type localeSpec struct {
	Locale   string
	Calendar string
}

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type pluralSet map[string]string

type bundlePayload struct {
	Locale           string
	Parent           string
	Calendar         string
	FirstDay         string
	DatePattern      string
	DayMonthPattern  string
	TimePattern      string
	DateTimePattern  string
	IntervalFallback string
	Future           map[string]pluralSet
	Past             map[string]pluralSet
	Long             map[string]pluralSet
	Short            map[string]pluralSet
	Narrow           map[string]pluralSet
}

// relativeFields maps CLDR field types to the generated Unit constant.
var relativeFields = map[string]string{
	"year":   "UnitYear",
	"month":  "UnitMonth",
	"week":   "UnitWeek",
	"day":    "UnitDay",
	"hour":   "UnitHour",
	"minute": "UnitMinute",
	"second": "UnitSecond",
}

var durationUnits = map[string]string{
	"duration-year":        "UnitYear",
	"duration-month":       "UnitMonth",
	"duration-week":        "UnitWeek",
	"duration-day":         "UnitDay",
	"duration-hour":        "UnitHour",
	"duration-minute":      "UnitMinute",
	"duration-second":      "UnitSecond",
	"duration-millisecond": "UnitMillisecond",
}

var unitOrder = []string{"UnitYear", "UnitMonth", "UnitWeek", "UnitDay", "UnitHour", "UnitMinute", "UnitSecond", "UnitMillisecond"}

var pluralConst = map[string]string{
	"zero":  "PluralZero",
	"one":   "PluralOne",
	"two":   "PluralTwo",
	"few":   "PluralFew",
	"many":  "PluralMany",
	"other": "PluralOther",
}

var pluralKeys = []string{"zero", "one", "two", "few", "many", "other"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "datetime-localedata: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg generatorConfig

	cmd := &cobra.Command{
		Use:           "datetime-localedata",
		Short:         "Generate the locale bundle table from CLDR XML",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.locales) == 0 {
				return errors.New("at least one --locale value is required")
			}
			if cfg.cldrPath == "" {
				cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
			}
			if cfg.cldrPath == "" {
				return errors.New("missing CLDR data directory (set --cldr or CLDR_CORE_DIR)")
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.pkg, "pkg", "datetime", "package name for generated file")
	cmd.Flags().StringVar(&cfg.out, "out", "locale_data.go", "path to generated Go file")
	cmd.Flags().StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects main/ and supplemental/)")
	cmd.Flags().StringSliceVar(&cfg.locales, "locale", nil, "locale to generate, optionally with a calendar (fa:persian). Repeatable.")

	return cmd
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	supplemental := data.Supplemental()
	specs := make([]localeSpec, 0, len(cfg.locales))
	known := make(map[string]bool, len(cfg.locales))
	for _, raw := range cfg.locales {
		spec, err := parseLocaleSpec(raw)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
		known[spec.Locale] = true
	}

	var bundles []bundlePayload
	for _, spec := range specs {
		payload, err := buildBundle(data, supplemental, spec, known)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", spec.Locale, err)
		}
		bundles = append(bundles, payload)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Locale < bundles[j].Locale
	})

	source, err := renderSource(cfg.pkg, bundles)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func parseLocaleSpec(input string) (localeSpec, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return localeSpec{}, errors.New("empty locale value")
	}

	spec := localeSpec{Calendar: "gregorian"}
	locale, calendar, found := strings.Cut(input, ":")
	spec.Locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if found && strings.TrimSpace(calendar) != "" {
		spec.Calendar = strings.ToLower(strings.TrimSpace(calendar))
	}
	if spec.Locale == "" {
		return localeSpec{}, fmt.Errorf("invalid locale spec %q", input)
	}
	if _, err := language.Parse(spec.Locale); err != nil {
		return localeSpec{}, fmt.Errorf("invalid locale %q: %w", spec.Locale, err)
	}
	return spec, nil
}

// bundleCalendarID maps CLDR calendar types to BCP 47 identifiers.
func bundleCalendarID(cldrType string) string {
	if cldrType == "gregorian" {
		return "gregory"
	}
	return cldrType
}

func buildBundle(data *cldr.CLDR, supplemental *cldr.SupplementalData, spec localeSpec, known map[string]bool) (bundlePayload, error) {
	payload := bundlePayload{
		Locale:   spec.Locale,
		Calendar: bundleCalendarID(spec.Calendar),
		Future:   map[string]pluralSet{},
		Past:     map[string]pluralSet{},
		Long:     map[string]pluralSet{},
		Short:    map[string]pluralSet{},
		Narrow:   map[string]pluralSet{},
	}

	ldml := data.RawLDML(strings.ReplaceAll(spec.Locale, "-", "_"))
	if ldml == nil {
		return payload, fmt.Errorf("missing LDML data")
	}

	if idx := strings.LastIndex(spec.Locale, "-"); idx > 0 && known[spec.Locale[:idx]] {
		payload.Parent = spec.Locale[:idx]
		payload.Calendar = ""
	}

	extractCalendarPatterns(ldml, spec.Calendar, &payload)
	extractRelativeTime(ldml, &payload)
	extractDurationUnits(ldml, &payload)
	payload.FirstDay = extractFirstDay(supplemental, spec.Locale)

	if payload.Parent == "" && payload.DatePattern == "" {
		return payload, fmt.Errorf("no yMd pattern for calendar %s", spec.Calendar)
	}
	return payload, nil
}

func extractCalendarPatterns(ldml *cldr.LDML, calendarType string, payload *bundlePayload) {
	if ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return
	}

	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal == nil || cal.Type != calendarType || cal.DateTimeFormats == nil {
			continue
		}
		formats := cal.DateTimeFormats

		for _, length := range formats.DateTimeFormatLength {
			if length == nil || length.Type != "short" {
				continue
			}
			for _, dtf := range length.DateTimeFormat {
				if dtf == nil || len(dtf.Pattern) == 0 || dtf.Pattern[0] == nil {
					continue
				}
				payload.DateTimePattern = dtf.Pattern[0].Data()
			}
		}

		for _, available := range formats.AvailableFormats {
			if available == nil {
				continue
			}
			for _, item := range available.DateFormatItem {
				if item == nil {
					continue
				}
				switch item.Id {
				case "yMd":
					payload.DatePattern = item.Data()
				case "Md":
					payload.DayMonthPattern = item.Data()
				case "Hms":
					payload.TimePattern = item.Data()
				}
			}
		}

		for _, interval := range formats.IntervalFormats {
			if interval == nil {
				continue
			}
			for _, fallback := range interval.IntervalFormatFallback {
				if fallback != nil && fallback.Data() != "" {
					payload.IntervalFallback = fallback.Data()
				}
			}
		}
	}
}

func extractRelativeTime(ldml *cldr.LDML, payload *bundlePayload) {
	if ldml.Dates == nil || ldml.Dates.Fields == nil {
		return
	}

	for _, field := range ldml.Dates.Fields.Field {
		if field == nil {
			continue
		}
		unit, ok := relativeFields[field.Type]
		if !ok {
			continue
		}
		for _, rel := range field.RelativeTime {
			if rel == nil {
				continue
			}
			set := pluralSet{}
			for _, pattern := range rel.RelativeTimePattern {
				if pattern == nil || pattern.Count == "" {
					continue
				}
				set[pattern.Count] = pattern.Data()
			}
			switch rel.Type {
			case "future":
				payload.Future[unit] = set
			case "past":
				payload.Past[unit] = set
			}
		}
	}
}

func extractDurationUnits(ldml *cldr.LDML, payload *bundlePayload) {
	if ldml.Units == nil {
		return
	}

	for _, length := range ldml.Units.UnitLength {
		if length == nil {
			continue
		}
		var target map[string]pluralSet
		switch length.Type {
		case "long":
			target = payload.Long
		case "short":
			target = payload.Short
		case "narrow":
			target = payload.Narrow
		default:
			continue
		}

		for _, unit := range length.Unit {
			if unit == nil {
				continue
			}
			name, ok := durationUnits[unit.Type]
			if !ok {
				continue
			}
			set := pluralSet{}
			for _, pattern := range unit.UnitPattern {
				if pattern == nil || pattern.Count == "" {
					continue
				}
				set[pattern.Count] = pattern.Data()
			}
			target[name] = set
		}
	}
}

// extractFirstDay reads supplemental weekData. The library expects a Monday
// week for the 001 region, which is CLDR's world default.
func extractFirstDay(supplemental *cldr.SupplementalData, locale string) string {
	if supplemental == nil || supplemental.WeekData == nil {
		return ""
	}

	territory := "001"
	if tag, err := language.Parse(locale); err == nil {
		if region, conf := tag.Region(); conf == language.Exact {
			territory = region.String()
		} else if base, _ := tag.Base(); base.String() == "fa" {
			territory = "IR"
		}
	}

	var world string
	for _, entry := range supplemental.WeekData.FirstDay {
		if entry == nil || entry.Alt != "" {
			continue
		}
		for _, t := range strings.Fields(entry.Territories) {
			if t == territory {
				return entry.Day
			}
			if t == "001" {
				world = entry.Day
			}
		}
	}
	return world
}

func renderSource(pkg string, bundles []bundlePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by datetime-localedata. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var localeBundles = map[string]localeBundle{\n")
	for _, b := range bundles {
		fmt.Fprintf(&buf, "\t%q: {\n", b.Locale)
		fmt.Fprintf(&buf, "\t\tLocale: %q,\n", b.Locale)
		writeString(&buf, "Parent", b.Parent)
		if b.Calendar != "" {
			fmt.Fprintf(&buf, "\t\tCalendar: CalendarID(%q),\n", b.Calendar)
		}
		writeString(&buf, "FirstDay", b.FirstDay)
		writeString(&buf, "DatePattern", b.DatePattern)
		writeString(&buf, "DayMonthPattern", b.DayMonthPattern)
		writeString(&buf, "TimePattern", b.TimePattern)
		writeString(&buf, "DateTimePattern", b.DateTimePattern)
		writeString(&buf, "IntervalFallback", b.IntervalFallback)

		if len(b.Future) > 0 || len(b.Past) > 0 {
			buf.WriteString("\t\tRelative: map[Unit]relativePatterns{\n")
			for _, unit := range unitOrder {
				future, past := b.Future[unit], b.Past[unit]
				if len(future) == 0 && len(past) == 0 {
					continue
				}
				fmt.Fprintf(&buf, "\t\t\t%s: {\n", unit)
				writePlural(&buf, "Future", future)
				writePlural(&buf, "Past", past)
				buf.WriteString("\t\t\t},\n")
			}
			buf.WriteString("\t\t},\n")
		}

		if len(b.Long) > 0 || len(b.Short) > 0 || len(b.Narrow) > 0 {
			buf.WriteString("\t\tUnits: map[Unit]unitPatterns{\n")
			for _, unit := range unitOrder {
				if len(b.Long[unit]) == 0 && len(b.Short[unit]) == 0 && len(b.Narrow[unit]) == 0 {
					continue
				}
				fmt.Fprintf(&buf, "\t\t\t%s: {\n", unit)
				writePlural(&buf, "Long", b.Long[unit])
				writePlural(&buf, "Short", b.Short[unit])
				writePlural(&buf, "Narrow", b.Narrow[unit])
				buf.WriteString("\t\t\t},\n")
			}
			buf.WriteString("\t\t},\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeString(buf *bytes.Buffer, field, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(buf, "\t\t%s: %q,\n", field, value)
}

func writePlural(buf *bytes.Buffer, field string, set pluralSet) {
	if len(set) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t\t\t%s: pluralPatterns{\n", field)
	for _, key := range pluralKeys {
		if pattern, ok := set[key]; ok {
			fmt.Fprintf(buf, "\t\t\t\t\t%s: %q,\n", pluralConst[key], pattern)
		}
	}
	buf.WriteString("\t\t\t\t},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
