package view

import (
	"log/slog"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// NoData is shown in place of a value that cannot be computed yet.
const NoData = "–"

const (
	msgActivePlans = "active plans"
	msgOpenTasks   = "open tasks"
	msgOpenBadge   = "open badge"
)

// pluralMessages are registered for whatever locale the formatter is built
// for, so lookups never miss.
var pluralMessages = map[string]catalog.Message{
	msgActivePlans: plural.Selectf(1, "%d",
		"=0", "No active plans",
		"=1", "1 active plan",
		"other", "%d active plans",
	),
	msgOpenTasks: plural.Selectf(1, "%d",
		"=0", "No open tasks",
		"=1", "1 open task",
		"other", "%d open tasks",
	),
	msgOpenBadge: plural.Selectf(1, "%d",
		"=0", "All set",
		"other", "%d open",
	),
}

// Formatter renders numbers, dates and counted phrases for one locale and
// time zone.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	loc     *time.Location
}

func NewFormatter(locale string, loc *time.Location) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		slog.Warn("unknown locale, falling back to English", "locale", locale, "error", err)
		tag = language.English
	}
	if loc == nil {
		loc = time.Local
	}

	builder := catalog.NewBuilder(catalog.Fallback(tag))
	for key, msg := range pluralMessages {
		err = builder.Set(tag, key, msg)
		if err != nil {
			slog.Error("failed to register message", "key", key, "error", err)
		}
	}

	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		loc:     loc,
	}
}

func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Decimal formats v with one fractional digit, e.g. 3.5.
func (f *Formatter) Decimal(v float64) string {
	return f.printer.Sprintf("%.1f", v)
}

func (f *Formatter) Percent(n int) string {
	return f.printer.Sprintf("%d%%", n)
}

func (f *Formatter) count(key string, n int) string {
	return f.printer.Sprintf(key, n)
}

// Date formats a YYYY-MM-DD key as "20 May 2024". Unparseable keys are
// returned unchanged.
func (f *Formatter) Date(key string) string {
	if key == "" {
		return "Not set"
	}
	t, err := model.ParseDateKey(key, f.loc)
	if err != nil {
		return key
	}
	return t.Format("02 Jan 2006")
}

// DateLong formats a YYYY-MM-DD key as "20 May 2024" with the full month name.
func (f *Formatter) DateLong(key string) string {
	t, err := model.ParseDateKey(key, f.loc)
	if err != nil {
		return key
	}
	return t.Format("02 January 2006")
}

// Short formats a YYYY-MM-DD key as "20 May".
func (f *Formatter) Short(key string) string {
	t, err := model.ParseDateKey(key, f.loc)
	if err != nil {
		return key
	}
	return t.Format("02 Jan")
}

func (f *Formatter) DateOf(t time.Time) string {
	return t.In(f.loc).Format("02 Jan 2006")
}

func (f *Formatter) DateTime(t time.Time) string {
	return t.In(f.loc).Format("02 Jan 2006 15:04")
}
