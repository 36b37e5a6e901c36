package mailtemplate

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"
)

// All copy is fixed to the fr-FR locale, matching the site.

var frenchDays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDateLong renders a timestamp the way fr-FR spells out a full date,
// e.g. "vendredi 29 août 2025 à 14:30".
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d à %02d:%02d",
		frenchDays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year(),
		t.Hour(), t.Minute())
}

// FormatDateShort renders a compact fr-FR timestamp, e.g. "29/08/2025 14:30:05".
func FormatDateShort(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// FormatAriary renders an amount in ariary with fr-FR thousands grouping,
// e.g. 45000 -> "45 000 Ar".
func FormatAriary(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if hasFrac {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out + " Ar"
}

// nl2br escapes user text and converts newlines to <br> so multiline
// messages keep their shape in the HTML body. Escaping happens before the
// <br> insertion; submitted markup never reaches the document live.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
