// Package lineparse turns a pasted block of free text into structured
// task import candidates. Accepted line shapes:
//
//	number\ttitle description (URGENTE)
//	number\ttitle description\tdd/mm/yyyy
//	number  title description
//	title description
//
// Parsing is intentionally lenient: it reconstructs what the user most
// likely meant rather than enforcing a strict grammar.
package lineparse

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Priority values a candidate can carry.
const (
	PriorityMedium = "medium"
	PriorityUrgent = "urgent"
)

// Candidate is one prospective task extracted from pasted text.
type Candidate struct {
	Number     *int       // explicit task number, nil when the line had none
	Title      string     // non-empty after trimming and tag stripping
	Priority   string     // "medium" unless an urgency marker was found
	OccurredOn *time.Time // trailing date column, nil when absent
}

var (
	// First run of a tab or >=2 consecutive spaces separates number from title.
	fieldSep = regexp.MustCompile(`\t|\s{2,}`)
	// Fallback: leading digits, whitespace, rest of line.
	leadingNumber = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	// Trailing urgency marker; everything from the marker onward is discarded.
	urgentMarker = regexp.MustCompile(`(?i)\(URGENTE\)`)
)

// Candidates returns a lazy sequence of candidates in input order.
// Blank lines and lines that reduce to an empty title are skipped.
// The sequence is restartable: each range re-scans the text.
func Candidates(text string) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for line := range strings.SplitSeq(text, "\n") {
			c, ok := parseLine(strings.TrimSpace(line))
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Parse collects all candidates from text into a slice.
func Parse(text string) []Candidate {
	var out []Candidate
	for c := range Candidates(text) {
		out = append(out, c)
	}
	return out
}

// parseLine parses one trimmed, non-empty line. The step order matters:
// date stripping runs before number splitting, which runs before urgency
// stripping, because each step operates on the previous step's output.
func parseLine(line string) (Candidate, bool) {
	if line == "" {
		return Candidate{}, false
	}

	// Tab columns first: a trailing date column is extracted before any
	// other interpretation of the line.
	tabParts := strings.Split(line, "\t")
	var occurredOn *time.Time
	if len(tabParts) >= 2 {
		if d, ok := parseDate(tabParts[len(tabParts)-1]); ok {
			occurredOn = &d
			tabParts = tabParts[:len(tabParts)-1]
		}
	}
	rejoined := strings.Join(tabParts, "\t")

	// Split into number + title on the first tab or double-space run,
	// falling back to a leading digit run, falling back to title-only.
	var number *int
	title := rejoined

	parts := fieldSep.Split(rejoined, 2)
	if len(parts) < 2 {
		if m := leadingNumber.FindStringSubmatch(rejoined); m != nil {
			parts = []string{m[1], m[2]}
		}
	}
	if len(parts) == 2 {
		if n, ok := parseAllDigits(parts[0]); ok {
			number = &n
			title = parts[1]
		}
		// Non-numeric first field: keep the whole rejoined line as the
		// title so no text is lost.
	}

	priority := PriorityMedium
	if loc := urgentMarker.FindStringIndex(title); loc != nil {
		priority = PriorityUrgent
		title = title[:loc[0]]
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return Candidate{}, false
	}

	return Candidate{
		Number:     number,
		Title:      title,
		Priority:   priority,
		OccurredOn: occurredOn,
	}, true
}

// parseAllDigits parses s as a positive integer iff it is entirely digits.
func parseAllDigits(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
