package chapters

import (
	"regexp"
	"slices"
	"strings"

	"autoqpf/models"
)

// Kind is the structural variant of a set of chapter markers.
type Kind int

const (
	None     Kind = iota // no chapter track
	Named                // free-text labels
	Numbered             // every label reads "Chapter <N>"
	Tagged               // labels carry their own timecodes
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Named:
		return "named"
	case Numbered:
		return "numbered"
	case Tagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// Variant is a classified set of chapter entries.
//
// StartNum and EndNum are only set for Numbered: the first chapter number
// found scanning the labels forward, and the first found scanning them
// in reverse.
type Variant struct {
	Kind     Kind
	Entries  []models.ChapterEntry
	StartNum string
	EndNum   string
}

var (
	taggedPattern   = regexp.MustCompile(`\d+:\d+:\d+\.\d+`)
	numberedPattern = regexp.MustCompile(`(?i)chapter\s*(\d+)`)
)

// Classify detects which variant the entries are.
//
// Tagged wins over Numbered, which wins over Named. No entries is None.
func Classify(entries []models.ChapterEntry) Variant {
	if len(entries) == 0 {
		return Variant{Kind: None}
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	forward := strings.Join(labels, " ")
	slices.Reverse(labels)
	reverse := strings.Join(labels, " ")

	if taggedPattern.MatchString(forward) {
		return Variant{Kind: Tagged, Entries: entries}
	}

	first := numberedPattern.FindStringSubmatch(forward)
	last := numberedPattern.FindStringSubmatch(reverse)
	if first == nil || last == nil {
		return Variant{Kind: Named, Entries: entries}
	}

	return Variant{
		Kind:     Numbered,
		Entries:  entries,
		StartNum: first[1],
		EndNum:   last[1],
	}
}
