package chapters

import (
	"fmt"
	"regexp"
	"strings"

	"autoqpf/models"
)

var languagePrefix = regexp.MustCompile(`^([a-zA-Z]{2,3}:(\s*)?){1,2}`)

// CleanLabel strips up to two leading language codes ("eng: ", "en:fr:")
// from a label that contains a colon.
func CleanLabel(label string) string {
	if !strings.Contains(label, ":") {
		return label
	}
	return strings.TrimSpace(languagePrefix.ReplaceAllString(label, ""))
}

// Extract converts a detected variant into chapters ready to be written.
//
// Numbered chapters that do not start at 01 are renamed Chapter 01..NN in
// their original order. The renaming reads the number from the second
// space-separated word of the first label; when that word is missing the
// variant cannot be trusted and ok is false, so the caller should
// synthesize instead.
func Extract(v Variant) (chapters []models.Chapter, ok bool) {
	renumber := false
	if v.Kind == Numbered {
		if len(v.Entries) == 0 {
			return nil, false
		}
		words := strings.Split(v.Entries[0].Label, " ")
		if len(words) < 2 {
			return nil, false
		}
		renumber = strings.TrimSpace(words[1]) != "01"
	}

	chapters = make([]models.Chapter, len(v.Entries))
	for i, e := range v.Entries {
		name := CleanLabel(e.Label)
		if renumber {
			name = placeholderName(i + 1)
		}
		chapters[i] = models.Chapter{Timecode: e.Timecode, Name: name}
	}
	return chapters, true
}

func placeholderName(num int) string {
	return fmt.Sprintf("Chapter %02d", num)
}
