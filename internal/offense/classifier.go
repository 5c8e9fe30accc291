// Package offense classifies free-text statute citations into offense
// categories via a static (title, chapter) lookup table.
package offense

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// CategoryNA is returned for citations that parse but match no table entry.
const CategoryNA = "NA"

// Classifier maps statute citations to offense categories. The table is
// immutable after construction; a Classifier is safe for concurrent use.
type Classifier struct {
	table  map[Key]string
	logger *log.Logger
}

// NewClassifier builds a classifier over the given table. A nil table means
// DefaultTable. A nil logger means the process default.
func NewClassifier(table map[Key]string, logger *log.Logger) *Classifier {
	if table == nil {
		table = DefaultTable()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Classifier{table: table, logger: logger}
}

// citationCleaner maps statute punctuation to spaces so citations like
// "18 § 2702" or "35 § 780-113" split into plain tokens.
var citationCleaner = strings.NewReplacer(".", " ", "-", " ", "§", " ")

// ParseCitation parses a statute citation into its (title, chapter) key.
// The first token is the title; the chapter derives from the second token
// under title-specific conventions:
//
//   - title 0: chapter forced to 0 (unknown-statute sentinel)
//   - title 18: first two digits when the token has exactly four digits,
//     otherwise the first digit
//   - title 35: the entire token
//   - title 75: selected by numeric range (DUI-era renumbering), falling
//     back to the first two digits from 3800 up
//   - anything else: first two digits
func ParseCitation(citation string) (Key, error) {
	tokens := strings.Fields(citationCleaner.Replace(citation))
	if len(tokens) < 2 {
		return Key{}, fmt.Errorf("citation %q: need title and section", citation)
	}
	title, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Key{}, fmt.Errorf("citation %q: malformed title: %w", citation, err)
	}

	section := leadingDigits(tokens[1])
	if title != 0 && section == "" {
		return Key{}, fmt.Errorf("citation %q: malformed section %q", citation, tokens[1])
	}

	var chapter string
	switch {
	case title == 0:
		chapter = "0"
	case title == 18:
		if len(section) == 4 {
			chapter = section[:2]
		} else {
			chapter = section[:1]
		}
	case title == 35:
		chapter = section
	case title == 75:
		v, _ := strconv.Atoi(section)
		switch {
		case v <= 3731:
			chapter = "1"
		case v < 3741:
			chapter = "2"
		case v < 3800:
			chapter = "3"
		default:
			chapter = firstTwo(section)
		}
	default:
		chapter = firstTwo(section)
	}

	ch, err := strconv.Atoi(chapter)
	if err != nil {
		return Key{}, fmt.Errorf("citation %q: malformed chapter %q", citation, chapter)
	}
	return Key{Title: title, Chapter: ch}, nil
}

// Classify maps a statute citation to its offense category. Malformed
// citations yield "" (the caller filters them); parsed citations missing
// from the table yield CategoryNA with a logged warning.
func (c *Classifier) Classify(citation string) string {
	key, err := ParseCitation(citation)
	if err != nil {
		return ""
	}
	category, ok := c.table[key]
	if !ok {
		c.logger.Printf("warning: no offense category for title %d chapter %d (citation %q)", key.Title, key.Chapter, citation)
		return CategoryNA
	}
	return category
}

func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}

func firstTwo(s string) string {
	if len(s) > 2 {
		return s[:2]
	}
	return s
}
