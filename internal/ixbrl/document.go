package ixbrl

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fact is one inline-XBRL tag lifted out of the document: a taxonomy-qualified
// name, the reporting context it belongs to, and its raw text content.
type Fact struct {
	Name     string
	Context  string
	TupleRef string
	Scale    int
	Text     string
	Numeric  bool
}

// Document is a parsed iXBRL filing. The tag lists are built once at parse
// time and are immutable afterwards; lookups are linear scans in document
// order, which is plenty for filings of a few thousand tags. A Document is
// safe for repeated queries but not built for concurrent sessions.
type Document struct {
	numeric []Fact // ix:nonfraction tags
	text    []Fact // ix:nonnumeric tags
}

// Parse reads an iXBRL XHTML document and collects its tagged facts.
// A document without any recognisable facts still parses successfully;
// downstream extraction degrades to absent values.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	d := &Document{}
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "ix:nonfraction":
			d.numeric = append(d.numeric, newFact(s, true))
		case "ix:nonnumeric":
			d.text = append(d.text, newFact(s, false))
		}
	})

	return d, nil
}

func newFact(s *goquery.Selection, numeric bool) Fact {
	scale := 0
	if raw, ok := s.Attr("scale"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			scale = n
		}
	}
	return Fact{
		Name:     s.AttrOr("name", ""),
		Context:  s.AttrOr("contextref", ""),
		TupleRef: s.AttrOr("tupleref", ""),
		Scale:    scale,
		Text:     strings.TrimSpace(s.Text()),
		Numeric:  numeric,
	}
}

// FactCount returns the total number of tagged facts found in the document
func (d *Document) FactCount() int {
	return len(d.numeric) + len(d.text)
}

// NumericFact resolves a numeric fact by trying each candidate taxonomy name
// in priority order. Matching is case-insensitive substring on the tag name,
// with an exact context match when context is non-empty; the first tag in
// document order wins. An unparsable value means the candidate is absent, not
// an error — extraction is best-effort per fact.
func (d *Document) NumericFact(context string, names ...string) (int64, bool) {
	for _, name := range names {
		for _, f := range d.numeric {
			if !matches(f, name, context) {
				continue
			}
			if v, ok := parseAmount(f.Text, f.Scale); ok {
				return v, true
			}
			break // first match wins per candidate; fall through to next name
		}
	}
	return 0, false
}

// TextFact resolves a text fact by candidate names; the trimmed tag content is
// returned verbatim. Absent when no candidate matches or the match is empty.
func (d *Document) TextFact(context string, names ...string) (string, bool) {
	for _, name := range names {
		for _, f := range d.text {
			if matches(f, name, context) {
				return f.Text, f.Text != ""
			}
		}
	}
	return "", false
}

// TextFacts returns every text fact whose name contains the pattern, in
// document order. Used for signature blocks where one name pattern repeats
// once per person.
func (d *Document) TextFacts(namePattern string) []Fact {
	var out []Fact
	for _, f := range d.text {
		if matches(f, namePattern, "") {
			out = append(out, f)
		}
	}
	return out
}

// TextFactByTuple finds the first text fact matching the name pattern within
// the given tuple group. Signature first/last/role tags share a tupleRef.
func (d *Document) TextFactByTuple(namePattern, tupleRef string) (string, bool) {
	for _, f := range d.text {
		if f.TupleRef == tupleRef && matches(f, namePattern, "") {
			return f.Text, f.Text != ""
		}
	}
	return "", false
}

func matches(f Fact, namePattern, context string) bool {
	if f.Name == "" {
		return false
	}
	if !strings.Contains(strings.ToLower(f.Name), strings.ToLower(namePattern)) {
		return false
	}
	if context != "" && f.Context != context {
		return false
	}
	return true
}

// parseAmount normalises Swedish filing number formatting: embedded spaces
// (regular and non-breaking) as thousand separators, decimal comma, and the
// typographic minus U+2212. The declared power-of-ten scale is applied and
// the result truncated to an integer amount.
func parseAmount(raw string, scale int) (int64, bool) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		case ',':
			return '.'
		case '−':
			return '-'
		}
		return r
	}, raw)

	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return int64(f * math.Pow10(scale)), true
}
