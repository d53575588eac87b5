package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the minimum similarity ratio for a title to count
// as a match.
const DefaultThreshold = 0.7

var raceIDPattern = regexp.MustCompile(`r=(\d+)`)

// candidate is a scored anchor from the search page. Discarded once the
// best one is selected.
type candidate struct {
	id    int
	title string
	ratio float64
}

// RaceID resolves query against the search-results html using
// DefaultThreshold. Returns false if no title matches well enough.
func RaceID(query, html string) (int, bool) {
	return RaceIDThreshold(query, html, DefaultThreshold)
}

// RaceIDThreshold scans html for race anchors (href containing
// "race.php?r=") with a non-empty title attribute, scores each normalized
// title against the normalized query, and returns the id of the candidate
// with the highest ratio at or above threshold. Ties keep the candidate
// appearing first in document order.
//
// Malformed markup never fails: the HTML parser is lenient, and a document
// with no matching anchors simply resolves to no match.
func RaceIDThreshold(query, html string, threshold float64) (int, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, false
	}

	normQuery := Normalize(query)
	var best *candidate

	doc.Find(`a[href*="race.php?r="]`).Each(func(i int, sel *goquery.Selection) {
		title, _ := sel.Attr("title")
		if title == "" {
			return
		}

		ratio := Ratio(normQuery, Normalize(title))
		if ratio < threshold {
			return
		}

		href, _ := sel.Attr("href")
		m := raceIDPattern.FindStringSubmatch(href)
		if m == nil {
			return
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}

		// Strict greater-than keeps the first candidate on ties.
		if best == nil || ratio > best.ratio {
			best = &candidate{id: id, title: title, ratio: ratio}
		}
	})

	if best == nil {
		return 0, false
	}
	return best.id, true
}

// Ratio computes the gestalt sequence-matching similarity of two strings
// in [0,1]: twice the number of matching characters over the combined
// length, with matches found as longest contiguous blocks. Contiguous runs
// weigh more than scattered character overlap.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
