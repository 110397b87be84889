// ABOUTME: Extracts verb conjugation rows from a Wiktionary entry page
package cambridge

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"definex/domain"
)

// ParseVerbTable reads the conjugation table. The table cells render as
// alternating label/form text lines, so the lines are scanned pairwise. An
// incomplete trailing pair is skipped.
func ParseVerbTable(doc *goquery.Document) []domain.VerbForm {
	var lines []string
	doc.Find("tr > td > p").Each(func(_ int, p *goquery.Selection) {
		for _, line := range strings.Split(p.Text(), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	})

	verbs := []domain.VerbForm{}
	for i := 0; i+1 < len(lines); i += 2 {
		verbs = append(verbs, domain.VerbForm{Type: lines[i], Text: lines[i+1]})
	}
	return verbs
}
