// ABOUTME: Normalizes a scraped dictionary entry page into a DefinitionResult
package cambridge

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"definex/domain"
)

// ParseEntry extracts the canonical result from a dictionary entry page.
// Returns nil when the page has no headword (unknown word, consent page,
// layout change).
func ParseEntry(doc *goquery.Document, siteURL string) *domain.DefinitionResult {
	word := strings.TrimSpace(doc.Find(".hw.dhw").First().Text())
	if word == "" {
		return nil
	}

	return &domain.DefinitionResult{
		Word:           word,
		PartsOfSpeech:  parsePartsOfSpeech(doc),
		Pronunciations: parsePronunciations(doc, siteURL),
		Definitions:    parseDefinitions(doc),
	}
}

// parsePartsOfSpeech collects the distinct part-of-speech labels in page order.
func parsePartsOfSpeech(doc *goquery.Document) []string {
	var pos []string
	seen := map[string]bool{}
	doc.Find(".pos.dpos").Each(func(_ int, s *goquery.Selection) {
		p := strings.TrimSpace(s.Text())
		if p != "" && !seen[p] {
			seen[p] = true
			pos = append(pos, p)
		}
	})
	return pos
}

// parsePronunciations walks the entry headers and collects one block per
// accent variant that carries an audio source.
func parsePronunciations(doc *goquery.Document, siteURL string) []domain.Pronunciation {
	var prons []domain.Pronunciation
	doc.Find(".pos-header.dpos-h").Each(func(_ int, header *goquery.Selection) {
		header.Find("span.dpron-i").Each(func(_ int, block *goquery.Selection) {
			src, ok := block.Find("audio source").First().Attr("src")
			if !ok || src == "" {
				return
			}
			prons = append(prons, domain.Pronunciation{
				Lang:     strings.TrimSpace(block.Find(".region").First().Text()),
				IPA:      strings.TrimSpace(block.Find(".pron").First().Text()),
				AudioURL: resolveAudioURL(siteURL, src),
			})
		})
	})
	return prons
}

func resolveAudioURL(siteURL, src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	return siteURL + src
}

func parseDefinitions(doc *goquery.Document) []domain.DefinitionBlock {
	var defs []domain.DefinitionBlock
	doc.Find(".def-block.ddef_block").Each(func(_ int, block *goquery.Selection) {
		text := strings.TrimSpace(block.Find(".def.ddef_d.db").First().Text())
		if text == "" {
			return
		}

		// Part of speech comes from the enclosing entry, not the block
		pos := strings.TrimSpace(block.Closest(".pr.entry-body__el").Find(".pos.dpos").First().Text())
		if pos == "" {
			pos = "unknown"
		}

		def := domain.DefinitionBlock{
			PartOfSpeech: pos,
			Text:         text,
			Translation:  strings.TrimSpace(block.Find(".def-body.ddef_b > span.trans.dtrans").First().Text()),
		}

		block.Find(".def-body.ddef_b > .examp.dexamp").Each(func(_ int, ex *goquery.Selection) {
			example := domain.Example{
				Text:        strings.TrimSpace(ex.Find(".eg.deg").First().Text()),
				Translation: strings.TrimSpace(ex.Find(".trans.dtrans").First().Text()),
			}
			if example.Text != "" {
				def.Examples = append(def.Examples, example)
			}
		})

		defs = append(defs, def)
	})
	return defs
}
