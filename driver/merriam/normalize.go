// ABOUTME: Normalizes collegiate-API JSON into a DefinitionResult
// ABOUTME: Handles the suggestion-array case, audio subdirectory rule, markup tokens
package merriam

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"definex/domain"
)

// wireEntry mirrors the fields of a collegiate entry this proxy consumes.
type wireEntry struct {
	Meta struct {
		ID string `json:"id"`
	} `json:"meta"`
	Hwi struct {
		Prs []struct {
			MW    string `json:"mw"`
			Sound struct {
				Audio string `json:"audio"`
			} `json:"sound"`
		} `json:"prs"`
	} `json:"hwi"`
	Fl       string   `json:"fl"`
	Shortdef []string `json:"shortdef"`
	Suppl    struct {
		Examples []struct {
			T string `json:"t"`
		} `json:"examples"`
	} `json:"suppl"`
	Def []struct {
		Sseq json.RawMessage `json:"sseq"`
	} `json:"def"`
}

// Normalize converts a raw API response body into the canonical result.
// Returns nil when the body is not an entry array or its first element is not
// an object — the API answers unknown words with an array of plain-string
// spelling suggestions.
func Normalize(body []byte, audioBaseURL string) *domain.DefinitionResult {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}

	var entry wireEntry
	if err := json.Unmarshal(raw[0], &entry); err != nil {
		return nil // first element is a string suggestion, not an entry
	}
	if entry.Meta.ID == "" || len(entry.Shortdef) == 0 {
		return nil
	}

	// Homograph suffix ("word:1") is display noise
	word := strings.SplitN(entry.Meta.ID, ":", 2)[0]

	pos := entry.Fl
	if pos == "" {
		pos = "unknown"
	}

	result := &domain.DefinitionResult{
		Word:          word,
		PartsOfSpeech: []string{pos},
		Definitions: []domain.DefinitionBlock{{
			PartOfSpeech: pos,
			Text:         entry.Shortdef[0],
		}},
	}

	if len(entry.Hwi.Prs) > 0 {
		pr := entry.Hwi.Prs[0]
		pron := domain.Pronunciation{Lang: "us"}
		if pr.MW != "" {
			pron.IPA = "/" + pr.MW + "/"
		}
		if pr.Sound.Audio != "" {
			pron.AudioURL = audioURL(audioBaseURL, pr.Sound.Audio)
		}
		if pron.IPA != "" || pron.AudioURL != "" {
			result.Pronunciations = []domain.Pronunciation{pron}
		}
	}

	if ex := firstExample(&entry); ex != "" {
		result.Definitions[0].Examples = []domain.Example{{Text: ex}}
	}

	return result
}

var leadingDigitPattern = regexp.MustCompile(`^_[0-9]`)

// audioURL applies the documented audio subdirectory rule: files starting
// with "bix" or "gg" get those subdirectories, files starting with an
// underscore-digit go under "number", everything else under its first letter.
func audioURL(base, audioFile string) string {
	var subdir string
	switch {
	case strings.HasPrefix(audioFile, "bix"):
		subdir = "bix"
	case strings.HasPrefix(audioFile, "gg"):
		subdir = "gg"
	case leadingDigitPattern.MatchString(audioFile):
		subdir = "number"
	default:
		subdir = audioFile[:1]
	}
	return fmt.Sprintf("%s/%s/%s.mp3", base, subdir, audioFile)
}

var markupTokenPattern = regexp.MustCompile(`\{/?(?:it|wi)\}`)

func stripMarkupTokens(s string) string {
	return markupTokenPattern.ReplaceAllString(s, "")
}

// firstExample prefers the editorial example in suppl.examples and falls back
// to the first "vis" node buried in the sense sequence. Any structural
// surprise in the sense sequence yields no example, never an error.
func firstExample(entry *wireEntry) string {
	if len(entry.Suppl.Examples) > 0 && entry.Suppl.Examples[0].T != "" {
		return stripMarkupTokens(entry.Suppl.Examples[0].T)
	}

	if len(entry.Def) == 0 || len(entry.Def[0].Sseq) == 0 {
		return ""
	}

	// sseq is [ [ ["sense", {dt: [["text", ...], ["vis", [{t: ...}]]]} ] ] ]
	var senseGroups [][][]json.RawMessage
	if err := json.Unmarshal(entry.Def[0].Sseq, &senseGroups); err != nil {
		return ""
	}
	if len(senseGroups) == 0 || len(senseGroups[0]) == 0 || len(senseGroups[0][0]) < 2 {
		return ""
	}

	var sense struct {
		Dt []json.RawMessage `json:"dt"`
	}
	if err := json.Unmarshal(senseGroups[0][0][1], &sense); err != nil {
		return ""
	}

	for _, dtItem := range sense.Dt {
		var pair []json.RawMessage
		if err := json.Unmarshal(dtItem, &pair); err != nil || len(pair) < 2 {
			continue
		}
		var label string
		if err := json.Unmarshal(pair[0], &label); err != nil || label != "vis" {
			continue
		}
		var vis []struct {
			T string `json:"t"`
		}
		if err := json.Unmarshal(pair[1], &vis); err != nil || len(vis) == 0 {
			continue
		}
		return stripMarkupTokens(vis[0].T)
	}
	return ""
}
