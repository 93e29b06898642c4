package lexicon

import (
	"strings"
	"unicode"

	"github.com/iso226/sinewave-go/phoneme"
)

// TextToPhonemes converts text into a timed phoneme sequence. Each word
// is resolved through the dictionary first, then through the letter
// substitution rules; a word-gap silence is inserted between words.
// Durations come from the phonetic class of each phoneme. The result is
// deterministic for a given text and dictionary.
func TextToPhonemes(text string, dict *Dictionary) []phoneme.Unit {
	var units []phoneme.Unit
	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := stripNonLetters(field)
		if word == "" {
			continue
		}

		var seq []phoneme.Phoneme
		if dict != nil {
			if ph, ok := dict.Lookup(word); ok {
				seq = ph
			}
		}
		if seq == nil {
			seq = WordToPhonemes(word)
		}
		if len(seq) == 0 {
			continue
		}

		if len(units) > 0 {
			units = append(units, phoneme.Unit{Phoneme: phoneme.PhonSIL, Duration: phoneme.WordGap})
		}
		for _, ph := range seq {
			units = append(units, phoneme.Unit{Phoneme: ph, Duration: ph.Duration()})
		}
	}
	return units
}

func stripNonLetters(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}
