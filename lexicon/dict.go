// Package lexicon resolves text into timed phoneme sequences: a
// pronunciation dictionary for whole words, letter substitution rules
// for everything else.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iso226/sinewave-go/phoneme"
)

// Dictionary holds word-to-pronunciation mappings. Dictionaries are
// read-only once built; the engine never mutates them during analysis.
type Dictionary struct {
	Entries map[string][]phoneme.Phoneme
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string][]phoneme.Phoneme),
	}
}

// Add sets the pronunciation for a word. The word is stored lowercase.
func (d *Dictionary) Add(word string, phonemes []phoneme.Phoneme) {
	d.Entries[strings.ToLower(word)] = phonemes
}

// Lookup returns the pronunciation for a word.
func (d *Dictionary) Lookup(word string) ([]phoneme.Phoneme, bool) {
	ph, ok := d.Entries[word]
	return ph, ok
}

// Load reads a pronunciation dictionary from a tab-separated stream.
// Format: word<TAB>phoneme1 phoneme2 phoneme3 ...
// Lines starting with # and blank lines are skipped. Phonemes outside
// the closed set are rejected.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 tab-separated fields, got %d", lineNum, len(parts))
		}

		word := parts[0]
		phonemeStrs := strings.Fields(parts[1])
		if len(phonemeStrs) == 0 {
			return nil, fmt.Errorf("line %d: empty pronunciation for %q", lineNum, word)
		}

		phonemes := make([]phoneme.Phoneme, len(phonemeStrs))
		for i, s := range phonemeStrs {
			ph := phoneme.Phoneme(s)
			if !ph.Known() {
				return nil, fmt.Errorf("line %d: unknown phoneme %q in %q", lineNum, s, word)
			}
			phonemes[i] = ph
		}

		d.Add(word, phonemes)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// defaultEntries lists pronunciations for common words the letter rules
// get wrong.
var defaultEntries = map[string][]phoneme.Phoneme{
	"hello": p(phoneme.PhonHH, phoneme.PhonAH, phoneme.PhonL, phoneme.PhonOW),
	"world": p(phoneme.PhonW, phoneme.PhonER, phoneme.PhonL, phoneme.PhonD),

	"a":      p(phoneme.PhonAH),
	"about":  p(phoneme.PhonAH, phoneme.PhonB, phoneme.PhonAW, phoneme.PhonT),
	"all":    p(phoneme.PhonAO, phoneme.PhonL),
	"and":    p(phoneme.PhonAE, phoneme.PhonN, phoneme.PhonD),
	"are":    p(phoneme.PhonAA, phoneme.PhonR),
	"be":     p(phoneme.PhonB, phoneme.PhonIY),
	"by":     p(phoneme.PhonB, phoneme.PhonAY),
	"come":   p(phoneme.PhonK, phoneme.PhonAH, phoneme.PhonM),
	"could":  p(phoneme.PhonK, phoneme.PhonUH, phoneme.PhonD),
	"do":     p(phoneme.PhonD, phoneme.PhonUW),
	"does":   p(phoneme.PhonD, phoneme.PhonAH, phoneme.PhonZ),
	"done":   p(phoneme.PhonD, phoneme.PhonAH, phoneme.PhonN),
	"from":   p(phoneme.PhonF, phoneme.PhonR, phoneme.PhonAH, phoneme.PhonM),
	"give":   p(phoneme.PhonG, phoneme.PhonIH, phoneme.PhonV),
	"good":   p(phoneme.PhonG, phoneme.PhonUH, phoneme.PhonD),
	"have":   p(phoneme.PhonHH, phoneme.PhonAE, phoneme.PhonV),
	"he":     p(phoneme.PhonHH, phoneme.PhonIY),
	"hear":   p(phoneme.PhonHH, phoneme.PhonIY, phoneme.PhonR),
	"here":   p(phoneme.PhonHH, phoneme.PhonIY, phoneme.PhonR),
	"how":    p(phoneme.PhonHH, phoneme.PhonAW),
	"know":   p(phoneme.PhonN, phoneme.PhonOW),
	"like":   p(phoneme.PhonL, phoneme.PhonAY, phoneme.PhonK),
	"live":   p(phoneme.PhonL, phoneme.PhonIH, phoneme.PhonV),
	"love":   p(phoneme.PhonL, phoneme.PhonAH, phoneme.PhonV),
	"make":   p(phoneme.PhonM, phoneme.PhonEY, phoneme.PhonK),
	"me":     p(phoneme.PhonM, phoneme.PhonIY),
	"more":   p(phoneme.PhonM, phoneme.PhonAO, phoneme.PhonR),
	"move":   p(phoneme.PhonM, phoneme.PhonUW, phoneme.PhonV),
	"my":     p(phoneme.PhonM, phoneme.PhonAY),
	"name":   p(phoneme.PhonN, phoneme.PhonEY, phoneme.PhonM),
	"no":     p(phoneme.PhonN, phoneme.PhonOW),
	"now":    p(phoneme.PhonN, phoneme.PhonAW),
	"of":     p(phoneme.PhonAH, phoneme.PhonV),
	"once":   p(phoneme.PhonW, phoneme.PhonAH, phoneme.PhonN, phoneme.PhonS),
	"one":    p(phoneme.PhonW, phoneme.PhonAH, phoneme.PhonN),
	"people": p(phoneme.PhonP, phoneme.PhonIY, phoneme.PhonP, phoneme.PhonAH, phoneme.PhonL),
	"said":   p(phoneme.PhonS, phoneme.PhonEH, phoneme.PhonD),
	"she":    p(phoneme.PhonSH, phoneme.PhonIY),
	"should": p(phoneme.PhonSH, phoneme.PhonUH, phoneme.PhonD),
	"so":     p(phoneme.PhonS, phoneme.PhonOW),
	"some":   p(phoneme.PhonS, phoneme.PhonAH, phoneme.PhonM),
	"speech": p(phoneme.PhonS, phoneme.PhonP, phoneme.PhonIY, phoneme.PhonCH),
	"take":   p(phoneme.PhonT, phoneme.PhonEY, phoneme.PhonK),
	"thank":  p(phoneme.PhonTH, phoneme.PhonAE, phoneme.PhonNG, phoneme.PhonK),
	"that":   p(phoneme.PhonDH, phoneme.PhonAE, phoneme.PhonT),
	"the":    p(phoneme.PhonDH, phoneme.PhonAH),
	"there":  p(phoneme.PhonDH, phoneme.PhonEH, phoneme.PhonR),
	"they":   p(phoneme.PhonDH, phoneme.PhonEY),
	"this":   p(phoneme.PhonDH, phoneme.PhonIH, phoneme.PhonS),
	"time":   p(phoneme.PhonT, phoneme.PhonAY, phoneme.PhonM),
	"to":     p(phoneme.PhonT, phoneme.PhonUW),
	"try":    p(phoneme.PhonT, phoneme.PhonR, phoneme.PhonAY),
	"two":    p(phoneme.PhonT, phoneme.PhonUW),
	"voice":  p(phoneme.PhonV, phoneme.PhonOY, phoneme.PhonS),
	"was":    p(phoneme.PhonW, phoneme.PhonAH, phoneme.PhonZ),
	"water":  p(phoneme.PhonW, phoneme.PhonAO, phoneme.PhonT, phoneme.PhonER),
	"wave":   p(phoneme.PhonW, phoneme.PhonEY, phoneme.PhonV),
	"we":     p(phoneme.PhonW, phoneme.PhonIY),
	"were":   p(phoneme.PhonW, phoneme.PhonER),
	"what":   p(phoneme.PhonW, phoneme.PhonAH, phoneme.PhonT),
	"where":  p(phoneme.PhonW, phoneme.PhonEH, phoneme.PhonR),
	"who":    p(phoneme.PhonHH, phoneme.PhonUW),
	"why":    p(phoneme.PhonW, phoneme.PhonAY),
	"with":   p(phoneme.PhonW, phoneme.PhonIH, phoneme.PhonDH),
	"would":  p(phoneme.PhonW, phoneme.PhonUH, phoneme.PhonD),
	"you":    p(phoneme.PhonY, phoneme.PhonUW),
	"your":   p(phoneme.PhonY, phoneme.PhonAO, phoneme.PhonR),
}

var defaultDict = &Dictionary{Entries: defaultEntries}

// Default returns the built-in pronunciation dictionary covering common
// words the letter rules mispronounce. The returned dictionary is shared;
// treat it as read-only.
func Default() *Dictionary {
	return defaultDict
}
