package lexicon

import "github.com/iso226/sinewave-go/phoneme"

// p is a shorthand to build a phoneme slice.
func p(ps ...phoneme.Phoneme) []phoneme.Phoneme { return ps }

// letterRules maps letter groups to phoneme sequences. Trigraphs are
// checked before digraphs, digraphs before single letters (longest match).
var letterRules = []struct {
	letters  string
	phonemes []phoneme.Phoneme
}{
	// Trigraphs
	{"igh", p(phoneme.PhonAY)},
	{"tch", p(phoneme.PhonCH)},
	{"dge", p(phoneme.PhonJH)},
	{"air", p(phoneme.PhonEH, phoneme.PhonR)},
	{"ing", p(phoneme.PhonIH, phoneme.PhonNG)},
	{"sch", p(phoneme.PhonS, phoneme.PhonK)},

	// Digraphs: consonant clusters
	{"ch", p(phoneme.PhonCH)},
	{"sh", p(phoneme.PhonSH)},
	{"th", p(phoneme.PhonTH)},
	{"ph", p(phoneme.PhonF)},
	{"wh", p(phoneme.PhonW)},
	{"ck", p(phoneme.PhonK)},
	{"ng", p(phoneme.PhonNG)},
	{"qu", p(phoneme.PhonK, phoneme.PhonW)},

	// Digraphs: vowel teams
	{"ee", p(phoneme.PhonIY)},
	{"ea", p(phoneme.PhonIY)},
	{"ey", p(phoneme.PhonIY)},
	{"oo", p(phoneme.PhonUW)},
	{"ou", p(phoneme.PhonAW)},
	{"ow", p(phoneme.PhonOW)},
	{"oa", p(phoneme.PhonOW)},
	{"ay", p(phoneme.PhonEY)},
	{"ai", p(phoneme.PhonEY)},
	{"oy", p(phoneme.PhonOY)},
	{"oi", p(phoneme.PhonOY)},
	{"au", p(phoneme.PhonAO)},
	{"aw", p(phoneme.PhonAO)},

	// Digraphs: r-colored vowels
	{"ar", p(phoneme.PhonAA, phoneme.PhonR)},
	{"or", p(phoneme.PhonAO, phoneme.PhonR)},
	{"er", p(phoneme.PhonER)},
	{"ir", p(phoneme.PhonER)},
	{"ur", p(phoneme.PhonER)},

	// Digraphs: doubled consonants
	{"bb", p(phoneme.PhonB)},
	{"cc", p(phoneme.PhonK)},
	{"dd", p(phoneme.PhonD)},
	{"ff", p(phoneme.PhonF)},
	{"gg", p(phoneme.PhonG)},
	{"ll", p(phoneme.PhonL)},
	{"mm", p(phoneme.PhonM)},
	{"nn", p(phoneme.PhonN)},
	{"pp", p(phoneme.PhonP)},
	{"rr", p(phoneme.PhonR)},
	{"ss", p(phoneme.PhonS)},
	{"tt", p(phoneme.PhonT)},
	{"zz", p(phoneme.PhonZ)},

	// Single letters
	{"a", p(phoneme.PhonAE)},
	{"b", p(phoneme.PhonB)},
	{"c", p(phoneme.PhonK)},
	{"d", p(phoneme.PhonD)},
	{"e", p(phoneme.PhonEH)},
	{"f", p(phoneme.PhonF)},
	{"g", p(phoneme.PhonG)},
	{"h", p(phoneme.PhonHH)},
	{"i", p(phoneme.PhonIH)},
	{"j", p(phoneme.PhonJH)},
	{"k", p(phoneme.PhonK)},
	{"l", p(phoneme.PhonL)},
	{"m", p(phoneme.PhonM)},
	{"n", p(phoneme.PhonN)},
	{"o", p(phoneme.PhonAA)},
	{"p", p(phoneme.PhonP)},
	{"q", p(phoneme.PhonK)},
	{"r", p(phoneme.PhonR)},
	{"s", p(phoneme.PhonS)},
	{"t", p(phoneme.PhonT)},
	{"u", p(phoneme.PhonAH)},
	{"v", p(phoneme.PhonV)},
	{"w", p(phoneme.PhonW)},
	{"x", p(phoneme.PhonK, phoneme.PhonS)},
	{"y", p(phoneme.PhonY)},
	{"z", p(phoneme.PhonZ)},
}

// ruleMapN index the rules by letter-group length for fast lookup.
// Built at init time from letterRules.
var ruleMap3 map[string][]phoneme.Phoneme
var ruleMap2 map[string][]phoneme.Phoneme
var ruleMap1 map[string][]phoneme.Phoneme

func init() {
	ruleMap3 = make(map[string][]phoneme.Phoneme)
	ruleMap2 = make(map[string][]phoneme.Phoneme)
	ruleMap1 = make(map[string][]phoneme.Phoneme)
	for _, e := range letterRules {
		switch len(e.letters) {
		case 3:
			ruleMap3[e.letters] = e.phonemes
		case 2:
			ruleMap2[e.letters] = e.phonemes
		default:
			ruleMap1[e.letters] = e.phonemes
		}
	}
}

// WordToPhonemes converts a lowercase word to a phoneme sequence using
// the letter substitution rules, greedily matching the longest group at
// each position. Unknown characters are silently skipped.
func WordToPhonemes(word string) []phoneme.Phoneme {
	runes := []rune(word)
	var result []phoneme.Phoneme
	for i := 0; i < len(runes); {
		if i+2 < len(runes) {
			if ph, ok := ruleMap3[string(runes[i:i+3])]; ok {
				result = append(result, ph...)
				i += 3
				continue
			}
		}
		if i+1 < len(runes) {
			if ph, ok := ruleMap2[string(runes[i:i+2])]; ok {
				result = append(result, ph...)
				i += 2
				continue
			}
		}
		if ph, ok := ruleMap1[string(runes[i:i+1])]; ok {
			result = append(result, ph...)
		}
		i++
	}
	return result
}
