// Package phoneme defines the closed general-American phoneme set used
// by the mapping fallback: phonetic classes, nominal durations and the
// static formant targets each phoneme steers the trajectory toward.
package phoneme

// Phoneme represents a general-American phoneme in ARPABET notation.
type Phoneme string

const (
	// Silence
	PhonSIL Phoneme = "SIL"

	// Vowels
	PhonAA Phoneme = "AA" // father
	PhonAE Phoneme = "AE" // bat
	PhonAH Phoneme = "AH" // but
	PhonAO Phoneme = "AO" // bought
	PhonEH Phoneme = "EH" // bet
	PhonER Phoneme = "ER" // bird
	PhonIH Phoneme = "IH" // bit
	PhonIY Phoneme = "IY" // beat
	PhonUH Phoneme = "UH" // book
	PhonUW Phoneme = "UW" // boot

	// Diphthongs
	PhonAW Phoneme = "AW" // bout
	PhonAY Phoneme = "AY" // bite
	PhonEY Phoneme = "EY" // bait
	PhonOW Phoneme = "OW" // boat
	PhonOY Phoneme = "OY" // boy

	// Sonorants (liquids, glides, nasals)
	PhonL  Phoneme = "L"
	PhonR  Phoneme = "R"
	PhonW  Phoneme = "W"
	PhonY  Phoneme = "Y"
	PhonM  Phoneme = "M"
	PhonN  Phoneme = "N"
	PhonNG Phoneme = "NG"

	// Voiced obstruents
	PhonB  Phoneme = "B"
	PhonD  Phoneme = "D"
	PhonDH Phoneme = "DH" // this
	PhonG  Phoneme = "G"
	PhonJH Phoneme = "JH" // judge
	PhonV  Phoneme = "V"
	PhonZ  Phoneme = "Z"
	PhonZH Phoneme = "ZH" // measure

	// Unvoiced obstruents
	PhonCH Phoneme = "CH"
	PhonF  Phoneme = "F"
	PhonHH Phoneme = "HH"
	PhonK  Phoneme = "K"
	PhonP  Phoneme = "P"
	PhonS  Phoneme = "S"
	PhonSH Phoneme = "SH"
	PhonT  Phoneme = "T"
	PhonTH Phoneme = "TH" // thin
)

// Class is the phonetic class a phoneme belongs to. It determines the
// nominal duration and whether the phoneme carries energy.
type Class int

const (
	ClassSilence Class = iota
	ClassVowel
	ClassSonorant
	ClassVoiced
	ClassUnvoiced
)

func (c Class) String() string {
	switch c {
	case ClassSilence:
		return "silence"
	case ClassVowel:
		return "vowel"
	case ClassSonorant:
		return "sonorant"
	case ClassVoiced:
		return "voiced"
	case ClassUnvoiced:
		return "unvoiced"
	}
	return "unknown"
}

// Nominal durations per phonetic class, in seconds.
const (
	VowelDuration    = 0.100
	SonorantDuration = 0.070
	VoicedDuration   = 0.050
	UnvoicedDuration = 0.040
	SilenceDuration  = 0.040

	// WordGap is the silence inserted between words.
	WordGap = 0.060
)

// Formants is the static (F1, F2, F3) target of a phoneme in Hz.
type Formants struct {
	F1, F2, F3 float64
}

// Unit is a phoneme with the duration it occupies on the timeline.
type Unit struct {
	Phoneme  Phoneme
	Duration float64
}

var classes = map[Phoneme]Class{
	PhonSIL: ClassSilence,

	PhonAA: ClassVowel, PhonAE: ClassVowel, PhonAH: ClassVowel,
	PhonAO: ClassVowel, PhonEH: ClassVowel, PhonER: ClassVowel,
	PhonIH: ClassVowel, PhonIY: ClassVowel, PhonUH: ClassVowel,
	PhonUW: ClassVowel,
	PhonAW: ClassVowel, PhonAY: ClassVowel, PhonEY: ClassVowel,
	PhonOW: ClassVowel, PhonOY: ClassVowel,

	PhonL: ClassSonorant, PhonR: ClassSonorant, PhonW: ClassSonorant,
	PhonY: ClassSonorant, PhonM: ClassSonorant, PhonN: ClassSonorant,
	PhonNG: ClassSonorant,

	PhonB: ClassVoiced, PhonD: ClassVoiced, PhonDH: ClassVoiced,
	PhonG: ClassVoiced, PhonJH: ClassVoiced, PhonV: ClassVoiced,
	PhonZ: ClassVoiced, PhonZH: ClassVoiced,

	PhonCH: ClassUnvoiced, PhonF: ClassUnvoiced, PhonHH: ClassUnvoiced,
	PhonK: ClassUnvoiced, PhonP: ClassUnvoiced, PhonS: ClassUnvoiced,
	PhonSH: ClassUnvoiced, PhonT: ClassUnvoiced, PhonTH: ClassUnvoiced,
}

// Vowel targets follow published adult-male formant measurements;
// diphthong targets sit between onset and offglide. Consonant values are
// locus approximations, only shaping the glide into neighboring vowels.
var formants = map[Phoneme]Formants{
	PhonSIL: {500, 1500, 2500},

	PhonAA: {730, 1090, 2440},
	PhonAE: {660, 1720, 2410},
	PhonAH: {640, 1190, 2390},
	PhonAO: {570, 840, 2410},
	PhonEH: {530, 1840, 2480},
	PhonER: {490, 1350, 1690},
	PhonIH: {390, 1990, 2550},
	PhonIY: {270, 2290, 3010},
	PhonUH: {440, 1020, 2240},
	PhonUW: {300, 870, 2240},

	PhonAW: {590, 1060, 2400},
	PhonAY: {560, 1540, 2500},
	PhonEY: {400, 2000, 2550},
	PhonOW: {470, 880, 2350},
	PhonOY: {480, 1400, 2500},

	PhonL:  {360, 1300, 2700},
	PhonR:  {310, 1060, 1380},
	PhonW:  {290, 610, 2150},
	PhonY:  {270, 2300, 3000},
	PhonM:  {250, 1100, 2200},
	PhonN:  {250, 1500, 2500},
	PhonNG: {250, 2000, 2800},

	PhonB:  {200, 900, 2100},
	PhonD:  {250, 1700, 2600},
	PhonDH: {250, 1350, 2500},
	PhonG:  {250, 1600, 2200},
	PhonJH: {250, 1700, 2400},
	PhonV:  {220, 1100, 2300},
	PhonZ:  {250, 1600, 2600},
	PhonZH: {250, 1700, 2400},

	PhonCH: {250, 1700, 2400},
	PhonF:  {220, 1100, 2300},
	PhonHH: {500, 1500, 2500},
	PhonK:  {250, 1600, 2200},
	PhonP:  {200, 900, 2100},
	PhonS:  {250, 1600, 2600},
	PhonSH: {250, 1700, 2400},
	PhonT:  {250, 1700, 2600},
	PhonTH: {250, 1350, 2500},
}

// Class returns the phonetic class of p. Unknown phonemes classify as
// silence.
func (p Phoneme) Class() Class {
	return classes[p]
}

// Duration returns the nominal duration of p in seconds.
func (p Phoneme) Duration() float64 {
	switch p.Class() {
	case ClassVowel:
		return VowelDuration
	case ClassSonorant:
		return SonorantDuration
	case ClassVoiced:
		return VoicedDuration
	case ClassUnvoiced:
		return UnvoicedDuration
	}
	return SilenceDuration
}

// Voiced reports whether p carries periodic energy. Unvoiced obstruents
// and silence map to amplitude zero in the trajectory.
func (p Phoneme) Voiced() bool {
	switch p.Class() {
	case ClassVowel, ClassSonorant, ClassVoiced:
		return true
	}
	return false
}

// Formants returns the static formant target of p.
func (p Phoneme) Formants() Formants {
	return formants[p]
}

// Known reports whether p belongs to the closed phoneme set.
func (p Phoneme) Known() bool {
	_, ok := classes[p]
	return ok
}

// AllPhonemes returns the complete phoneme set.
func AllPhonemes() []Phoneme {
	return []Phoneme{
		PhonSIL,
		PhonAA, PhonAE, PhonAH, PhonAO, PhonEH, PhonER, PhonIH, PhonIY, PhonUH, PhonUW,
		PhonAW, PhonAY, PhonEY, PhonOW, PhonOY,
		PhonL, PhonR, PhonW, PhonY, PhonM, PhonN, PhonNG,
		PhonB, PhonD, PhonDH, PhonG, PhonJH, PhonV, PhonZ, PhonZH,
		PhonCH, PhonF, PhonHH, PhonK, PhonP, PhonS, PhonSH, PhonT, PhonTH,
	}
}
