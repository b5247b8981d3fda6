// SPDX-License-Identifier: MPL-2.0

package classify

// Category names produced by the classifier.
const (
	CategorySynth       = "Synthesizer"
	CategoryEffect      = "Effect"
	CategorySampler     = "Sampler"
	CategoryDrumMachine = "Drum Machine"
	CategoryMastering   = "Mastering"
	CategoryUtility     = "Utility"
	CategoryOther       = "Other"
)

// categoryRule maps name keywords to a category/subcategory pair. Rules are
// evaluated in slice order and the first rule with any matching keyword wins,
// so more specific families must stay above the generic ones.
type categoryRule struct {
	keywords    []string
	category    string
	subcategory string
}

// categoryRules is the classification cascade. Synthesizer families come
// first, then effect families, then the remaining product types.
var categoryRules = []categoryRule{
	// Synthesizer families.
	{[]string{"wavetable", "serum", "vital", "massive"}, CategorySynth, "Wavetable"},
	{[]string{"fm synth", "fm8", "dexed", "operator"}, CategorySynth, "FM"},
	{[]string{"analog", "analogue", "moog", "juno", "oberheim", "prophet"}, CategorySynth, "Analog"},
	{[]string{"piano", "keys", "rhodes", "organ", "wurli"}, CategorySynth, "Keys"},
	{[]string{"drum synth", "kick 2", "808"}, CategorySynth, "Drum Synth"},
	{[]string{"synth", "oscillator"}, CategorySynth, ""},

	// Effect families.
	{[]string{"eq", "equalizer", "pro-q", "filter"}, CategoryEffect, "EQ"},
	{[]string{"reverb", "verb", "room", "hall", "plate"}, CategoryEffect, "Reverb"},
	{[]string{"delay", "echo", "tape stop"}, CategoryEffect, "Delay"},
	{[]string{"compress", "limiter", "gate", "transient", "dynamics"}, CategoryEffect, "Dynamics"},
	{[]string{"distortion", "saturat", "overdrive", "fuzz", "decapitator", "clip"}, CategoryEffect, "Distortion"},
	{[]string{"chorus", "flanger", "phaser", "tremolo", "vibrato"}, CategoryEffect, "Modulation"},
	{[]string{"amplifier", "amp sim", "cabinet", "guitar", "pedal", "helix"}, CategoryEffect, "Guitar"},

	// Remaining product types.
	{[]string{"sampler", "sample", "kontakt"}, CategorySampler, ""},
	{[]string{"drum machine", "drum rack", "beat", "groove"}, CategoryDrumMachine, ""},
	{[]string{"master", "ozone", "maximizer", "loudness"}, CategoryMastering, ""},
	{[]string{"tuner", "meter", "analyzer", "scope", "utility", "gain"}, CategoryUtility, ""},
}

// descriptionTemplates renders a one-line description per subcategory. The
// %s verbs are display name, then vendor.
var descriptionTemplates = map[string]string{
	"Wavetable":  "%s is a wavetable synthesizer by %s.",
	"FM":         "%s is an FM synthesizer by %s.",
	"Analog":     "%s is an analog-style synthesizer by %s.",
	"Keys":       "%s is a keys/piano instrument by %s.",
	"Drum Synth": "%s is a drum synthesizer by %s.",
	"EQ":         "%s is an equalizer by %s.",
	"Reverb":     "%s is a reverb by %s.",
	"Delay":      "%s is a delay by %s.",
	"Dynamics":   "%s is a dynamics processor by %s.",
	"Distortion": "%s is a distortion/saturation effect by %s.",
	"Modulation": "%s is a modulation effect by %s.",
	"Guitar":     "%s is a guitar/bass effect by %s.",
}

// contentTagRule adds free-form tags detected from the name, on top of the
// category-derived tags.
type contentTagRule struct {
	keywords []string
	tags     []string
}

var contentTagRules = []contentTagRule{
	{[]string{"bass", "sub"}, []string{"bass", "electronic"}},
	{[]string{"vintage", "retro", "tape", "analog"}, []string{"vintage"}},
	{[]string{"free", "demo", "trial"}, []string{"free"}},
}

// categoryTags maps a category to its baseline tag set.
var categoryTags = map[string][]string{
	CategorySynth:       {"instrument", "synth"},
	CategoryEffect:      {"effect"},
	CategorySampler:     {"instrument", "sampler"},
	CategoryDrumMachine: {"drums", "instrument"},
	CategoryMastering:   {"effect", "mastering"},
	CategoryUtility:     {"utility"},
	CategoryOther:       {},
}
