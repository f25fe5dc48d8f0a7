package summary

import "math/rand"

// Pattern thresholds for the tiered fallback.
const (
	dominantRatio   = 0.75 // a sentiment "defines" the week above this share
	leanMargin      = 0.2  // margin by which one sentiment must lead the other
	highEnergyShare = 0.6  // share of high-energy days that marks an energetic week
)

// Fallback summary tiers, selected by mood pattern. The summary within a
// tier is picked at random.
var (
	brightEnergeticSummaries = []string{
		"Your week sparkled with positive energy and enthusiastic momentum.",
		"A vibrant week full of joy, excitement, and uplifting moments.",
		"You radiated positivity this week, riding waves of high energy and happiness.",
	}
	brightCalmSummaries = []string{
		"A peacefully positive week filled with contentment and gentle joy.",
		"Your week glowed with quiet happiness and serene contentment.",
		"Calm positivity defined your week, with peaceful moments of gratitude.",
	}
	heavyEnergeticSummaries = []string{
		"This week brought intense challenges that you faced head-on with strength.",
		"A powerful week of processing difficult emotions with courage and resilience.",
		"You navigated turbulent waters this week, showing remarkable emotional strength.",
	}
	heavyCalmSummaries = []string{
		"A reflective week of processing emotions, showing your emotional awareness.",
		"You moved through this challenging week with grace and self-compassion.",
		"A gentle week of healing, allowing yourself space to feel and process.",
	}
	leanPositiveSummaries = []string{
		"Your week leaned toward the bright side, with more smiles than struggles.",
		"A balanced week that tilted positive, with hope outweighing the challenges.",
		"You found more light than shadow this week, celebrating small victories.",
	}
	leanNegativeSummaries = []string{
		"This week asked a lot of you, and you showed up for yourself.",
		"A challenging week where you practiced resilience and self-care.",
		"You weathered some storms this week with admirable emotional awareness.",
	}
	balancedSummaries = []string{
		"A balanced week of varied emotions, each moment teaching you something valuable.",
		"Your week was a tapestry of different feelings, all equally valid and meaningful.",
		"You experienced the full spectrum of emotions this week, embracing each one.",
		"A wonderfully human week of ups and downs, growth and reflection.",
	}
)

// fallbackSummary picks a summary tier from the week's sentiment and energy
// ratios.
func fallbackSummary(entries []Entry) string {
	var sentiments, energies []string
	for _, e := range entries {
		if e.Sentiment != "" {
			sentiments = append(sentiments, e.Sentiment)
		}
		if e.EnergyLevel != "" {
			energies = append(energies, e.EnergyLevel)
		}
	}

	if len(sentiments) == 0 {
		return "Your week was full of experiences worth reflecting on."
	}

	var positive, negative, highEnergy int
	for _, s := range sentiments {
		switch s {
		case "positive":
			positive++
		case "negative":
			negative++
		}
	}
	for _, e := range energies {
		if e == "high" {
			highEnergy++
		}
	}

	total := float64(len(sentiments))
	positiveRatio := float64(positive) / total
	negativeRatio := float64(negative) / total

	energyRatio := 0.5
	if len(energies) > 0 {
		energyRatio = float64(highEnergy) / float64(len(energies))
	}

	var pool []string
	switch {
	case positiveRatio > dominantRatio && energyRatio > highEnergyShare:
		pool = brightEnergeticSummaries
	case positiveRatio > dominantRatio:
		pool = brightCalmSummaries
	case negativeRatio > dominantRatio && energyRatio > highEnergyShare:
		pool = heavyEnergeticSummaries
	case negativeRatio > dominantRatio:
		pool = heavyCalmSummaries
	case positiveRatio > negativeRatio+leanMargin:
		pool = leanPositiveSummaries
	case negativeRatio > positiveRatio+leanMargin:
		pool = leanNegativeSummaries
	default:
		pool = balancedSummaries
	}

	return pool[rand.Intn(len(pool))]
}
