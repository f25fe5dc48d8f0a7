package trends

// generateEraName creates a descriptive name from centroid feature values.
// Uses a 2x2 valence/energy quadrant system with a sadness modifier.
//
// Quadrants:
//   - High Energy + High Valence = "Radiant & Energized"
//   - High Energy + Low Valence  = "Stormy & Charged"
//   - Low Energy  + High Valence = "Calm & Content"
//   - Low Energy  + Low Valence  = "Quiet & Reflective"
//
// Sadness modifier: if > 0.6, appends "(Heavy Heart)" to the name.
func generateEraName(centroid map[string]float64) string {
	valence := centroid["valence"]
	energy := centroid["energy"]
	sadness := centroid["sadness"]

	highEnergy := energy > 0.5
	highValence := valence > 0.6

	var baseName string
	switch {
	case highEnergy && highValence:
		baseName = "Radiant & Energized"
	case highEnergy && !highValence:
		baseName = "Stormy & Charged"
	case !highEnergy && highValence:
		baseName = "Calm & Content"
	default: // low energy, low valence
		baseName = "Quiet & Reflective"
	}

	if sadness > 0.6 {
		return baseName + " (Heavy Heart)"
	}
	return baseName
}
