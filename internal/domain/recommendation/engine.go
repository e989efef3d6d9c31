// Package recommendation maps a biometric profile to color, style and tip guidance.
// Every function here is pure and deterministic.
package recommendation

import "wardrobe/internal/domain/entity"

type undertoneRule struct {
	colors []string
	tip    string
}

type bodyShapeRule struct {
	styles []string
	tip    string
}

var (
	undertoneRules = map[string]undertoneRule{
		"Warm": {
			colors: []string{"Cream", "Olive", "Mustard", "Warm Red", "Gold"},
			tip:    "Earth tones look great on you!",
		},
		"Cool": {
			colors: []string{"Navy", "Black", "White", "Royal Blue", "Silver"},
			tip:    "Jewel tones enhance your complexion.",
		},
	}

	// Applies to Neutral, unknown values and a missing undertone alike.
	neutralRule = undertoneRule{
		colors: []string{"Dusty Pink", "Jade", "Teal", "Taupe"},
		tip:    "You can pull off almost any color!",
	}

	bodyShapeRules = map[string]bodyShapeRule{
		"Hourglass": {
			styles: []string{"Wrap Dresses", "High-waisted Trousers", "Belted Coats"},
			tip:    "Accentuate your waist.",
		},
		"Rectangle": {
			styles: []string{"Ruffled Tops", "A-line Skirts", "Layered Outfits"},
			tip:    "Create curves with volume.",
		},
		"Triangle": {
			styles: []string{"Boat Neck Tops", "Wide-leg Pants", "Statement Necklaces"},
			tip:    "Draw attention to your upper body.",
		},
	}

	faceShapeTips = map[string]string{
		"Oval":   "Most eyewear shapes suit you.",
		"Square": "Round glasses soften your features.",
	}
)

// Recommend derives guidance from profile. A nil profile yields empty lists.
// Rules run in a fixed order (undertone, body shape, face shape) and the tips
// list preserves that order.
func Recommend(profile *entity.BiometricProfile) entity.Recommendation {
	result := entity.EmptyRecommendation()
	if profile == nil {
		return result
	}

	undertone, ok := undertoneRules[value(profile.Undertone)]
	if !ok {
		undertone = neutralRule
	}
	result.Colors = append(result.Colors, undertone.colors...)
	result.Tips = append(result.Tips, undertone.tip)

	if body, ok := bodyShapeRules[value(profile.BodyShape)]; ok {
		result.Styles = append(result.Styles, body.styles...)
		result.Tips = append(result.Tips, body.tip)
	}

	if tip, ok := faceShapeTips[value(profile.FaceShape)]; ok {
		result.Tips = append(result.Tips, tip)
	}

	return result
}

func value(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
