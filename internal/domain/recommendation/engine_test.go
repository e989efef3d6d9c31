package recommendation

import (
	"testing"

	"wardrobe/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRecommend_NilProfile(t *testing.T) {
	got := Recommend(nil)

	assert.Equal(t, []string{}, got.Colors)
	assert.Equal(t, []string{}, got.Styles)
	assert.Equal(t, []string{}, got.Tips)
}

func TestRecommend_Undertone(t *testing.T) {
	tests := []struct {
		name       string
		undertone  *string
		wantColors []string
		wantTip    string
	}{
		{
			name:       "warm",
			undertone:  strPtr("Warm"),
			wantColors: []string{"Cream", "Olive", "Mustard", "Warm Red", "Gold"},
			wantTip:    "Earth tones look great on you!",
		},
		{
			name:       "cool",
			undertone:  strPtr("Cool"),
			wantColors: []string{"Navy", "Black", "White", "Royal Blue", "Silver"},
			wantTip:    "Jewel tones enhance your complexion.",
		},
		{
			name:       "neutral",
			undertone:  strPtr("Neutral"),
			wantColors: []string{"Dusty Pink", "Jade", "Teal", "Taupe"},
			wantTip:    "You can pull off almost any color!",
		},
		{
			name:       "unknown value",
			undertone:  strPtr("Olive"),
			wantColors: []string{"Dusty Pink", "Jade", "Teal", "Taupe"},
			wantTip:    "You can pull off almost any color!",
		},
		{
			name:       "lowercase is not matched",
			undertone:  strPtr("warm"),
			wantColors: []string{"Dusty Pink", "Jade", "Teal", "Taupe"},
			wantTip:    "You can pull off almost any color!",
		},
		{
			name:       "absent",
			undertone:  nil,
			wantColors: []string{"Dusty Pink", "Jade", "Teal", "Taupe"},
			wantTip:    "You can pull off almost any color!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(&entity.BiometricProfile{Undertone: tt.undertone})

			assert.Equal(t, tt.wantColors, got.Colors)
			assert.Equal(t, []string{tt.wantTip}, got.Tips)
			assert.Equal(t, []string{}, got.Styles)
		})
	}
}

func TestRecommend_BodyShape(t *testing.T) {
	tests := []struct {
		bodyShape  string
		wantStyles []string
		wantTip    string
	}{
		{"Hourglass", []string{"Wrap Dresses", "High-waisted Trousers", "Belted Coats"}, "Accentuate your waist."},
		{"Rectangle", []string{"Ruffled Tops", "A-line Skirts", "Layered Outfits"}, "Create curves with volume."},
		{"Triangle", []string{"Boat Neck Tops", "Wide-leg Pants", "Statement Necklaces"}, "Draw attention to your upper body."},
	}

	for _, tt := range tests {
		t.Run(tt.bodyShape, func(t *testing.T) {
			got := Recommend(&entity.BiometricProfile{
				Undertone: strPtr("Cool"),
				BodyShape: strPtr(tt.bodyShape),
			})

			assert.Equal(t, tt.wantStyles, got.Styles)
			assert.Equal(t, []string{"Jewel tones enhance your complexion.", tt.wantTip}, got.Tips)
		})
	}

	t.Run("unknown shape adds nothing", func(t *testing.T) {
		got := Recommend(&entity.BiometricProfile{BodyShape: strPtr("Apple")})

		assert.Equal(t, []string{}, got.Styles)
		assert.Equal(t, []string{"You can pull off almost any color!"}, got.Tips)
	})
}

func TestRecommend_FaceShape(t *testing.T) {
	oval := Recommend(&entity.BiometricProfile{FaceShape: strPtr("Oval")})
	assert.Equal(t, []string{"You can pull off almost any color!", "Most eyewear shapes suit you."}, oval.Tips)

	square := Recommend(&entity.BiometricProfile{FaceShape: strPtr("Square")})
	assert.Equal(t, []string{"You can pull off almost any color!", "Round glasses soften your features."}, square.Tips)

	heart := Recommend(&entity.BiometricProfile{FaceShape: strPtr("Heart")})
	assert.Equal(t, []string{"You can pull off almost any color!"}, heart.Tips)
}

func TestRecommend_TipOrder(t *testing.T) {
	got := Recommend(&entity.BiometricProfile{
		Undertone: strPtr("Warm"),
		BodyShape: strPtr("Hourglass"),
		FaceShape: strPtr("Oval"),
	})

	assert.Equal(t, []string{
		"Earth tones look great on you!",
		"Accentuate your waist.",
		"Most eyewear shapes suit you.",
	}, got.Tips)
	assert.Equal(t, []string{"Cream", "Olive", "Mustard", "Warm Red", "Gold"}, got.Colors)
	assert.Equal(t, []string{"Wrap Dresses", "High-waisted Trousers", "Belted Coats"}, got.Styles)
}

func TestRecommend_DoesNotShareRuleSlices(t *testing.T) {
	first := Recommend(&entity.BiometricProfile{Undertone: strPtr("Warm")})
	first.Colors[0] = "Changed"

	second := Recommend(&entity.BiometricProfile{Undertone: strPtr("Warm")})
	assert.Equal(t, "Cream", second.Colors[0])
}
