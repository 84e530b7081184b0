package cake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBirthdayExample(t *testing.T) {
	set := Extract("torta de cumpleaños rosa con flores de azúcar para 20 personas")

	assert.Equal(t, OccasionBirthday, set.Occasion)
	assert.Equal(t, "flowers", set.Theme)
	assert.Equal(t, []string{"pink"}, set.Colors)
	assert.Equal(t, []string{"sugar flowers"}, set.Decorations)
	assert.Equal(t, SizeLarge, set.Size)
	assert.Empty(t, set.Flavors)
}

func TestExtractLastMatchWins(t *testing.T) {
	set := Extract("torta de cumpleaños para la boda")
	assert.Equal(t, OccasionWedding, set.Occasion)

	set = Extract("una boda, bueno en realidad un cumpleaños")
	// dictionary order decides, not message order
	assert.Equal(t, OccasionWedding, set.Occasion)
}

func TestExtractMultiValueKeepsDictionaryOrder(t *testing.T) {
	set := Extract("torta azul y rosa con perlas y figuras")
	assert.Equal(t, []string{"pink", "blue"}, set.Colors)
	assert.Equal(t, []string{"figurines", "pearls"}, set.Decorations)
}

func TestExtractSizeBranchPrecedence(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"torta chica", SizeSmall},
		{"torta mediana", SizeMedium},
		{"torta grande", SizeLarge},
		{"torta para 30 personas", SizeExtraLarge},
		// "grande" inside "extra grande" hits the large branch first
		{"torta extra grande", SizeLarge},
		{"una torta cualquiera", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Extract(tc.message).Size, tc.message)
	}
}

func TestExtractFlavors(t *testing.T) {
	set := Extract("torta de chocolate y dulce de leche")
	assert.Equal(t, []string{"chocolate", "dulce de leche"}, set.Flavors)
	// chocolate doubles as a decoration trigger
	assert.Equal(t, []string{"chocolate"}, set.Decorations)
}

func TestExtractGenderAndAgeGroup(t *testing.T) {
	set := Extract("torta para una niña princesa")
	assert.Equal(t, "child", set.AgeGroup)
	assert.Equal(t, "female", set.Gender)
	assert.Equal(t, "princess", set.Theme)
}

func TestExtractEmptyMessage(t *testing.T) {
	set := Extract("")
	assert.Equal(t, AttributeSet{}, set)
}
