package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemes(t *testing.T) {
	assert.Len(t, Themes, 10)
	for _, theme := range Themes {
		assert.True(t, IsTheme(theme.Name))
		assert.NotEmpty(t, theme.Line, theme.Name)
		assert.NotEmpty(t, theme.NameBackground, theme.Name)
		assert.NotEmpty(t, theme.TBDBackground, theme.Name)
	}
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "Midnight Galaxy", ThemeByName("midnight galaxy").Name)
	assert.Equal(t, "White", ThemeByName("Sepia").Name)
	assert.False(t, IsTheme("Sepia"))
}

func TestCSSVariables(t *testing.T) {
	neon := ThemeByName("Neon").CSSVariables()
	assert.Contains(t, neon, "--line: #00FF88;")
	assert.Contains(t, neon, "--page-bg: linear-gradient(135deg, #001100, #003322, #00FF88);")
	assert.Contains(t, neon, "color-scheme: dark;")

	white := ThemeByName("White").CSSVariables()
	assert.Contains(t, white, "--page-bg: #FFFFFF;")
	assert.Contains(t, white, "color-scheme: light;")
}
