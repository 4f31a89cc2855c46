package views

import (
	"fmt"
	"strings"
)

// Theme is a display palette. Background is either a flat color or a
// gradient when Gradient is set.
type Theme struct {
	Name           string
	Dark           bool
	Background     string
	Gradient       []string
	Container      string
	Shadow         string
	Button         string
	ButtonText     string
	ButtonGradient []string
	Input          string
	InputBorder    string
	NameBackground string
	NameText       string
	NameBorder     string
	TBDBackground  string
	TBDText        string
	Line           string
}

var Themes = []Theme{
	{
		Name: "White", Background: "#FFFFFF", Container: "#FFFFFF", Shadow: "rgba(0,0,0,0.2)",
		Button: "#E0E0E0", ButtonText: "#000000", Input: "#F5F5F5", InputBorder: "#CCCCCC",
		NameBackground: "#FFFFFF", NameText: "#000000", NameBorder: "#000000",
		TBDBackground: "#EEEEEE", TBDText: "#9E9E9E", Line: "#000000",
	},
	{
		Name: "Black", Dark: true, Background: "#0F1115", Container: "#181B21", Shadow: "rgba(0,0,0,0.1)",
		Button: "#20242C", ButtonText: "#E6E8EB", Input: "#181B21", InputBorder: "#2A2F3A",
		NameBackground: "#20242C", NameText: "#E6E8EB", NameBorder: "#9E9E9E",
		TBDBackground: "#263238", TBDText: "#78909C", Line: "#E0E0E0",
	},
	{
		Name: "Cyan", Gradient: []string{"#E0FFFF", "#A7E9FF", "#5DD8FF"}, Container: "#D0F5FF", Shadow: "rgba(0,188,212,0.3)",
		Button: "#5DD8FF", ButtonText: "#003E47", ButtonGradient: []string{"#00E5FF", "#00BCD4"},
		Input: "#C8F0FF", InputBorder: "#00BCD4",
		NameBackground: "#C8F0FF", NameText: "#003E47", NameBorder: "#00BCD4",
		TBDBackground: "#D0F5FF", TBDText: "#005C63", Line: "#00BCD4",
	},
	{
		Name: "Purple", Dark: true, Gradient: []string{"#2e1a47", "#4b2f76", "#6a46a5"}, Container: "#3b2261", Shadow: "rgba(184,146,255,0.3)",
		Button: "#6a46a5", ButtonText: "#FFFFFF", ButtonGradient: []string{"#b892ff", "#6a46a5"},
		Input: "#3b2261", InputBorder: "#b892ff",
		NameBackground: "#4b2f76", NameText: "#FFFFFF", NameBorder: "#c5a3ff",
		TBDBackground: "#4b2f76", TBDText: "#d8b9ff", Line: "#b892ff",
	},
	{
		Name: "Neon", Dark: true, Gradient: []string{"#001100", "#003322", "#00FF88"}, Container: "#002A1A", Shadow: "rgba(0,255,170,0.4)",
		Button: "#004D33", ButtonText: "#00FFAA", ButtonGradient: []string{"#00FFAA", "#00CC66"},
		Input: "#002A1A", InputBorder: "#00FF88",
		NameBackground: "#003322", NameText: "#00FFAA", NameBorder: "#00FFAA",
		TBDBackground: "#001A0F", TBDText: "#00CC77", Line: "#00FF88",
	},
	{
		Name: "Red", Gradient: []string{"#ffdddd", "#ffbbbb", "#ff9999"}, Container: "#ffdddd", Shadow: "rgba(255,153,153,0.2)",
		Button: "#ff9999", ButtonText: "#800000", ButtonGradient: []string{"#ffaaaa", "#ff8888"},
		Input: "#ffcccc", InputBorder: "#ff7777",
		NameBackground: "#ffbbbb", NameText: "#800000", NameBorder: "#ff6666",
		TBDBackground: "#ffcccc", TBDText: "#cc0000", Line: "#ff6666",
	},
	{
		Name: "Crimson", Dark: true, Gradient: []string{"#0A0000", "#330000", "#8B0000"}, Container: "#1A0000", Shadow: "rgba(255,68,68,0.3)",
		Button: "#8B0000", ButtonText: "#FFFFFF", ButtonGradient: []string{"#FF5555", "#8B0000"},
		Input: "#220000", InputBorder: "#B22222",
		NameBackground: "#220000", NameText: "#FFFFFF", NameBorder: "#FF5555",
		TBDBackground: "#400000", TBDText: "#FF8888", Line: "#FF3B3B",
	},
	{
		Name: "Midnight Galaxy", Dark: true, Gradient: []string{"#0a0f2c", "#1b204a", "#243b6b"}, Container: "#0d132b", Shadow: "rgba(59,76,192,0.3)",
		Button: "#243b6b", ButtonText: "#FFFFFF", ButtonGradient: []string{"#3b4cc0", "#243b6b"},
		Input: "#14193a", InputBorder: "#3b4cc0",
		NameBackground: "#1b204a", NameText: "#FFFFFF", NameBorder: "#4b5fc7",
		TBDBackground: "#1b204a", TBDText: "#6c8ef5", Line: "#3b4cc0",
	},
	{
		Name: "Blush Dawn", Gradient: []string{"#FFE1EE", "#F9BFD7", "#F8A3C8"}, Container: "#F5CFE0", Shadow: "rgba(255,126,185,0.25)",
		Button: "#F8DDE8", ButtonText: "#2D1F29", ButtonGradient: []string{"#FFB4DC", "#FF7EB9"},
		Input: "#F5CFE0", InputBorder: "#5E4A55",
		NameBackground: "#F5CFE0", NameText: "#2D1F29", NameBorder: "#5E4A55",
		TBDBackground: "#F8DDE8", TBDText: "#5E4A55", Line: "#FF7EB9",
	},
	{
		Name: "Void Amethyst", Dark: true, Gradient: []string{"#10051E", "#20124A", "#381A70"}, Container: "#231B3B", Shadow: "rgba(168,85,247,0.3)",
		Button: "#1A162B", ButtonText: "#E6E0FF", ButtonGradient: []string{"#C084FC", "#9333EA"},
		Input: "#231B3B", InputBorder: "#A59FCF",
		NameBackground: "#231B3B", NameText: "#E6E0FF", NameBorder: "#A59FCF",
		TBDBackground: "#1A162B", TBDText: "#A59FCF", Line: "#A855F7",
	},
}

// ThemeByName falls back to the first theme for unknown names.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return Themes[0]
}

func IsTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

func (t Theme) backgroundCSS() string {
	if len(t.Gradient) > 0 {
		return fmt.Sprintf("linear-gradient(135deg, %s)", strings.Join(t.Gradient, ", "))
	}
	return t.Background
}

func (t Theme) buttonCSS() string {
	if len(t.ButtonGradient) > 0 {
		return fmt.Sprintf("linear-gradient(135deg, %s)", strings.Join(t.ButtonGradient, ", "))
	}
	return t.Button
}

// CSSVariables renders the palette as custom properties for :root.
func (t Theme) CSSVariables() string {
	vars := [][2]string{
		{"--page-bg", t.backgroundCSS()},
		{"--container-bg", t.Container},
		{"--shadow", t.Shadow},
		{"--button-bg", t.buttonCSS()},
		{"--button-text", t.ButtonText},
		{"--input-bg", t.Input},
		{"--input-border", t.InputBorder},
		{"--name-bg", t.NameBackground},
		{"--name-text", t.NameText},
		{"--name-border", t.NameBorder},
		{"--tbd-bg", t.TBDBackground},
		{"--tbd-text", t.TBDText},
		{"--line", t.Line},
	}

	var sb strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&sb, "%s: %s; ", v[0], v[1])
	}
	if t.Dark {
		sb.WriteString("color-scheme: dark;")
	} else {
		sb.WriteString("color-scheme: light;")
	}
	return sb.String()
}
