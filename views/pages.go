package views

import (
	"fmt"
	"strconv"

	"github.com/AdamBeresnev/bracketeer/internal/bracket"
	"github.com/AdamBeresnev/bracketeer/internal/middleware"
	"github.com/google/uuid"
)

var bestOfChoices = []int{1, 3, 5, 7}

type PageData struct {
	Running    bool
	ThirdPlace bool
	Entrants   []bracket.Entrant
	Bracket    BracketData
	Prefs      middleware.Preferences
}

// NewPageData copies everything the page needs out of the live session, so
// rendering can happen after the caller releases its lock.
func NewPageData(running, thirdPlace bool, entrants []*bracket.Entrant, b *bracket.Bracket, prefs middleware.Preferences) PageData {
	data := PageData{
		Running:    running,
		ThirdPlace: thirdPlace,
		Entrants:   make([]bracket.Entrant, len(entrants)),
		Prefs:      prefs,
	}
	for i, e := range entrants {
		data.Entrants[i] = *e
	}
	if b != nil {
		data.Bracket = PrepareBracketData(b)
	}
	return data
}

func zoomText(z float64) string {
	return strconv.FormatFloat(z, 'f', 1, 64)
}

// rootStyle carries the theme palette and zoom as custom properties.
func rootStyle(prefs middleware.Preferences) string {
	return fmt.Sprintf("<style>:root { %s --zoom: %s; }</style>", ThemeByName(prefs.Theme).CSSVariables(), zoomText(prefs.Zoom))
}

func renameURL(id uuid.UUID) string {
	return fmt.Sprintf("/entrants/%s/rename", id)
}

func deleteURL(id uuid.UUID) string {
	return fmt.Sprintf("/entrants/%s/delete", id)
}

func bestOfURL(matchID int) string {
	return fmt.Sprintf("/matches/%d/best-of", matchID)
}
