package middleware

import (
	"context"
	"math"
	"net/http"

	"github.com/alexedwards/scs/v2"
)

type ContextKey string

const PreferencesKey ContextKey = "preferences"

const (
	themeSessionKey = "theme"
	zoomSessionKey  = "zoom"
)

const (
	MinZoom     = 0.5
	MaxZoom     = 2.5
	ZoomStep    = 0.1
	DefaultZoom = 1.0
)

// Preferences are per-browser display settings. They never touch the
// tournament itself.
type Preferences struct {
	Theme string
	Zoom  float64
}

// ClampZoom keeps zoom inside [MinZoom, MaxZoom] on a ZoomStep grid.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return DefaultZoom
	}
	z = math.Round(z/ZoomStep) * ZoomStep
	z = math.Round(z*10) / 10
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// LoadPreferences reads the session's display settings into the request
// context, falling back to defaultTheme.
func LoadPreferences(sessionManager *scs.SessionManager, defaultTheme string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			prefs := Preferences{Theme: defaultTheme, Zoom: DefaultZoom}

			if theme := sessionManager.GetString(r.Context(), themeSessionKey); theme != "" {
				prefs.Theme = theme
			}
			if sessionManager.Exists(r.Context(), zoomSessionKey) {
				prefs.Zoom = ClampZoom(sessionManager.GetFloat(r.Context(), zoomSessionKey))
			}

			ctx := context.WithValue(r.Context(), PreferencesKey, prefs)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SaveTheme(ctx context.Context, sessionManager *scs.SessionManager, theme string) {
	sessionManager.Put(ctx, themeSessionKey, theme)
}

// SaveZoom stores the clamped zoom and returns it.
func SaveZoom(ctx context.Context, sessionManager *scs.SessionManager, zoom float64) float64 {
	zoom = ClampZoom(zoom)
	sessionManager.Put(ctx, zoomSessionKey, zoom)
	return zoom
}

func GetPreferences(ctx context.Context) Preferences {
	prefs, ok := ctx.Value(PreferencesKey).(Preferences)
	if !ok {
		return Preferences{Zoom: DefaultZoom}
	}
	return prefs
}
