package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyPage       = "page"
	KeyTemplate   = "template"
	KeyStage      = "stage"
	KeyCount      = "count"
	KeyPolicy     = "draft_policy"
	KeyMode       = "render_mode"
	KeyURL        = "url"
	KeyDate       = "date"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Page(name string) slog.Attr      { return slog.String(KeyPage, name) }
func Template(t string) slog.Attr     { return slog.String(KeyTemplate, t) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DraftPolicy(p string) slog.Attr  { return slog.String(KeyPolicy, p) }
func RenderMode(m string) slog.Attr   { return slog.String(KeyMode, m) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Date(d string) slog.Attr         { return slog.String(KeyDate, d) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
