// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	flashnotice "github.com/louisbranch/todolist/internal/services/web/platform/flash"
	"github.com/louisbranch/todolist/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/todolist/internal/services/web/platform/i18n"
	"github.com/louisbranch/todolist/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/todolist/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
	// Banner overrides any pending flash notice.
	Banner *webtemplates.Banner
}

// WriteModulePage renders page. HTMX requests receive only the main region;
// other requests receive the full document. A pending flash notice is
// consumed either way.
func WriteModulePage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	loc, tag := webi18n.ResolveLocalizer(w, r)
	banner := page.Banner
	if notice := flashBanner(w, r, policy, loc); banner == nil {
		banner = notice
	}

	ctx := templ.WithChildren(r.Context(), fragment)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent(banner, loc).Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		layout := webtemplates.Layout(webtemplates.PageContext{
			Title:        page.Title,
			Lang:         tag.String(),
			Loc:          loc,
			CurrentPath:  r.URL.Path,
			CurrentQuery: r.URL.RawQuery,
			Languages:    webi18n.LanguageOptions(loc, tag),
			Banner:       banner,
		})
		if err := layout.Render(ctx, &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func flashBanner(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, loc webtemplates.Localizer) *webtemplates.Banner {
	notice, ok := flashnotice.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(webtemplates.T(loc, notice.Key))
	if message == "" {
		return nil
	}
	return &webtemplates.Banner{Kind: string(notice.Kind), Message: message}
}
