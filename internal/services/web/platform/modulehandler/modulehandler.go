// Package modulehandler provides a composable base for web module handlers.
//
// Modules embed Base to share user resolution, localization, page rendering,
// notices and error handling.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"

	module "github.com/louisbranch/todolist/internal/services/web/module"
	flashnotice "github.com/louisbranch/todolist/internal/services/web/platform/flash"
	"github.com/louisbranch/todolist/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/todolist/internal/services/web/platform/i18n"
	"github.com/louisbranch/todolist/internal/services/web/platform/pagerender"
	"github.com/louisbranch/todolist/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/todolist/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/todolist/internal/services/web/templates"
)

// Base carries the shared request-scoped resolvers used by module handlers.
type Base struct {
	resolveUserID module.ResolveUserID
	policy        requestmeta.SchemePolicy
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{resolveUserID: deps.ResolveUserID, policy: deps.SchemePolicy}
}

// RequestUserID returns the user id for the request, or zero.
func (b Base) RequestUserID(r *http.Request) int {
	if r == nil || b.resolveUserID == nil {
		return 0
	}
	return b.resolveUserID(r)
}

// PageLocalizer resolves a localizer for the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) webtemplates.Localizer {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	return loc
}

// WritePage renders a module page (HTMX-aware).
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, fragment templ.Component, banner *webtemplates.Banner) {
	if err := pagerender.WriteModulePage(w, r, b.policy, pagerender.ModulePage{
		Title:    title,
		Fragment: fragment,
		Banner:   banner,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteNotice stores a one-time notice for the next render.
func (b Base) WriteNotice(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice) {
	flashnotice.Write(w, r, notice, b.policy)
}

// WriteRedirect redirects after a mutation (HTMX-aware).
func (b Base) WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err)
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}
