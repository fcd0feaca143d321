package templates

//go:generate templ generate

import (
	"net/url"
	"strings"

	webi18n "github.com/louisbranch/todolist/internal/services/web/platform/i18n"
	"github.com/louisbranch/todolist/internal/services/web/routepath"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption = webi18n.LanguageOption

// Banner is a one-time notice shown above the page content.
type Banner struct {
	Kind    string
	Message string
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Languages    []LanguageOption
	Banner       *Banner
}

// LanguageURL returns the current URL with the language param replaced.
func LanguageURL(path string, rawQuery string, tag string) string {
	if strings.TrimSpace(path) == "" {
		path = routepath.Todos
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(webi18n.LangParam, tag)
	return path + "?" + values.Encode()
}

func pageTitle(page PageContext) string {
	appName := T(page.Loc, "core.app_name")
	title := strings.TrimSpace(page.Title)
	if title == "" || title == appName {
		return appName
	}
	return title + " | " + appName
}

func showBanner(banner *Banner) bool {
	return banner != nil && strings.TrimSpace(banner.Message) != ""
}

func bannerKind(banner *Banner) string {
	if banner == nil || strings.TrimSpace(banner.Kind) == "" {
		return "error"
	}
	return strings.TrimSpace(banner.Kind)
}
