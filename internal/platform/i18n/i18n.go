// Package i18n exposes the supported language tags backed by the embedded
// message catalogs.
package i18n

import (
	"strings"

	"github.com/louisbranch/todolist/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	defaultTag    = language.MustParse(catalog.BaseLocale)
	supportedTags = loadSupportedTags()
	matcher       = language.NewMatcher(supportedTags)
)

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return defaultTag
}

// SupportedTags returns the catalog-backed language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses value and reports whether it maps onto a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultTag, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return defaultTag, false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return defaultTag, false
	}
	return supportedOnly(matched), true
}

// MatchTags picks the best supported tag for an Accept-Language preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return defaultTag
	}
	matched, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return defaultTag
	}
	return supportedOnly(matched)
}

// supportedOnly strips matcher extensions (-u-rg-...) back to the catalog tag.
func supportedOnly(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	region, _ := tag.Region()
	for _, supported := range supportedTags {
		sb, _ := supported.Base()
		sr, _ := supported.Region()
		if sb == base && sr == region {
			return supported
		}
	}
	for _, supported := range supportedTags {
		if sb, _ := supported.Base(); sb == base {
			return supported
		}
	}
	return defaultTag
}

func loadSupportedTags() []language.Tag {
	tags := []language.Tag{defaultTag}
	for _, locale := range catalog.Default().Locales() {
		tag, err := language.Parse(locale)
		if err != nil || tag == defaultTag {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
