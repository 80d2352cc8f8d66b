// Package share builds the per-platform share actions offered on the dashboard.
package share

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// Platform identifies a share target.
type Platform string

const (
	Facebook  Platform = "facebook"
	WhatsApp  Platform = "whatsapp"
	Telegram  Platform = "telegram"
	LinkedIn  Platform = "linkedin"
	Instagram Platform = "instagram"
	Native    Platform = "native"
)

// Platforms lists the share buttons in display order. Native is not listed;
// the client offers it only when the browser supports the Web Share API.
func Platforms() []Platform {
	return []Platform{Facebook, WhatsApp, Telegram, LinkedIn, Instagram}
}

func (p Platform) String() string { return string(p) }

// IsValid reports whether p is a known share target.
func (p Platform) IsValid() bool {
	switch p {
	case Facebook, WhatsApp, Telegram, LinkedIn, Instagram, Native:
		return true
	}
	return false
}

// ParsePlatform validates a platform name from a request.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", domain.NewValidationError("platform", "unsupported platform")
	}
	return p, nil
}

// Action tells the client what to do with a Plan.
type Action string

const (
	// ActionIntent opens Plan.URL in a new window.
	ActionIntent Action = "intent"
	// ActionClipboard copies Plan.Text and Plan.Link to the clipboard.
	ActionClipboard Action = "clipboard"
	// ActionNative hands Plan.Text and Plan.Link to navigator.share and
	// falls back to the clipboard.
	ActionNative Action = "native"
)

// Plan is a fully resolved share action.
type Plan struct {
	Platform Platform
	Action   Action
	URL      string
	Text     string
	Link     string
}

// ClipboardText is what gets copied for clipboard and native fallbacks.
func (p Plan) ClipboardText() string {
	return p.Text + " " + p.Link
}

// PersonalLink returns the public submission link of username.
func PersonalLink(baseURL, username string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(username)
}

// Text composes the share text from the localized prefix and the message body.
func Text(prefix, message string) string {
	return prefix + " " + message
}

// Build returns the share plan for platform p.
func Build(p Platform, text, link string) (Plan, error) {
	plan := Plan{Platform: p, Text: text, Link: link}

	switch p {
	case Facebook:
		plan.Action = ActionIntent
		plan.URL = "https://www.facebook.com/sharer/sharer.php?u=" + encodeComponent(link) + "&quote=" + encodeComponent(text)
	case WhatsApp:
		plan.Action = ActionIntent
		plan.URL = "https://wa.me/?text=" + encodeComponent(text+" "+link)
	case Telegram:
		plan.Action = ActionIntent
		plan.URL = "https://t.me/share/url?url=" + encodeComponent(link) + "&text=" + encodeComponent(text)
	case LinkedIn:
		plan.Action = ActionIntent
		plan.URL = "https://www.linkedin.com/sharing/share-offsite/?url=" + encodeComponent(link)
	case Instagram:
		plan.Action = ActionClipboard
	case Native:
		plan.Action = ActionNative
	default:
		return Plan{}, domain.NewValidationError("platform", "unsupported platform")
	}

	return plan, nil
}

// encodeComponent escapes s for use as a single query value, encoding spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
