// Package icons resolves an icon-theme name for a window's app id. The icon
// theme itself lives in the rendering shell; this package only holds the
// lookup policy.
package icons

import "strings"

// Fallback is the generic icon used when nothing matches an app id.
const Fallback = "applications-system"

var dashifier = strings.NewReplacer(".", "-", "_", "-")

// Pick resolves an icon name for an app id against the theme membership
// check hasIcon. It tries the app id verbatim, then a dashified form
// (themes commonly name icons org-example-App for org.example.App), then
// the generic fallback.
func Pick(hasIcon func(name string) bool, appID string) string {
	if appID != "" && hasIcon(appID) {
		return appID
	}
	if dashified := dashifier.Replace(appID); dashified != "" && hasIcon(dashified) {
		return dashified
	}
	return Fallback
}
