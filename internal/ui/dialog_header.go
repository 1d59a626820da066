package ui

import (
	"fmt"

	"github.com/renato0307/alttext/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Describe and tag your images",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// GetVersionInfo returns the version info set by SetVersionInfo
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// renderHeader renders the app name, the tagline and an optional subtitle.
// Dev mode adds version details next to the name.
func renderHeader(styles theme.Styles, devMode bool, subtitle string) string {
	appNameLine := styles.AppName.Render("alttext")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += styles.Version.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	result := appNameLine + "\n"
	result += styles.Tagline.Render(versionInfo.Tagline)
	if subtitle != "" {
		result += "\n\n" + styles.Subtitle.Render(subtitle)
	}

	return result + "\n"
}
