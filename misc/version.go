// Package misc holds build time information about the program.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// These are set with -ldflags "-X gridkit/misc.version=..." at build time.
var (
	version = "dev"
	gitHash = "unknown"
	appName = ""
)

// GetAppName returns program name, either set at build time or derived from
// executable name.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
