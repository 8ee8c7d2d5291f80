// Package misc keeps application identity helpers in one place so they do not
// mix with any functional package.
package misc

import "runtime/debug"

const appName = "trellis"

// GetAppName returns short program name to be used in logs, reports and paths.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded in the build info.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
	}
	return "devel"
}

// GetGitHash returns VCS revision recorded in the build info.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
