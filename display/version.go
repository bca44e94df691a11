package display

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// BuildVersion formats "name vVERSION". An empty version is inferred from
// the main module's build info.
func BuildVersion(name, version string) string {
	if version == "" {
		infered, ok := inferVersion()
		if !ok {
			return "No version specified"
		}
		version = strings.TrimPrefix(infered, "v")
	}
	if name != "" {
		name = name + " "
	}
	return fmt.Sprintf("%sv%s", name, version)
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, true
	}
	return "", false
}
