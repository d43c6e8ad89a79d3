package cli

import (
	"runtime/debug"
	"strings"
)

const (
	devVersion         = "dev"
	goDevelMainVersion = "(devel)"
	vcsRevisionKey     = "vcs.revision"
	vcsModifiedKey     = "vcs.modified"
	shortRevisionLen   = 12
)

var readBuildInfo = debug.ReadBuildInfo

// resolvedVersion prefers an injected release version, then module build info,
// then the VCS revision stamped by the toolchain.
func resolvedVersion(injected string) string {
	injected = strings.TrimSpace(injected)
	if injected != "" && injected != devVersion {
		return injected
	}
	if fromBuild := buildInfoVersion(); fromBuild != "" {
		return fromBuild
	}
	if injected != "" {
		return injected
	}
	return devVersion
}

func buildInfoVersion() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	if v := strings.TrimSpace(info.Main.Version); v != "" && v != goDevelMainVersion {
		return v
	}
	revision, dirty := vcsState(info.Settings)
	switch {
	case revision == "":
		return ""
	case dirty:
		return revision + "-dirty"
	default:
		return revision
	}
}

func vcsState(settings []debug.BuildSetting) (revision string, dirty bool) {
	for _, setting := range settings {
		value := strings.TrimSpace(setting.Value)
		switch setting.Key {
		case vcsRevisionKey:
			revision = value
		case vcsModifiedKey:
			dirty = strings.EqualFold(value, "true")
		}
	}
	if len(revision) > shortRevisionLen {
		revision = revision[:shortRevisionLen]
	}
	return revision, dirty
}
