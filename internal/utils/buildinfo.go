// Package utils provides logging, version retrieval, and shared constants.
package utils

import (
	"runtime/debug"
)

const (
	unknownVersion     = "unknown"
	develVersion       = "(devel)"
	revisionSettingKey = "vcs.revision"
	modifiedSettingKey = "vcs.modified"
	shortRevisionSize  = 12
	develVersionPrefix = "devel-"
	dirtyVersionSuffix = "-dirty"
)

// Version is stamped at build time:
//
//	go build -ldflags "-X github.com/temirov/dtree/internal/utils.Version=v1.2.3" ./cmd/dtree
var Version string

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetApplicationVersion reports the version of the dtree binary itself. It
// prefers the stamped Version, then the module version recorded by go install,
// then the VCS revision embedded at build time. It never inspects the working
// directory.
func GetApplicationVersion() string {
	if Version != "" {
		return Version
	}
	buildInfo, buildInfoAvailable := readBuildInfo()
	if !buildInfoAvailable || buildInfo == nil {
		return unknownVersion
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	return revisionVersion(buildInfo.Settings)
}

func revisionVersion(settings []debug.BuildSetting) string {
	var revision string
	var modified bool
	for _, setting := range settings {
		switch setting.Key {
		case revisionSettingKey:
			revision = setting.Value
		case modifiedSettingKey:
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return unknownVersion
	}
	if len(revision) > shortRevisionSize {
		revision = revision[:shortRevisionSize]
	}
	version := develVersionPrefix + revision
	if modified {
		version += dirtyVersionSuffix
	}
	return version
}
