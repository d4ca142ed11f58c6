// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable is reported for build metadata that was not injected by the linker.
const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the server binary.
//
// Values are injected by linker flags during CI/CD and printed on startup.
// BuildVersion is also the fallback for the /api/version endpoint.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values are replaced with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// HasVersion reports whether a real build version was injected.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != notAvailable
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
