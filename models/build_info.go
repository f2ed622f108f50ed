// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnset = "N/A"

// BuildInfo describes the running binary as stamped with -ldflags at release
// time. Values the linker did not set read as "N/A".
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnset(version),
		Date:    orUnset(date),
		Commit:  orUnset(commit),
	}
}

// Stamped reports whether a release version was injected at link time.
func (b BuildInfo) Stamped() bool {
	return b.Version != buildInfoUnset
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("call-recorder %s (commit %s, built %s)", b.Version, b.Commit, b.Date)
}

func orUnset(value string) string {
	if value == "" {
		return buildInfoUnset
	}
	return value
}
