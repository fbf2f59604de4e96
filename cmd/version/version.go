package version

import (
	"fmt"
	"runtime"
	"strings"

	semver "github.com/Masterminds/semver/v3"

	"dltime-cli/internal/buildinfo"
)

// CurrentVersion is defined in internal/buildinfo to avoid import cycles
var CurrentVersion = buildinfo.CurrentVersion

// Info describes a build for `dlt version`.
type Info struct {
	Version  string `json:"version" yaml:"version"`
	IsSemver bool   `json:"is_semver" yaml:"is_semver"`
	Major    uint64 `json:"major,omitempty" yaml:"major,omitempty"`
	Minor    uint64 `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch    uint64 `json:"patch,omitempty" yaml:"patch,omitempty"`
	Pre      string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Go       string `json:"go" yaml:"go"`
	Platform string `json:"platform" yaml:"platform"`
}

// Describe builds an Info for version.
func Describe(version string) Info {
	info := Info{
		Version:  FormatVersionForDisplay(version),
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if v, err := parse(version); err == nil {
		info.IsSemver = true
		info.Major = v.Major()
		info.Minor = v.Minor()
		info.Patch = v.Patch()
		info.Pre = v.Prerelease()
	}
	return info
}

// Current describes the running binary.
func Current() Info {
	return Describe(CurrentVersion)
}

func (i Info) String() string {
	s := fmt.Sprintf("dlt %s (%s, %s)", i.Version, i.Go, i.Platform)
	if !i.IsSemver {
		s += " [development build]"
	}
	return s
}

// IsSemver reports whether version parses as a semantic version, with or
// without a leading "v".
func IsSemver(version string) bool {
	_, err := parse(version)
	return err == nil
}

func parse(version string) (*semver.Version, error) {
	if version == "" {
		return nil, fmt.Errorf("empty version")
	}
	return semver.StrictNewVersion(strings.TrimPrefix(strings.TrimPrefix(version, "v"), "V"))
}

// normalizeVersion ensures version has 'v' prefix and validates it using semver
func normalizeVersion(version string) string {
	if version == "" {
		return ""
	}

	// Strip any existing prefix for validation
	normalized := strings.TrimPrefix(strings.TrimPrefix(version, "v"), "V")

	if _, err := semver.NewVersion(normalized); err != nil {
		// Not semver (e.g. "dev"), keep it but still ensure the 'v' prefix
		if !strings.HasPrefix(version, "v") && !strings.HasPrefix(version, "V") {
			return "v" + version
		}
		return version
	}

	return "v" + normalized
}

// FormatVersionForDisplay normalizes a version string for consistent display.
// Examples: "v1.0.0" -> "v1.0.0", "1.0.0" -> "v1.0.0", "dev" -> "dev", "" -> "unknown"
func FormatVersionForDisplay(version string) string {
	if version == "" {
		return "unknown"
	}
	if !IsSemver(version) {
		return version
	}
	return normalizeVersion(version)
}
