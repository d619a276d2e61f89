package domain

import (
	"cmp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// releaseParts is the number of numeric components a NuGet version can carry.
const releaseParts = 4

// PackageVersion is a resolved package version such as "4.2.0.2188" or
// "4.3.0-beta.1". The zero value means no version.
type PackageVersion struct {
	raw string
}

// NewPackageVersion wraps a version string.
func NewPackageVersion(s string) PackageVersion {
	return PackageVersion{raw: strings.TrimSpace(s)}
}

// String returns the version as written in the assets file.
func (v PackageVersion) String() string {
	return v.raw
}

// IsZero reports whether the version is empty.
func (v PackageVersion) IsZero() bool {
	return v.raw == ""
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other. Release components are compared numerically, a release
// sorts after any of its prereleases, and build metadata is ignored.
func (v PackageVersion) Compare(other PackageVersion) int {
	aRelease, aPre := v.split()
	bRelease, bPre := other.split()

	for i := range releaseParts {
		if c := cmp.Compare(aRelease[i], bRelease[i]); c != 0 {
			return c
		}
	}

	switch {
	case aPre == bPre:
		return 0
	case aPre == "":
		return 1
	case bPre == "":
		return -1
	}

	if c := semver.Compare("v0.0.0-"+aPre, "v0.0.0-"+bPre); c != 0 {
		return c
	}
	return strings.Compare(aPre, bPre)
}

// MarshalText implements encoding.TextMarshaler.
func (v PackageVersion) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *PackageVersion) UnmarshalText(text []byte) error {
	*v = NewPackageVersion(string(text))
	return nil
}

func (v PackageVersion) split() (release [releaseParts]int, prerelease string) {
	s, _, _ := strings.Cut(v.raw, "+")
	s, prerelease, _ = strings.Cut(s, "-")

	for i, part := range strings.SplitN(s, ".", releaseParts) {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		release[i] = n
	}
	return release, strings.ToLower(prerelease)
}
