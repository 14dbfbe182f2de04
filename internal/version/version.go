// Package version parses `since` declarations and decides which parts of a
// service are emitted for a given API version limit.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUndeclared = errors.New("version: missing 'since'")
	ErrInvalid    = errors.New("version: invalid version")
)

// Version is a major.minor API version.
type Version struct {
	Major int
	Minor int
}

// Parse reads "M" or "M.m". A bare major means minor 0.
func Parse(raw string) (Version, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Version{}, ErrUndeclared
	}
	majorRaw, minorRaw, hasMinor := strings.Cut(raw, ".")
	major, err := strconv.Atoi(majorRaw)
	if err != nil || major < 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	v := Version{Major: major}
	if hasMinor {
		minor, err := strconv.Atoi(minorRaw)
		if err != nil || minor < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
		}
		v.Minor = minor
	}
	return v, nil
}

// MustParse is Parse for constants known to be valid.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0 or 1.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major < o.Major:
		return -1
	case v.Major > o.Major:
		return 1
	case v.Minor < o.Minor:
		return -1
	case v.Minor > o.Minor:
		return 1
	}
	return 0
}

func (v Version) After(o Version) bool {
	return v.Compare(o) > 0
}

// Max returns the later of a and b.
func Max(a, b Version) Version {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}
