package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// UpdateType is the classification of a transition between two versions
type UpdateType string

const (
	UpdateMajor    UpdateType = "major"
	UpdateMinor    UpdateType = "minor"
	UpdatePatch    UpdateType = "patch"
	UpdateNoChange UpdateType = "no-change"
)

// IsSafe reports whether the update may be approved without a human review
func (u UpdateType) IsSafe() bool {
	return u == UpdateMinor || u == UpdatePatch
}

// VersionTriple is a dotted major.minor.patch version
type VersionTriple struct {
	Major int
	Minor int
	Patch int
}

// ParseVersionTriple parses "X.Y.Z". Each component must be a non-negative integer.
func ParseVersionTriple(s string) (VersionTriple, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return VersionTriple{}, goerr.Wrap(types.ErrParse, "version must have three components", goerr.V("version", s))
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return VersionTriple{}, goerr.Wrap(types.ErrParse, "version component is not a non-negative integer",
				goerr.V("version", s),
				goerr.V("component", p),
			)
		}
		nums[i] = n
	}

	return VersionTriple{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v VersionTriple) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 comparing v and other lexicographically
func (v VersionTriple) Compare(other VersionTriple) int {
	a := [3]int{v.Major, v.Minor, v.Patch}
	b := [3]int{other.Major, other.Minor, other.Patch}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// UpdateTo classifies the transition from v to next. The most significant
// differing component decides; downgrades are classified the same way.
func (v VersionTriple) UpdateTo(next VersionTriple) UpdateType {
	switch {
	case v.Major != next.Major:
		return UpdateMajor
	case v.Minor != next.Minor:
		return UpdateMinor
	case v.Patch != next.Patch:
		return UpdatePatch
	default:
		return UpdateNoChange
	}
}
