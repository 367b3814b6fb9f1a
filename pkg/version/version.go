// Copyright (c) 2025, FSG Modding.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package version parses and compares mod version numbers.
//
// The game's canonical version format is four dotted components
// ("1.2.0.0"), but mod authors publish anything from a bare major to
// the full four, sometimes with a trailing suffix ("1.0.0.0-rc2").
// Parsing preserves how many components were written so comparisons
// can treat "1.2" as matching any 1.2.x.y.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 4 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version is a mod version number with up to four numeric components.
// The Precision field records how many components were actually
// written (1 to 4) and bounds how deep comparisons look.
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`
	Build int `json:"build,omitempty" yaml:"build,omitempty"`

	// Precision indicates how many components are significant (1-4)
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras stores trailing metadata like "-rc2" or "+mp"
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// NewVersion creates a full-precision Version from four components.
// Use ParseVersion for version strings or lower precision.
func NewVersion(major, minor, patch, build int) Version {
	return Version{
		Major:     major,
		Minor:     minor,
		Patch:     patch,
		Build:     build,
		Precision: 4,
	}
}

// String renders the version respecting its precision. Extras are not
// included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	case 3:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	default:
		return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
	}
}

// ParseVersion parses a version string into a Version struct.
// Supported formats: "1", "1.2", "1.2.3", "1.2.3.4", an optional "v"
// prefix, and trailing metadata after '-' or '+' ("1.0.0.0-rc2"),
// which is preserved in the Extras field.
// Returns an error if the string is empty, a component is not a
// non-negative number, or there are more than four components.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	s = strings.TrimPrefix(s, "v")
	var v Version

	// Split off extras first so suffixes containing dots do not count
	// as components. A leading '-' is a negative component, not a
	// suffix, so the separator must follow a digit.
	mainPart := s
	for i, ch := range s {
		if (ch == '-' || ch == '+') && i > 0 {
			prevCh := s[i-1]
			if prevCh >= '0' && prevCh <= '9' {
				mainPart = s[:i]
				v.Extras = s[i:]
				break
			}
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 4 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		case 3:
			v.Build = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// MustParseVersion parses a version string and panics if parsing
// fails. Only use this for hardcoded strings or in tests; for mod
// descriptor input always use ParseVersion and handle the error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// EqualsOrNewer returns true if v is equal to or newer than other.
// Comparison is performed up to the precision of v, so
// Version{Major:1, Minor:2, Precision:2} matches any 1.2.x.y version.
func (v Version) EqualsOrNewer(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Precision == 1 {
		return true
	}

	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	if v.Precision == 2 {
		return true
	}

	if v.Patch != other.Patch {
		return v.Patch > other.Patch
	}
	if v.Precision == 3 {
		return true
	}

	return v.Build >= other.Build
}

// IsNewer returns true if v is strictly newer than other.
// Respects precision like EqualsOrNewer.
func (v Version) IsNewer(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Precision == 1 {
		return false
	}

	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	if v.Precision == 2 {
		return false
	}

	if v.Patch != other.Patch {
		return v.Patch > other.Patch
	}
	if v.Precision == 3 {
		return false
	}

	return v.Build > other.Build
}

// Equals returns true if all four components match.
// Unlike EqualsOrNewer, this ignores precision.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.Patch == other.Patch &&
		v.Build == other.Build
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other,
// comparing only down to the lower of the two precisions. Useful for
// sorting.
func (v Version) Compare(other Version) int {
	precision := min(v.Precision, other.Precision)

	if v.Major != other.Major {
		return sign(v.Major - other.Major)
	}
	if precision == 1 {
		return 0
	}

	if v.Minor != other.Minor {
		return sign(v.Minor - other.Minor)
	}
	if precision == 2 {
		return 0
	}

	if v.Patch != other.Patch {
		return sign(v.Patch - other.Patch)
	}
	if precision == 3 {
		return 0
	}

	return sign(v.Build - other.Build)
}

// IsValid returns true if all components are non-negative and the
// precision is between 1 and 4.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 || v.Build < 0 {
		return false
	}
	return v.Precision >= 1 && v.Precision <= 4
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
