package models

import (
	"fmt"
	"strings"
)

// GEPTLevel is the canonical General English Proficiency Test level
type GEPTLevel string

const (
	GEPTElementary       GEPTLevel = "ELEMENTARY"
	GEPTIntermediate     GEPTLevel = "INTERMEDIATE"
	GEPTHighIntermediate GEPTLevel = "HIGH_INTERMEDIATE"
)

// ParseGEPTLevel normalizes client-supplied level strings to the canonical enum.
// Input is case-insensitive and tolerates hyphens and spaces ("high-intermediate",
// "High Intermediate"). "ADVANCED" is an accepted alias for HIGH_INTERMEDIATE.
func ParseGEPTLevel(s string) (GEPTLevel, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	switch normalized {
	case "ELEMENTARY":
		return GEPTElementary, nil
	case "INTERMEDIATE":
		return GEPTIntermediate, nil
	case "HIGH_INTERMEDIATE", "ADVANCED":
		return GEPTHighIntermediate, nil
	}

	return "", fmt.Errorf("invalid GEPT level: %s, must be 'elementary', 'intermediate', or 'high-intermediate'", s)
}

// String returns the canonical enum value
func (l GEPTLevel) String() string {
	return string(l)
}
