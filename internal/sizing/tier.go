package sizing

import (
	"fmt"
	"strings"
)

// Tier is a deployment environment profile.
type Tier string

const (
	// TierDev is the cheapest profile, used while working through the modules.
	TierDev Tier = "dev"
	// TierStaging mirrors production topology at reduced scale.
	TierStaging Tier = "staging"
	// TierProd is the production profile.
	TierProd Tier = "prod"
)

// ValidTiers returns all tiers ordered from weakest to strongest.
func ValidTiers() []Tier {
	return []Tier{TierDev, TierStaging, TierProd}
}

// IsValid returns true if the tier is one of the closed set.
func (t Tier) IsValid() bool {
	switch t {
	case TierDev, TierStaging, TierProd:
		return true
	default:
		return false
	}
}

// Rank orders tiers from weakest (0) to strongest (2). Invalid tiers rank -1.
func (t Tier) Rank() int {
	switch t {
	case TierDev:
		return 0
	case TierStaging:
		return 1
	case TierProd:
		return 2
	default:
		return -1
	}
}

// Short returns the three letter form used in resource names.
func (t Tier) Short() string {
	switch t {
	case TierDev:
		return "dev"
	case TierStaging:
		return "stg"
	case TierProd:
		return "prd"
	default:
		return string(t)
	}
}

// String returns a human-readable description of the tier.
func (t Tier) String() string {
	return string(t)
}

// ParseTier parses a tier name. Matching is case-insensitive and accepts the
// short forms returned by [Tier.Short].
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return TierDev, nil
	case "staging", "stg", "stage":
		return TierStaging, nil
	case "prod", "prd", "production":
		return TierProd, nil
	default:
		return "", fmt.Errorf("unknown environment tier %q: must be one of %v", s, ValidTiers())
	}
}
