package sizing

import "fmt"

// Violation reports a stronger tier sized below a weaker one.
type Violation struct {
	Kind     string
	Field    string // "capacity", "replicas" or "sku"
	Weaker   Tier
	Stronger Tier
	Message  string
}

func (v Violation) String() string {
	return v.Message
}

// tierPairs lists (weaker, stronger) combinations that must be ordered.
var tierPairs = [][2]Tier{
	{TierDev, TierStaging},
	{TierDev, TierProd},
	{TierStaging, TierProd},
}

// Lint checks that the rule never sizes a stronger tier below a weaker one.
// Undefined tiers are skipped; totality is checked separately at catalog load.
// SKUs that the ladder cannot rank are not compared.
func Lint(kind string, rule Rule, ladder Ladder) []Violation {
	var out []Violation
	for _, pair := range tierPairs {
		weak, okWeak := rule[pair[0]]
		strong, okStrong := rule[pair[1]]
		if !okWeak || !okStrong {
			continue
		}

		if strong.Capacity < weak.Capacity {
			out = append(out, violation(kind, "capacity", pair,
				fmt.Sprintf("%d < %d", strong.Capacity, weak.Capacity)))
		}
		if strong.ReplicaCount < weak.ReplicaCount {
			out = append(out, violation(kind, "replicas", pair,
				fmt.Sprintf("%d < %d", strong.ReplicaCount, weak.ReplicaCount)))
		}

		weakRank, okW := ladder.Rank(weak.SKU)
		strongRank, okS := ladder.Rank(strong.SKU)
		if okW && okS && strongRank < weakRank {
			out = append(out, violation(kind, "sku", pair,
				fmt.Sprintf("%s is below %s", strong.SKU, weak.SKU)))
		}
	}
	return out
}

func violation(kind, field string, pair [2]Tier, detail string) Violation {
	return Violation{
		Kind:     kind,
		Field:    field,
		Weaker:   pair[0],
		Stronger: pair[1],
		Message: fmt.Sprintf("%s: %s %s is weaker than %s (%s)",
			kind, pair[1], field, pair[0], detail),
	}
}
