package sizing

import (
	"fmt"
)

// Sizing is the concrete capacity of one resource in one tier.
type Sizing struct {
	SKU          string `yaml:"sku" json:"sku"`
	Capacity     int    `yaml:"capacity" json:"capacity"`
	ReplicaCount int    `yaml:"replicas" json:"replicas"`
}

// String returns a compact description such as "S1 x2 (cap 10)".
func (s Sizing) String() string {
	return fmt.Sprintf("%s x%d (cap %d)", s.SKU, s.ReplicaCount, s.Capacity)
}

// Rule is the sizing policy of a resource kind, one entry per tier.
type Rule map[Tier]Sizing

// IsTotal returns true if the rule defines every valid tier.
func (r Rule) IsTotal() bool {
	return len(r.Missing()) == 0
}

// Missing returns the tiers the rule does not define, weakest first.
func (r Rule) Missing() []Tier {
	var missing []Tier
	for _, t := range ValidTiers() {
		if _, ok := r[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

// Clone returns a copy that shares no state with r.
func (r Rule) Clone() Rule {
	out := make(Rule, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Resolve returns the sizing for the given tier.
func Resolve(rule Rule, tier Tier) (Sizing, error) {
	if !tier.IsValid() {
		return Sizing{}, fmt.Errorf("invalid environment tier %q", tier)
	}
	s, ok := rule[tier]
	if !ok {
		return Sizing{}, fmt.Errorf("sizing rule does not define tier %q", tier)
	}
	return s, nil
}
