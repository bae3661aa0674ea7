package sizing

import (
	"strings"
)

// Step is one rung of a SKU ladder. Alias is an optional single-letter code
// (Azure style "S1", "P2v3") that maps onto the same rung.
type Step struct {
	Name  string
	Alias string
}

// Ladder orders SKU families from weakest to strongest.
type Ladder []Step

// DefaultLadder returns the ladder used when a catalog does not declare one.
func DefaultLadder() Ladder {
	return Ladder{
		{Name: "free", Alias: "f"},
		{Name: "basic", Alias: "b"},
		{Name: "developer"},
		{Name: "standard", Alias: "s"},
		{Name: "globalstandard"},
		{Name: "premium", Alias: "p"},
		{Name: "isolated", Alias: "i"},
	}
}

// LadderFromNames builds a ladder from plain family names, weakest first.
func LadderFromNames(names []string) Ladder {
	l := make(Ladder, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		l = append(l, Step{Name: n})
	}
	return l
}

// Rank returns a comparable strength for sku. The family position dominates;
// the first number after the family name breaks ties within a family, so
// "Standard_D4s_v5" outranks "Standard_D2s_v5" and "P2v3" outranks "P1v3".
// The boolean is false when the SKU matches no rung.
func (l Ladder) Rank(sku string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(sku))
	if lower == "" {
		return 0, false
	}

	family, rest := -1, ""
	longest := 0
	for i, step := range l {
		if strings.HasPrefix(lower, step.Name) && len(step.Name) > longest {
			family, rest, longest = i, lower[len(step.Name):], len(step.Name)
		}
	}
	if family < 0 {
		for i, step := range l {
			if step.Alias == "" || len(lower) <= len(step.Alias) {
				continue
			}
			if strings.HasPrefix(lower, step.Alias) && isDigit(lower[len(step.Alias)]) {
				family, rest = i, lower[len(step.Alias):]
				break
			}
		}
	}
	if family < 0 {
		return 0, false
	}
	return family*1000 + firstNumber(rest), true
}

func firstNumber(s string) int {
	n, seen := 0, false
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n = n*10 + int(s[i]-'0')
			seen = true
			if n > 999 {
				return 999
			}
			continue
		}
		if seen {
			break
		}
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
