// Package sizing maps a resource kind's sizing rule and an environment tier
// to concrete capacity values.
//
// A [Rule] is a total table over the three tiers ([TierDev], [TierStaging],
// [TierProd]). [Lint] checks that stronger tiers are never sized below weaker
// ones; SKU strength is compared through a [Ladder].
package sizing
