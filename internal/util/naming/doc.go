// Package naming generates deterministic, length-bounded resource names.
//
// Names follow {base}-{kind}-{env}-{suffix} (hyphenated) or
// {base}{kind}{env}{suffix} (compact, for storage accounts and registries).
// When a name exceeds the provider limit the base name is shortened first,
// then the suffix. The kind discriminator and environment are never cut, so
// two kinds can never be truncated into each other. A [Registry] rejects
// duplicate names instead of appending random data.
package naming
