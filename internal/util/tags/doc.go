// Package tags builds the standard tag set applied to every planned resource.
//
// Standard keys identify the workshop deployment a resource belongs to and
// the module that unlocked it. User tags are merged in but can never
// override a standard key.
package tags
