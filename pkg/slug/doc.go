// Package slug turns names into URL-safe handles.
//
// Diacritics are folded with golang.org/x/text normalization, so "Café Nova"
// becomes "cafe-nova". Anything that is not an ASCII letter or digit acts as a
// word boundary. SplitCamel additionally breaks words at lower-to-upper case
// transitions, which turns "NovaHub" into "nova-hub".
//
//	slug.Make("Bouncy Panda")                     // "bouncy-panda"
//	slug.Make("NovaHub", slug.SplitCamel(true))   // "nova-hub"
//	slug.Make("Vital Solutions", slug.Separator("_"), slug.MaxLength(8)) // "vital"
package slug
