// Package namegen generates batches of candidate project names by recombining
// curated word lists with words derived from a short project description.
//
// A request carries four inputs: a free-text industry, a free-text theme, a
// comma-separated list of attributes and a Style. The generator resolves the
// industry and theme into words using keyword tables from a WordBank, parses the
// attributes, and then produces exactly BatchSize candidates using the template
// that belongs to the requested style:
//
//	Modern        prefix+suffix            "PulseFlow", "CodeLink"
//	Quirky        adjective + " " + noun   "Zesty Pickle", "innovative Panda"
//	Professional  industry + " " + concept "Capital Partners", "Fund Store"
//	Creative      verb+word                "DreamByte", "ImagineStory"
//
// Every slot in a batch is non-empty: whenever a template cannot produce a name
// (for example a professional name without any industry words) the slot is
// filled from the fallback pool, a random prefix joined with a random suffix.
// Duplicates inside a batch are kept as generated.
//
// # Architecture
//
//   - WordBank holds the keyword tables and the fixed pools. The default bank is
//     embedded as YAML (wordbank.yaml), parsed once and shared read-only. A bank
//     can also be loaded from any reader or file, which is how deployments swap
//     the vocabulary without a rebuild.
//   - IndustryWords and ThemeWords are methods on WordBank and never fail. A
//     token matches a keyword when the keyword is a substring of the token; when
//     nothing matches, the capitalised tokens themselves are returned.
//   - Picker is the only source of randomness. Generator takes it as a
//     dependency, so tests can pass a seeded or scripted picker and assert exact
//     output.
//   - Style is a closed enumeration. ParseStyle rejects unknown values with
//     ErrUnknownStyle, so the generator itself never sees one.
//
// # Usage
//
//	gen := namegen.New(namegen.DefaultWordBank(), namegen.DefaultPicker)
//	names := gen.Generate(namegen.Request{
//		Industry:   "Tech Startup",
//		Theme:      "mobile app",
//		Attributes: "innovative, sustainable",
//		Style:      namegen.Modern,
//	})
//	// len(names) == namegen.BatchSize
//
// Reproducible output for tests, demos and the CLI --seed flag:
//
//	gen := namegen.New(nil, namegen.NewSeededPicker(42))
//
// Loading a custom vocabulary:
//
//	bank, err := namegen.LoadWordBankFile("words.yaml")
//	if err != nil {
//		return err
//	}
//	gen := namegen.New(bank, nil)
//
// A Generator is safe for concurrent use as long as its Picker is; all pickers
// provided by this package are.
package namegen
