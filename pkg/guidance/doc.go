// Package guidance turns loosely structured design hints into values the
// synthesizer can trust.
//
// Hints arrive as an untrusted record ([Raw]), usually decoded from a language
// model reply or produced by [Analyze] from free text. [Validate] coerces every
// field into its domain and records each replacement in [Result.Coerced]
// instead of failing. [Result.Apply] then merges only the hints that were
// present and valid into a [kolam.Request].
//
//	res := guidance.FromPrompt("an intricate 8-petal lotus")
//	req := res.Apply(kolam.Request{GridSize: 11})
//	p := kolam.Synthesize(req)
package guidance
