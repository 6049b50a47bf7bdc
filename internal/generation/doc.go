// Package generation defines the contract between the application core and
// the language-model service that drafts and transforms email text. It owns
// the pieces with real failure-handling design: prompt assembly and
// truncation, the closed error taxonomy every failure is normalized into,
// timeout computation, the retry loop, and recovery of JSON payloads from
// prose-wrapped model output.
//
// The package is deliberately SDK-free. Concrete transports (the Gemini
// client in internal/platform/gemini) implement the Generator interface and
// depend on this package, never the other way around.
package generation
