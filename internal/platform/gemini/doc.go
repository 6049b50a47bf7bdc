// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It owns the single long-lived client created at
// startup and turns logical generation requests into network calls bounded
// by the timeout policy and wrapped in the retry loop.
package gemini
