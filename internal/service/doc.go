// Package service contains the application services the API handlers call.
// DraftService turns add-in requests into generation calls through the
// resilient client; ExtractService does the same for structured JSON
// extraction. Services never touch the host document: callers pass
// already-extracted text in and receive generated text out.
package service
