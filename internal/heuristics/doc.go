// Package heuristics contains the assistant's deterministic security
// utilities: password strength scoring and generation, reversible encodings,
// the phishing-URL checks, and input-format validators.
//
// Every function in this package is total over its string inputs. Failure is
// reported through sentinel results (empty string, false, zero score), never
// through panics.
package heuristics
