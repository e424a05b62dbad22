// SPDX-License-Identifier: Apache-2.0

package heuristics

import "regexp"

var (
	// localpart@provider, e.g. "merchant.name@okhdfcbank".
	upiIDRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+$`)

	// Dot-separated alphanumeric labels with optional inner hyphens and a
	// final label of at least two letters, e.g. "example.com".
	domainRe = regexp.MustCompile(`(?i)^([a-z0-9]+(-[a-z0-9]+)*\.)+[a-z]{2,}$`)
)

// ValidateUPIID reports whether id has the localpart@provider shape of a UPI
// payment address. This is a format check only; no payment network is
// consulted.
func ValidateUPIID(id string) bool {
	return upiIDRe.MatchString(id)
}

// ValidateDomain reports whether domain has a plausible DNS-name shape.
// Callers must validate domains with this function before requesting a
// security analysis.
func ValidateDomain(domain string) bool {
	return domainRe.MatchString(domain)
}
