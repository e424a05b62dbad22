// SPDX-License-Identifier: Apache-2.0

package heuristics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dudhatpatel/cyberdefender/models"
)

var (
	ipHostRe        = regexp.MustCompile(`^https?://\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)
	suspiciousTLDRe = regexp.MustCompile(`\.(xyz|tk|ml|ga|cf|gq|top|xin|club|work|date)$`)

	// Words that frequently appear in credential-harvesting URLs.
	suspiciousWords = []string{
		"secure", "login", "signin", "account", "verification", "verify",
		"authenticate", "wallet", "confirm", "update", "banking",
	}

	// Brands commonly impersonated by typosquatting domains.
	commonBrands = []string{
		"paypal", "apple", "microsoft", "amazon", "netflix", "facebook",
		"google", "instagram", "whatsapp", "bank", "wells", "chase", "citi",
		"hsbc", "barclays", "hdfc", "sbi", "icici", "axis", "paytm", "phonepe", "gpay",
	}

	brandPatterns = buildBrandPatterns()
)

type brandPattern struct {
	brand string
	re    *regexp.Regexp
}

// buildBrandPatterns compiles a near-spelling matcher per brand: the brand
// with its last letter replaced or followed by one or two extra letters.
func buildBrandPatterns() []brandPattern {
	patterns := make([]brandPattern, 0, len(commonBrands))
	for _, brand := range commonBrands {
		expr := fmt.Sprintf(`(?i)%s[a-z]{1,2}|%s[a-z]{1,2}`, brand[:len(brand)-1], brand)
		patterns = append(patterns, brandPattern{brand: brand, re: regexp.MustCompile(expr)})
	}
	return patterns
}

// CheckPhishingLink runs the phishing heuristics over url and returns every
// reason that triggered, in check order: IP-literal host, suspicious TLD,
// brand typosquatting, suspicious keyword, excessive subdomains.
//
// The typosquat and keyword checks stop at their first hit; the other checks
// are evaluated independently. A clean URL yields {false, []}.
func CheckPhishingLink(url string) models.PhishingCheck {
	reasons := make([]string, 0, 5)

	if ipHostRe.MatchString(url) {
		reasons = append(reasons, "URL uses IP address instead of domain name")
	}

	if suspiciousTLDRe.MatchString(url) {
		reasons = append(reasons, "URL uses suspicious top-level domain")
	}

	for _, p := range brandPatterns {
		if p.re.MatchString(url) && !strings.Contains(url, p.brand) {
			reasons = append(reasons, fmt.Sprintf("Possible typosquatting of %s", p.brand))
			break
		}
	}

	lowerURL := strings.ToLower(url)
	for _, word := range suspiciousWords {
		if strings.Contains(lowerURL, word) {
			reasons = append(reasons, fmt.Sprintf("URL contains suspicious word: %s", word))
			break
		}
	}

	if strings.Count(url, ".") > 3 {
		reasons = append(reasons, "URL has an unusual number of subdomains")
	}

	return models.PhishingCheck{
		IsSuspicious: len(reasons) > 0,
		Reasons:      reasons,
	}
}
