// SPDX-License-Identifier: Apache-2.0

package intel

import (
	"context"
	"fmt"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

// Analyzer runs a full domain security analysis: the four sub-analyses of a
// [DomainIntelligenceSource] plus risk aggregation and recommendations.
//
// The caller must validate the domain shape before calling Analyze; the
// analyzer itself does not re-validate.
type Analyzer struct {
	source DomainIntelligenceSource

	logger *logger.Logger
}

// NewAnalyzer constructs an [Analyzer] on top of the given source.
func NewAnalyzer(source DomainIntelligenceSource, logger *logger.Logger) *Analyzer {
	return &Analyzer{
		source: source,
		logger: logger,
	}
}

// Analyze performs the WHOIS, subdomain, email-security, and TLS sub-analyses
// in order and aggregates them into a [models.DomainSecurityResult]. Results
// are synthesized fresh per call; nothing is cached. If any sub-analysis
// fails the whole call fails with a wrapped error and no partial result.
func (a *Analyzer) Analyze(ctx context.Context, domain string) (models.DomainSecurityResult, error) {
	whois, err := a.source.Whois(ctx, domain)
	if err != nil {
		return models.DomainSecurityResult{}, fmt.Errorf("whois lookup: %w", err)
	}

	subdomains, err := a.source.Subdomains(ctx, domain)
	if err != nil {
		return models.DomainSecurityResult{}, fmt.Errorf("subdomain enumeration: %w", err)
	}

	email, err := a.source.EmailSecurity(ctx, domain)
	if err != nil {
		return models.DomainSecurityResult{}, fmt.Errorf("email security check: %w", err)
	}

	tls, err := a.source.TLSSecurity(ctx, domain)
	if err != nil {
		return models.DomainSecurityResult{}, fmt.Errorf("tls security check: %w", err)
	}

	result := models.DomainSecurityResult{
		Domain:          domain,
		Whois:           whois,
		Subdomains:      subdomains,
		EmailSecurity:   email,
		TLSSecurity:     tls,
		OverallRisk:     OverallRisk(whois, subdomains, email, tls),
		Recommendations: Recommendations(whois, subdomains, email, tls),
	}

	a.logger.Debug().
		Str("domain", domain).
		Str("risk", string(result.OverallRisk)).
		Int("recommendations", len(result.Recommendations)).
		Msg("domain analysis complete")

	return result, nil
}

// OverallRisk aggregates the four sub-analyses into a single risk level.
//
// High:   blacklisted domain, insecure TLS, or two or more email findings.
// Medium: any single findable issue (a sensitive subdomain, an email
//         finding, or a TLS finding).
// Low:    everything else.
func OverallRisk(whois models.WhoisResult, subdomains []models.Subdomain, email models.EmailSecurityResult, tls models.TLSSecurityResult) models.RiskLevel {
	sensitive := countSensitive(subdomains)

	switch {
	case whois.IsBlacklisted || !tls.IsSecure || len(email.Vulnerabilities) >= 2:
		return models.RiskHigh
	case sensitive > 0 || len(email.Vulnerabilities) > 0 || len(tls.Vulnerabilities) > 0:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// Recommendations returns one fixed advisory string per security gap found
// across the four sub-analyses.
func Recommendations(whois models.WhoisResult, subdomains []models.Subdomain, email models.EmailSecurityResult, tls models.TLSSecurityResult) []string {
	recommendations := make([]string, 0, 6)

	if !whois.HasHTTPS {
		recommendations = append(recommendations, "Enable HTTPS on your website")
	}
	if countSensitive(subdomains) > 0 {
		recommendations = append(recommendations, "Secure sensitive subdomains with proper authentication")
	}
	if !email.HasSPF {
		recommendations = append(recommendations, "Add SPF record to prevent email spoofing")
	}
	if !email.HasDKIM {
		recommendations = append(recommendations, "Implement DKIM to validate email authenticity")
	}
	if !email.HasDMARC {
		recommendations = append(recommendations, "Configure DMARC to prevent email spoofing and phishing")
	}
	if !tls.SupportsTLS13 {
		recommendations = append(recommendations, "Upgrade to TLS 1.3 for better security")
	}

	return recommendations
}

func countSensitive(subdomains []models.Subdomain) int {
	count := 0
	for _, sub := range subdomains {
		if sub.IsSensitive {
			count++
		}
	}
	return count
}
