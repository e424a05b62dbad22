// SPDX-License-Identifier: Apache-2.0

package intel

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/dudhatpatel/cyberdefender/models"
)

// simulatedSource is the demo implementation of [DomainIntelligenceSource].
// It returns hardcoded profiles for a short list of well-known domains and
// weighted random draws for everything else. No network traffic is produced;
// the configured delay only imitates one.
type simulatedSource struct {
	delay time.Duration
	now   func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulatedSource constructs a [DomainIntelligenceSource] that fabricates
// its results. delay is waited before every sub-analysis to mimic a network
// round trip; the wait honors context cancellation. rnd may be nil, in which
// case an auto-seeded generator is used; tests pass a seeded one for
// reproducible draws.
func NewSimulatedSource(delay time.Duration, rnd *rand.Rand) DomainIntelligenceSource {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &simulatedSource{
		delay: delay,
		now:   time.Now,
		rnd:   rnd,
	}
}

// chance reports true with probability p. The generator is shared across
// requests, so draws are serialized.
func (s *simulatedSource) chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < p
}

// wait blocks for the simulated network delay or until ctx is done.
func (s *simulatedSource) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Whois implements [DomainIntelligenceSource].
func (s *simulatedSource) Whois(ctx context.Context, domain string) (models.WhoisResult, error) {
	if err := s.wait(ctx); err != nil {
		return models.WhoisResult{}, err
	}

	if profile, ok := knownDomains[strings.ToLower(domain)]; ok {
		return profile.whois, nil
	}

	return models.WhoisResult{
		Registrar:     "Example Registrar, Inc.",
		CreationDate:  "2020-01-01",
		ExpiryDate:    "2025-01-01",
		Owner:         "[Redacted for Privacy]",
		NameServers:   []string{"ns1.example.com", "ns2.example.com"},
		IsBlacklisted: false,
		HasHTTPS:      true,
		Status:        []string{"clientTransferProhibited"},
	}, nil
}

// Subdomains implements [DomainIntelligenceSource].
func (s *simulatedSource) Subdomains(ctx context.Context, domain string) ([]models.Subdomain, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if profile, ok := knownDomains[strings.ToLower(domain)]; ok {
		return profile.subdomains, nil
	}

	names := []struct {
		prefix string
		ip     string
	}{
		{prefix: "www", ip: "192.168.1.1"},
		{prefix: "mail", ip: "192.168.1.2"},
		{prefix: "api", ip: "192.168.1.3"},
		{prefix: "admin", ip: "192.168.1.4"},
	}

	subdomains := make([]models.Subdomain, 0, len(names))
	for _, n := range names {
		name := fmt.Sprintf("%s.%s", n.prefix, domain)
		subdomains = append(subdomains, models.Subdomain{
			Name:        name,
			IP:          n.ip,
			IsSensitive: IsSensitiveSubdomain(name),
		})
	}

	return subdomains, nil
}

// EmailSecurity implements [DomainIntelligenceSource]. Presence of the three
// mechanisms is drawn independently: SPF 70%, DKIM 60%, DMARC 30%.
func (s *simulatedSource) EmailSecurity(ctx context.Context, domain string) (models.EmailSecurityResult, error) {
	if err := s.wait(ctx); err != nil {
		return models.EmailSecurityResult{}, err
	}

	if profile, ok := knownDomains[strings.ToLower(domain)]; ok {
		return profile.email, nil
	}

	result := models.EmailSecurityResult{
		HasSPF:  s.chance(0.7),
		HasDKIM: s.chance(0.6),
		HasDMARC: s.chance(0.3),
	}

	if result.HasSPF {
		result.SPFRecord = fmt.Sprintf("v=spf1 include:_spf.%s ~all", domain)
	}
	if result.HasDKIM {
		result.DKIMRecord = "v=DKIM1; k=rsa; p=MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8A..."
	}
	if result.HasDMARC {
		result.DMARCRecord = fmt.Sprintf("v=DMARC1; p=none; rua=mailto:dmarc-reports@%s", domain)
	}

	result.Vulnerabilities = emailVulnerabilities(result)

	return result, nil
}

// TLSSecurity implements [DomainIntelligenceSource]. Protocol support is
// drawn independently: TLS 1.2 90%, TLS 1.3 50%. IsSecure is derived, not
// drawn: a host is secure when it supports at least one modern version.
func (s *simulatedSource) TLSSecurity(ctx context.Context, domain string) (models.TLSSecurityResult, error) {
	if err := s.wait(ctx); err != nil {
		return models.TLSSecurityResult{}, err
	}

	if profile, ok := knownDomains[strings.ToLower(domain)]; ok {
		result := profile.tls
		result.Vulnerabilities = s.tlsVulnerabilities(result)
		return result, nil
	}

	result := models.TLSSecurityResult{
		SupportsTLS12:     s.chance(0.9),
		SupportsTLS13:     s.chance(0.5),
		CertificateIssuer: "Let's Encrypt Authority X3",
		CertificateExpiry: s.now().AddDate(0, 3, 0).Format("2006-01-02"),
	}
	result.IsSecure = result.SupportsTLS12 || result.SupportsTLS13
	result.Vulnerabilities = s.tlsVulnerabilities(result)

	return result, nil
}

// emailVulnerabilities lists one finding per missing mechanism.
func emailVulnerabilities(r models.EmailSecurityResult) []string {
	vulnerabilities := make([]string, 0, 3)
	if !r.HasSPF {
		vulnerabilities = append(vulnerabilities, "Missing SPF record")
	}
	if !r.HasDKIM {
		vulnerabilities = append(vulnerabilities, "Missing DKIM record")
	}
	if !r.HasDMARC {
		vulnerabilities = append(vulnerabilities, "Missing DMARC record")
	}
	return vulnerabilities
}

// tlsVulnerabilities flags hosts without modern TLS and expired certificates.
func (s *simulatedSource) tlsVulnerabilities(r models.TLSSecurityResult) []string {
	vulnerabilities := make([]string, 0, 2)
	if !r.SupportsTLS12 && !r.SupportsTLS13 {
		vulnerabilities = append(vulnerabilities, "No support for modern TLS (1.2+)")
	}
	if expiry, err := time.Parse("2006-01-02", r.CertificateExpiry); err == nil && expiry.Before(s.now()) {
		vulnerabilities = append(vulnerabilities, "Expired SSL certificate")
	}
	return vulnerabilities
}

// IsSensitiveSubdomain reports whether a subdomain name suggests an internal
// or administrative endpoint.
func IsSensitiveSubdomain(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "admin") || strings.Contains(lower, "dev")
}
