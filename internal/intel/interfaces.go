// SPDX-License-Identifier: Apache-2.0

package intel

import (
	"context"

	"github.com/dudhatpatel/cyberdefender/models"
)

// DomainIntelligenceSource supplies the four sub-analyses of a domain
// security scan. The shipped implementation fabricates its answers (see
// [NewSimulatedSource]); a real WHOIS/DNS/TLS implementation can be
// substituted without touching the aggregation logic in [Analyzer].
type DomainIntelligenceSource interface {
	Whois(ctx context.Context, domain string) (models.WhoisResult, error)
	Subdomains(ctx context.Context, domain string) ([]models.Subdomain, error)
	EmailSecurity(ctx context.Context, domain string) (models.EmailSecurityResult, error)
	TLSSecurity(ctx context.Context, domain string) (models.TLSSecurityResult, error)
}
