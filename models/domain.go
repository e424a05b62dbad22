package models

// RiskLevel is the aggregated severity of a domain security analysis.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// WhoisResult holds registration data for a domain. Values are simulated or
// taken from a small set of hardcoded well-known-domain profiles.
type WhoisResult struct {
	Registrar     string   `json:"registrar"`
	CreationDate  string   `json:"creationDate"`
	ExpiryDate    string   `json:"expiryDate"`
	Owner         string   `json:"owner"`
	NameServers   []string `json:"nameServers"`
	IsBlacklisted bool     `json:"isBlacklisted"`
	HasHTTPS      bool     `json:"hasHttps"`
	Status        []string `json:"status"`
}

// Subdomain is a single enumerated subdomain. IsSensitive is set when the
// name suggests an internal or administrative endpoint.
type Subdomain struct {
	Name        string `json:"name"`
	IP          string `json:"ip"`
	IsSensitive bool   `json:"isSensitive"`
}

// EmailSecurityResult reports the presence of the three email-authentication
// mechanisms and the record text where available.
type EmailSecurityResult struct {
	HasSPF          bool     `json:"hasSPF"`
	HasDKIM         bool     `json:"hasDKIM"`
	HasDMARC        bool     `json:"hasDMARC"`
	SPFRecord       string   `json:"spfRecord,omitempty"`
	DKIMRecord      string   `json:"dkimRecord,omitempty"`
	DMARCRecord     string   `json:"dmarcRecord,omitempty"`
	Vulnerabilities []string `json:"vulnerabilities"`
}

// TLSSecurityResult reports the TLS capabilities of a domain.
type TLSSecurityResult struct {
	SupportsTLS12     bool     `json:"supportsTls12"`
	SupportsTLS13     bool     `json:"supportsTls13"`
	CertificateIssuer string   `json:"certificateIssuer"`
	CertificateExpiry string   `json:"certificateExpiry"`
	IsSecure          bool     `json:"isSecure"`
	Vulnerabilities   []string `json:"vulnerabilities"`
}

// DomainSecurityResult bundles the four sub-analyses with the aggregated risk
// level and the per-gap recommendations. It is synthesized fresh on every
// analysis call and never cached.
type DomainSecurityResult struct {
	Domain          string              `json:"domain"`
	Whois           WhoisResult         `json:"whois"`
	Subdomains      []Subdomain         `json:"subdomains"`
	EmailSecurity   EmailSecurityResult `json:"emailSecurity"`
	TLSSecurity     TLSSecurityResult   `json:"tlsSecurity"`
	OverallRisk     RiskLevel           `json:"overallRisk"`
	Recommendations []string            `json:"recommendations"`
}
