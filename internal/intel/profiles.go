// SPDX-License-Identifier: Apache-2.0

package intel

import "github.com/dudhatpatel/cyberdefender/models"

// domainProfile holds the fixed sub-analysis answers for a well-known domain.
type domainProfile struct {
	whois      models.WhoisResult
	subdomains []models.Subdomain
	email      models.EmailSecurityResult
	tls        models.TLSSecurityResult
}

// knownDomains pins a few famous domains to realistic values so demo scans
// do not show obviously random data for them. Every other domain gets
// weighted random draws.
var knownDomains = map[string]domainProfile{
	"google.com": {
		whois: models.WhoisResult{
			Registrar:    "MarkMonitor, Inc.",
			CreationDate: "1997-09-15",
			ExpiryDate:   "2028-09-14",
			Owner:        "Google LLC",
			NameServers:  []string{"ns1.google.com", "ns2.google.com", "ns3.google.com", "ns4.google.com"},
			HasHTTPS:     true,
			Status:       []string{"clientDeleteProhibited", "clientTransferProhibited", "clientUpdateProhibited"},
		},
		subdomains: []models.Subdomain{
			{Name: "www.google.com", IP: "142.250.185.78"},
			{Name: "mail.google.com", IP: "142.250.185.83"},
			{Name: "drive.google.com", IP: "142.250.185.14"},
			{Name: "admin.google.com", IP: "142.250.185.46", IsSensitive: true},
		},
		email: models.EmailSecurityResult{
			HasSPF:          true,
			HasDKIM:         true,
			HasDMARC:        true,
			SPFRecord:       "v=spf1 include:_spf.google.com ~all",
			DKIMRecord:      "v=DKIM1; k=rsa; p=MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAvUfM...",
			DMARCRecord:     "v=DMARC1; p=reject; rua=mailto:mailauth-reports@google.com",
			Vulnerabilities: []string{},
		},
		tls: models.TLSSecurityResult{
			SupportsTLS12:     true,
			SupportsTLS13:     true,
			CertificateIssuer: "GTS CA 1C3",
			CertificateExpiry: "2026-11-07",
			IsSecure:          true,
		},
	},
	"yahoo.com": {
		whois: models.WhoisResult{
			Registrar:    "MarkMonitor, Inc.",
			CreationDate: "1995-01-18",
			ExpiryDate:   "2027-01-19",
			Owner:        "Yahoo! Inc.",
			NameServers:  []string{"ns1.yahoo.com", "ns2.yahoo.com", "ns3.yahoo.com"},
			HasHTTPS:     true,
			Status:       []string{"clientDeleteProhibited", "clientTransferProhibited"},
		},
		subdomains: []models.Subdomain{
			{Name: "www.yahoo.com", IP: "74.6.231.21"},
			{Name: "mail.yahoo.com", IP: "74.6.231.20"},
			{Name: "finance.yahoo.com", IP: "74.6.231.22"},
		},
		email: models.EmailSecurityResult{
			HasSPF:          true,
			HasDKIM:         true,
			HasDMARC:        false,
			SPFRecord:       "v=spf1 include:_spf.yahoo.com ~all",
			DKIMRecord:      "v=DKIM1; k=rsa; p=MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAo...",
			Vulnerabilities: []string{"Missing DMARC record"},
		},
		tls: models.TLSSecurityResult{
			SupportsTLS12:     true,
			SupportsTLS13:     false,
			CertificateIssuer: "DigiCert SHA2 High Assurance Server CA",
			CertificateExpiry: "2026-07-16",
			IsSecure:          true,
		},
	},
}
