// SPDX-License-Identifier: Apache-2.0

// Package compliance holds the static reference data on Indian cybersecurity
// laws and common fraud schemes served by the assistant.
package compliance

import "github.com/dudhatpatel/cyberdefender/models"

var laws = []models.LawReference{
	{
		ID:          "it-act-2000",
		Name:        "Information Technology Act, 2000 (IT Act)",
		Description: "The primary law for cybersecurity in India, dealing with electronic transactions, digital signatures, and cybercrimes.",
		KeyProvisions: []string{
			"Section 43: Penalty for damage to computer systems",
			"Section 65: Tampering with computer source documents",
			"Section 66: Computer related offenses",
			"Section 72: Breach of confidentiality and privacy",
		},
		Amendments: "Amended in 2008 to strengthen provisions for data protection and cybercrime.",
	},
	{
		ID:          "cert-in",
		Name:        "CERT-In (Computer Emergency Response Team - India)",
		Description: "The national agency responsible for cybersecurity incident response.",
		Requirements: []string{
			"Mandatory reporting of cybersecurity incidents within 6 hours",
			"Maintenance of logs for 180 days within Indian jurisdiction",
			"Synchronization of system clocks with Network Time Protocol Server",
		},
		ContactInfo: "Incident reporting: incident@cert-in.org.in",
	},
	{
		ID:          "dpdp-2023",
		Name:        "Digital Personal Data Protection Act, 2023 (DPDP)",
		Description: "Comprehensive law for protecting personal data of Indian citizens.",
		KeyProvisions: []string{
			"Consent requirements for data processing",
			"Rights of data principals (individuals)",
			"Obligations of data fiduciaries (organizations)",
			"Establishment of Data Protection Board of India",
		},
		Penalties: "Up to ₹250 crore for serious violations.",
	},
	{
		ID:          "rbi-guidelines",
		Name:        "RBI Guidelines on Cybersecurity",
		Description: "Regulatory framework for banks and financial institutions in India.",
		Requirements: []string{
			"Cybersecurity frameworks for banks",
			"Regular security audits and assessments",
			"Incident reporting procedures",
		},
	},
}

var frauds = []models.FraudPattern{
	{
		Type:        "UPI Fraud",
		Description: "Scammers request money via UPI apps like PhonePe, Google Pay, or Paytm.",
		WarningSign: "Any request to send money for 'verification', 'cashback', or 'lottery winnings'.",
		Prevention:  "Never share OTP or approve collect requests from unknown individuals.",
	},
	{
		Type:        "KYC Fraud",
		Description: "Fraudsters claim your account/wallet will be blocked due to incomplete KYC.",
		WarningSign: "Urgent messages about account suspension or KYC verification.",
		Prevention:  "Always visit official bank websites or apps for KYC updates.",
	},
	{
		Type:        "Job Scams",
		Description: "Fake job offers requiring payment for 'registration' or 'training'.",
		WarningSign: "Jobs with minimal qualifications but promising high salaries, requiring upfront fees.",
		Prevention:  "Never pay for job applications or interviews.",
	},
	{
		Type:        "Aadhaar/PAN Misuse",
		Description: "Scammers collect Aadhaar/PAN details for identity theft.",
		WarningSign: "Requests for ID verification via unofficial channels or websites.",
		Prevention:  "Only share ID details on official government portals.",
	},
	{
		Type:        "Loan Fraud",
		Description: "Fake lending apps or services requiring processing fees for loans.",
		WarningSign: "Upfront fees before loan disbursal, unrealistically low interest rates.",
		Prevention:  "Only deal with RBI-registered financial institutions.",
	},
	{
		Type:        "OTP Fraud",
		Description: "Tricking victims into sharing OTPs to gain account access.",
		WarningSign: "Calls/messages claiming to be from banks requesting OTPs for 'verification'.",
		Prevention:  "Never share OTPs with anyone, even if they claim to be bank officials.",
	},
}

// Laws returns the catalogue of Indian cybersecurity laws. The returned
// slice is a copy; callers may not mutate the reference data.
func Laws() []models.LawReference {
	out := make([]models.LawReference, len(laws))
	copy(out, laws)
	return out
}

// Frauds returns the catalogue of common Indian online fraud schemes, copied
// for the same reason as [Laws].
func Frauds() []models.FraudPattern {
	out := make([]models.FraudPattern, len(frauds))
	copy(out, frauds)
	return out
}
