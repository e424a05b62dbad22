package models

// PhishingCheck is the result of running the phishing-URL heuristics over a
// link. Reasons accumulate in the order the heuristics run.
type PhishingCheck struct {
	IsSuspicious bool     `json:"isSuspicious"`
	Reasons      []string `json:"reasons"`
}
