package models

// LawReference is a static entry describing one Indian cybersecurity law or
// regulatory framework.
type LawReference struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	KeyProvisions []string `json:"keyProvisions,omitempty"`
	Requirements  []string `json:"requirements,omitempty"`
	Amendments    string   `json:"amendments,omitempty"`
	Penalties     string   `json:"penalties,omitempty"`
	ContactInfo   string   `json:"contactInfo,omitempty"`
}

// FraudPattern describes one common online fraud scheme with its warning
// sign and prevention advice.
type FraudPattern struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	WarningSign string `json:"warningSign"`
	Prevention  string `json:"prevention"`
}
