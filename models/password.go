package models

// PasswordStrength is the result of scoring a password. Score is clamped to
// [0, 5]. Feedback always starts with a summary label followed by the
// individual findings in check order.
type PasswordStrength struct {
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
}

// PasswordOptions selects the character classes for password generation.
// When every flag is false the generator falls back to lowercase + digits.
type PasswordOptions struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}
