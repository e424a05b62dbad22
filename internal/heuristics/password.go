// SPDX-License-Identifier: Apache-2.0

package heuristics

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"github.com/dudhatpatel/cyberdefender/models"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+~`|}{[]:;?><,./-="
)

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[^A-Za-z0-9]`)

	// Common tokens that make a password trivially guessable.
	commonPatterns = []string{"123", "abc", "qwerty", "password", "admin", "welcome"}
)

// CheckPasswordStrength scores password on a 0–5 scale and returns the score
// with a feedback list. The first feedback entry is always a summary label;
// the rest accumulate in check order: length, uppercase, lowercase, digits,
// symbols, repeated characters, common patterns.
//
// An empty password short-circuits to {0, ["Password is empty"]}.
func CheckPasswordStrength(password string) models.PasswordStrength {
	if password == "" {
		return models.PasswordStrength{Score: 0, Feedback: []string{"Password is empty"}}
	}

	score := 0
	feedback := make([]string, 0, 8)

	if len(password) < 8 {
		feedback = append(feedback, "Password is too short (minimum 8 characters)")
	} else {
		score += min(2, len(password)/8)
	}

	if upperRe.MatchString(password) {
		score++
	} else {
		feedback = append(feedback, "Add uppercase letters")
	}

	if lowerRe.MatchString(password) {
		score++
	} else {
		feedback = append(feedback, "Add lowercase letters")
	}

	if digitRe.MatchString(password) {
		score++
	} else {
		feedback = append(feedback, "Add numbers")
	}

	if symbolRe.MatchString(password) {
		score++
	} else {
		feedback = append(feedback, "Add special characters")
	}

	// Deductions run regardless of how many points were collected above.
	if hasTripleRepeat(password) {
		score--
		feedback = append(feedback, "Avoid repeated characters")
	}

	if containsCommonPattern(password) {
		score--
		feedback = append(feedback, "Avoid common patterns")
	}

	score = max(0, min(5, score))

	var summary string
	switch {
	case score >= 4:
		summary = "Strong password!"
	case score >= 3:
		summary = "Good password, but could be improved"
	default:
		summary = "Weak password, please improve"
	}
	feedback = append([]string{summary}, feedback...)

	return models.PasswordStrength{Score: score, Feedback: feedback}
}

// hasTripleRepeat reports whether any character occurs three or more times in
// a row.
func hasTripleRepeat(s string) bool {
	runes := []rune(s)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return true
		}
	}
	return false
}

func containsCommonPattern(s string) bool {
	lower := strings.ToLower(s)
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// GeneratePassword returns a random password of exactly opts.Length
// characters drawn from the enabled character classes. The pool is built by
// concatenating the classes in a fixed order: uppercase, lowercase, digits,
// symbols. When every class is disabled the pool falls back to
// lowercase + digits, so the function never fails on an all-false request.
//
// Draws are independent and uniform over the pool; there is no guarantee
// that every enabled class is represented in the output.
func GeneratePassword(opts models.PasswordOptions) string {
	var pool strings.Builder
	if opts.Uppercase {
		pool.WriteString(uppercaseChars)
	}
	if opts.Lowercase {
		pool.WriteString(lowercaseChars)
	}
	if opts.Digits {
		pool.WriteString(digitChars)
	}
	if opts.Symbols {
		pool.WriteString(symbolChars)
	}

	chars := pool.String()
	if chars == "" {
		chars = lowercaseChars + digitChars
	}

	password := make([]byte, opts.Length)
	for i := range password {
		password[i] = chars[randomIndex(len(chars))]
	}

	return string(password)
}

// randomIndex draws a uniform index in [0, n) from the OS CSPRNG. A failed
// random read degrades to index 0 rather than failing the generation call.
func randomIndex(n int) int {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(idx.Int64())
}
