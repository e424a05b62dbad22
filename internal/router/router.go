// SPDX-License-Identifier: Apache-2.0

// Package router implements the assistant's intent engine: an ordered rule
// table that maps free-text user messages to a tool selection and a canned
// response.
package router

import (
	"strings"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

// predicate tests a lower-cased user message.
type predicate func(msg string) bool

// rule pairs a predicate with the tool and response produced when it fires.
type rule struct {
	match    predicate
	tool     models.Tool
	response string
}

// Router classifies chat messages. Classification is deterministic: rules
// are evaluated top to bottom and the first match wins, so the table order
// is part of the contract. Several rules can match the same message (e.g.
// "check domain security" satisfies both the password-style "check" patterns
// and the domain rule); only the earliest one fires.
type Router struct {
	rules []rule

	logger *logger.Logger
}

// NewRouter constructs a [Router] with the built-in rule table.
func NewRouter(logger *logger.Logger) *Router {
	return &Router{
		rules:  buildRules(),
		logger: logger,
	}
}

// Classify maps a raw user message to a tool and response. It is total over
// all inputs: unmatched messages fall through to the generic fallback with
// [models.ToolNone]. The caller owns all side effects (appending transcript
// messages, switching tool panels); Classify only computes.
func (r *Router) Classify(message string) models.ClassifyResult {
	lower := strings.ToLower(message)

	for _, rule := range r.rules {
		if rule.match(lower) {
			r.logger.Debug().
				Str("tool", string(rule.tool)).
				Msg("message classified")

			return models.ClassifyResult{Response: rule.response, Tool: rule.tool}
		}
	}

	return models.ClassifyResult{Response: responseFallback, Tool: models.ToolNone}
}

// buildRules assembles the rule table. Order is significant and mirrors the
// assistant's historical behavior; append-only changes are safe, reordering
// is not.
func buildRules() []rule {
	return []rule{
		{
			match:    and(anyOf("password"), anyOf("check", "strength", "secure")),
			tool:     models.ToolPasswordChecker,
			response: responsePasswordChecker,
		},
		{
			match:    and(anyOf("generate"), anyOf("password")),
			tool:     models.ToolPasswordGenerator,
			response: responsePasswordGenerator,
		},
		{
			match:    and(anyOf("ip", "location", "vpn"), anyOf("information", "details", "data", "what", "where")),
			tool:     models.ToolIPInfo,
			response: responseIPInfo,
		},
		{
			match:    and(anyOf("encrypt", "hash", "decrypt"), anyOf("data", "text", "message")),
			tool:     models.ToolHashEncrypt,
			response: responseHashEncrypt,
		},
		{
			match:    and(anyOf("encode", "decode"), anyOf("base64", "url")),
			tool:     models.ToolEncodeDecode,
			response: responseEncodeDecode,
		},
		{
			match:    anyOf("fraud", "scam", "phishing", "fake", "spam", "suspicious"),
			tool:     models.ToolFraudDetection,
			response: responseFraudDetection,
		},
		{
			match:    anyOf("transfer", "send file", "upload", "secure file", "encrypted file"),
			tool:     models.ToolSecureTransfer,
			response: responseSecureTransfer,
		},
		{
			match:    anyOf("compliance", "it act", "cert-in", "dpdp", "law", "legal", "regulation", "indian"),
			tool:     models.ToolCompliance,
			response: responseCompliance,
		},
		{
			// Multi-keyword conjunction keeps this rule from colliding with
			// the simpler "check"-style patterns above.
			match:    and(anyOf("domain", "website", "site"), anyOf("security", "check", "analyze", "scan", "whois", "tls", "ssl", "subdomain", "email")),
			tool:     models.ToolDomainSecurity,
			response: responseDomainSecurity,
		},
		{
			match:    anyOf("hello", "hi", "hey"),
			tool:     models.ToolNone,
			response: responseGreeting,
		},
		{
			match:    anyOf("help", "what can you do"),
			tool:     models.ToolNone,
			response: responseHelp,
		},
		{
			match: or(
				and(anyOf("report"), anyOf("cyber"), anyOf("crime", "fraud")),
				and(anyOf("how"), anyOf("report"), anyOf("fraud")),
			),
			tool:     models.ToolNone,
			response: responseReportCybercrime,
		},
		{
			match:    and(anyOf("india", "indian"), anyOf("report", "complaint")),
			tool:     models.ToolNone,
			response: responseIndiaReporting,
		},
		{
			match:    and(anyOf("download"), anyOf("file")),
			tool:     models.ToolNone,
			response: responseDownloadFile,
		},
	}
}

// anyOf matches when at least one keyword is contained in the message.
func anyOf(keywords ...string) predicate {
	return func(msg string) bool {
		for _, keyword := range keywords {
			if strings.Contains(msg, keyword) {
				return true
			}
		}
		return false
	}
}

// and matches when every predicate matches.
func and(predicates ...predicate) predicate {
	return func(msg string) bool {
		for _, p := range predicates {
			if !p(msg) {
				return false
			}
		}
		return true
	}
}

// or matches when at least one predicate matches.
func or(predicates ...predicate) predicate {
	return func(msg string) bool {
		for _, p := range predicates {
			if p(msg) {
				return true
			}
		}
		return false
	}
}
