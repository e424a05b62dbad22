package models

// Tool identifies one of the assistant's built-in security tools. The zero
// value ToolNone means the response is informational only and no tool panel
// is involved.
type Tool string

const (
	ToolNone              Tool = ""
	ToolPasswordChecker   Tool = "password-checker"
	ToolPasswordGenerator Tool = "password-generator"
	ToolIPInfo            Tool = "ip-info"
	ToolHashEncrypt       Tool = "hash-encrypt"
	ToolEncodeDecode      Tool = "encode-decode"
	ToolFraudDetection    Tool = "fraud-detection"
	ToolSecureTransfer    Tool = "secure-transfer"
	ToolCompliance        Tool = "compliance"
	ToolDomainSecurity    Tool = "domain-security"
)
