// SPDX-License-Identifier: Apache-2.0

package router

// Canned response texts of the assistant. Multi-line answers keep their
// formatting; the chat surface renders them verbatim.
const (
	responsePasswordChecker   = "Let me check how strong your password is. Use the tool below to analyze your password's security level:"
	responsePasswordGenerator = "I'll create a strong password for you. Use the generator below to customize your password:"
	responseIPInfo            = "Let me fetch information about your IP address and check for VPN usage:"
	responseHashEncrypt       = "You can encrypt or hash your data using the tool below:"
	responseEncodeDecode      = "Use this tool to encode or decode your data:"
	responseFraudDetection    = "I can help you detect and report fraud. Let me analyze suspicious links, messages, or guide you to official reporting channels:"
	responseSecureTransfer    = "I can help you securely transfer files with end-to-end encryption and password protection:"
	responseCompliance        = "Let me provide information about Indian cybersecurity laws and compliance requirements:"
	responseDomainSecurity    = "I can analyze domain security, including WHOIS information, subdomains, email security (SPF, DKIM, DMARC), and TLS configuration:"

	responseGreeting = "Hello! I'm CyberDefender, your personal security assistant. I can help with password security, fraud detection, secure file transfers, domain security analysis, and compliance with Indian cybersecurity laws. How can I assist you today?"
	responseHelp     = "I can help you with various security tasks like checking password strength, generating secure passwords, providing IP information, detecting fraud, securely transferring files, analyzing domain security, and guiding you on Indian cybersecurity compliance. Just ask!"

	responseDownloadFile = "To download your secure file, I'll need the 4-digit password that was provided to you. Please enter the password to access your encrypted file."

	responseFallback = "I'm not sure I understand what you need. I can help with password checking, generation, IP information, encryption, fraud detection, secure file transfers, domain security analysis, and Indian cybersecurity compliance. Please try asking in a different way or select a tool from the tabs above."

	// InitialBotMessage opens every chat session.
	InitialBotMessage = "Hello! I'm CyberDefender, your personal security assistant. I can help with password checking, encryption, fraud detection, and Indian cybersecurity compliance. How can I help you today?"
)

const responseReportCybercrime = `To report cybercrime, follow these steps:

1. Collect evidence - screenshots, emails, messages, transaction details
2. Report to authorities based on your location:
   • India: Visit https://cybercrime.gov.in or call 1930
   • USA: FBI's Internet Crime Complaint Center (IC3) at https://www.ic3.gov
   • UK: Action Fraud at https://www.actionfraud.police.uk
   • Canada: Canadian Anti-Fraud Centre at https://www.antifraudcentre-centreantifraude.ca

3. Contact your bank/payment provider if financial fraud occurred
4. Report to the platform where fraud happened (social media, e-commerce)
5. Document your complaint reference numbers

Would you like more specific information about reporting in India?`

const responseIndiaReporting = `For reporting cybercrimes in India, you have multiple options:

1. National Cyber Crime Reporting Portal: https://cybercrime.gov.in
   • Report all types of cybercrimes including financial fraud, social media, and child exploitation
   • Available in multiple Indian languages

2. Cybercrime Helpline: Call 1930 (toll-free)
   • For immediate assistance with financial frauds
   • Operates 24/7

3. Local Police Station
   • File an FIR at your nearest police station with cybercrime cell

4. For financial frauds:
   • Report within 24 hours for higher chances of fund recovery
   • RBI Ombudsman for banking related issues

5. Document every communication with case ID numbers

After reporting, keep following up with the authorities for case updates.`
