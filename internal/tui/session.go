package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dudhatpatel/cyberdefender/internal/adapter"
	"github.com/dudhatpatel/cyberdefender/models"
)

const transcriptWindow = 20

type chatModel struct {
	ctx    context.Context
	client adapter.AssistantClient

	transcript []models.ChatMessage
	input      textinput.Model
	spinner    spinner.Model

	loading      bool
	lastPassword string
	status       string
	errMsg       string

	quitByUser bool
}

func newChatModel(ctx context.Context, client adapter.AssistantClient, greeting string) chatModel {
	input := textinput.New()
	input.Placeholder = "Ask about passwords, fraud, domains... (/help for commands)"
	input.Focus()
	input.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return chatModel{
		ctx:     ctx,
		client:  client,
		input:   input,
		spinner: sp,
		transcript: []models.ChatMessage{{
			Content:   greeting,
			Sender:    models.SenderBot,
			Timestamp: time.Now(),
		}},
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "ctrl+y":
			if m.lastPassword == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.lastPassword)
		case "enter":
			if m.loading {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}

			m.transcript = append(m.transcript, models.ChatMessage{
				Content:   text,
				Sender:    models.SenderUser,
				Timestamp: time.Now(),
			})
			m.input.Reset()
			m.loading = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdSend(text))
		}

	case botRepliedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.password != "" {
			m.lastPassword = msg.password
		}
		m.transcript = append(m.transcript, models.ChatMessage{
			Content:   msg.reply,
			Sender:    models.SenderBot,
			Timestamp: time.Now(),
		})
		return m, nil

	case copiedMsg:
		m.status = "Password copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CyberDefender"))
	b.WriteString("\n\n")

	transcript := m.transcript
	if len(transcript) > transcriptWindow {
		transcript = transcript[len(transcript)-transcriptWindow:]
	}
	for _, message := range transcript {
		switch message.Sender {
		case models.SenderUser:
			b.WriteString(userStyle.Render("you: "))
			b.WriteString(message.Content)
		default:
			b.WriteString(botStyle.Render("bot: " + message.Content))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" thinking...\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send • ctrl+y copy last password • esc quit"))

	return appStyle.Render(b.String())
}

func (m chatModel) cmdSend(text string) tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		reply, password, err := converse(ctx, client, text)
		return botRepliedMsg{reply: reply, password: password, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return botRepliedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// converse resolves one user input to a bot reply. Slash commands invoke the
// tool endpoints directly; anything else goes through the chat classifier.
func converse(ctx context.Context, client adapter.AssistantClient, text string) (reply, password string, err error) {
	if !strings.HasPrefix(text, "/") {
		result, err := client.Chat(ctx, text)
		if err != nil {
			return "", "", err
		}

		// A routed password generation is completed inline so the reply
		// carries an actual password to copy.
		if result.Tool == models.ToolPasswordGenerator {
			generated, err := client.GeneratePassword(ctx, defaultGenerateOptions())
			if err != nil {
				return "", "", err
			}
			return result.Response + "\n\nGenerated: " + generated, generated, nil
		}

		return result.Response, "", nil
	}

	command, rest, _ := strings.Cut(text[1:], " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case "help":
		return commandHelp, "", nil

	case "check":
		strength, err := client.CheckPassword(ctx, rest)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf("Score %d/5\n%s", strength.Score, strings.Join(strength.Feedback, "\n")), "", nil

	case "generate":
		opts := defaultGenerateOptions()
		if length, convErr := strconv.Atoi(rest); convErr == nil && length > 0 {
			opts.Length = length
		}
		generated, err := client.GeneratePassword(ctx, opts)
		if err != nil {
			return "", "", err
		}
		return "Generated: " + generated, generated, nil

	case "hash":
		algorithm, payload, _ := strings.Cut(rest, " ")
		digest, err := client.Hash(ctx, payload, algorithm)
		if err != nil {
			return "", "", err
		}
		return digest, "", nil

	case "link":
		check, err := client.CheckLink(ctx, rest)
		if err != nil {
			return "", "", err
		}
		if !check.IsSuspicious {
			return "No phishing markers found.", "", nil
		}
		return "Suspicious link:\n- " + strings.Join(check.Reasons, "\n- "), "", nil

	case "upi":
		valid, err := client.CheckUPI(ctx, rest)
		if err != nil {
			return "", "", err
		}
		if valid {
			return "UPI ID format is valid.", "", nil
		}
		return "UPI ID format is invalid.", "", nil

	case "ip":
		info, err := client.IPInfo(ctx, rest)
		if err != nil {
			return "", "", err
		}
		return formatIPInfo(info), "", nil

	case "domain":
		result, err := client.AnalyzeDomain(ctx, rest)
		if err != nil {
			return "", "", err
		}
		return formatDomainResult(result), "", nil

	case "laws":
		laws, err := client.Laws(ctx)
		if err != nil {
			return "", "", err
		}
		names := make([]string, 0, len(laws))
		for _, law := range laws {
			names = append(names, "- "+law.Name)
		}
		return strings.Join(names, "\n"), "", nil

	default:
		return "Unknown command. Try /help.", "", nil
	}
}

const commandHelp = `Commands:
/check <password>   score a password
/generate [length]  generate a password
/hash <algo> <text> hex digest (md5, sha1, sha256, sha512)
/link <url>         phishing check
/upi <id>           validate a UPI ID
/ip [address]       geolocation with VPN detection
/domain <name>      full domain security analysis
/laws               Indian cybersecurity laws`

func defaultGenerateOptions() models.PasswordOptions {
	return models.PasswordOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

func formatIPInfo(info models.IPInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s, %s (%s)\n", info.IP, info.City, info.CountryName, info.Org)
	if info.VPNDetection.IsVPNLikely {
		b.WriteString("VPN likely: " + strings.Join(info.VPNDetection.Flags, ", "))
	} else {
		b.WriteString("No VPN markers detected")
	}
	return b.String()
}

func formatDomainResult(result models.DomainSecurityResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: overall risk %s\n", result.Domain, result.OverallRisk)
	fmt.Fprintf(&b, "Registrar: %s, HTTPS: %t, blacklisted: %t\n",
		result.Whois.Registrar, result.Whois.HasHTTPS, result.Whois.IsBlacklisted)
	fmt.Fprintf(&b, "SPF: %t, DKIM: %t, DMARC: %t\n",
		result.EmailSecurity.HasSPF, result.EmailSecurity.HasDKIM, result.EmailSecurity.HasDMARC)
	fmt.Fprintf(&b, "TLS 1.2: %t, TLS 1.3: %t\n",
		result.TLSSecurity.SupportsTLS12, result.TLSSecurity.SupportsTLS13)
	if len(result.Recommendations) > 0 {
		b.WriteString("Recommendations:\n- " + strings.Join(result.Recommendations, "\n- "))
	}
	return b.String()
}
