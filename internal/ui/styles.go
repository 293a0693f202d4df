package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — Done results
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — warnings
	ColorError     = lipgloss.Color("#FF4444") // red    — Failed results
	ColorInfo      = lipgloss.Color("#4CC9F0") // light blue — informational
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan   — addresses, hashes
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — values
	ColorMeta      = lipgloss.Color("#555555") // dim gray  — timestamps, metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue — UI chrome
	ColorNetwork   = lipgloss.Color("#9B5DE5") // purple    — network tags
	ColorHighlight = lipgloss.Color("#F15BB5") // pink      — selected rows
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleNetwork = lipgloss.NewStyle().Foreground(ColorNetwork).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorNetwork).
			Bold(true).
			MarginBottom(1)

	StyleDim = lipgloss.NewStyle().Foreground(ColorMeta)
)

// Banner returns the w3worker ASCII banner.
func Banner() string {
	art := `
  ██╗    ██╗██████╗ ██╗    ██╗
  ██║    ██║╚════██╗██║    ██║
  ██║ █╗ ██║ █████╔╝██║ █╗ ██║
  ██║███╗██║ ╚═══██╗██║███╗██║
  ╚███╔███╔╝██████╔╝╚███╔███╔╝
   ╚══╝╚══╝ ╚═════╝  ╚══╝╚══╝`

	tagline := StyleMeta.Render("   w3worker · on-chain history for agent frameworks  ⚡  v0.1.0")
	features := StyleMeta.Render("   ✦ get_transaction_history  ✦ ETH + BASE mainnet")

	return StyleNetwork.Render(art) + "\n" + tagline + "\n" + features + "\n"
}

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Info formats an informational message.
func Info(msg string) string { return StyleInfo.Render("ℹ " + msg) }

// Hint formats a usage hint.
func Hint(msg string) string { return StyleMeta.Render("💡 " + msg) }

// Addr formats an address.
func Addr(a string) string { return StyleAddress.Render(a) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// Network formats a network tag.
func Network(n string) string { return StyleNetwork.Render(n) }

// LogLine formats one worker progress line for streaming output.
func LogLine(line string) string { return StyleDim.Render("  › " + line) }

// TruncateAddr shortens an address for display: 0x1234…5678.
func TruncateAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// TruncateHash shortens a transaction hash for display: 0x12345678…abcd.
func TruncateHash(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:10] + "…" + hash[len(hash)-4:]
}
