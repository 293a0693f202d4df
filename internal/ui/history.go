package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// explorerBase maps a network identifier to its block-explorer root.
var explorerBase = map[string]string{
	"ETH_MAINNET":  "https://etherscan.io",
	"BASE_MAINNET": "https://basescan.org",
}

// ExplorerTxURL returns the explorer page for a transaction, or "" when
// the network has no known explorer.
func ExplorerTxURL(network, hash string) string {
	base, ok := explorerBase[strings.ToUpper(strings.TrimSpace(network))]
	if !ok || hash == "" {
		return ""
	}
	return base + "/tx/" + hash
}

// HistoryRow holds per-transaction data needed for interactivity.
type HistoryRow struct {
	Hash        string // full 0x... hash (for copy)
	Network     string
	ExplorerURL string
}

// historyModel is the bubbletea model for the interactive history table.
type historyModel struct {
	title  string
	table  *Table
	rows   []HistoryRow // parallel to table.Rows
	cursor int
	flash  string // brief feedback shown in hint bar
}

func (m historyModel) Init() tea.Cmd { return nil }

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.flash = ""
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < m.table.Len()-1 {
				m.cursor++
			}

		case "o":
			if m.cursor < len(m.rows) {
				url := m.rows[m.cursor].ExplorerURL
				if url != "" {
					openBrowser(url)
					m.flash = "Opening in browser…"
				} else {
					m.flash = "No explorer URL available"
				}
			}

		case "c":
			if m.cursor < len(m.rows) {
				hash := m.rows[m.cursor].Hash
				if hash == "" {
					m.flash = "No hash available"
					break
				}
				if err := copyToClipboard(hash); err == nil {
					m.flash = "Copied: " + TruncateHash(hash)
				} else {
					m.flash = "Copy failed: " + err.Error()
				}
			}
		}
	}
	return m, nil
}

func (m historyModel) View() string {
	m.table.SelIdx = m.cursor

	var sb strings.Builder

	sb.WriteString(m.title)
	sb.WriteString("\n\n")
	sb.WriteString(m.table.Render())
	sb.WriteString("\n")
	if m.flash != "" {
		sb.WriteString(StyleSuccess.Render("  ✓ " + m.flash))
	} else {
		sb.WriteString(historyControls())
	}
	sb.WriteString("\n")

	return sb.String()
}

// historyControls renders the bottom control bar.
func historyControls() string {
	sep := StyleMeta.Render("   ")
	var sb strings.Builder
	sb.WriteString(StyleMeta.Render("[ ↑↓ ]"))
	sb.WriteString(StyleMeta.Render(" navigate"))
	sb.WriteString(sep)
	sb.WriteString(StyleInfo.Render("[ o ]"))
	sb.WriteString(StyleMeta.Render(" open in explorer"))
	sb.WriteString(sep)
	sb.WriteString(StyleWarning.Render("[ c ]"))
	sb.WriteString(StyleMeta.Render(" copy hash"))
	sb.WriteString(sep)
	sb.WriteString(StyleMeta.Render("[ q ]"))
	sb.WriteString(StyleMeta.Render(" quit"))
	return sb.String()
}

// RunHistoryList starts the interactive transaction list. Blocks until
// the user quits. Uses the alt screen so the terminal is restored.
func RunHistoryList(title string, table *Table, rows []HistoryRow) error {
	m := historyModel{
		title: title,
		table: table,
		rows:  rows,
	}
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// openBrowser opens url in the OS default browser.
func openBrowser(url string) {
	var name string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "cmd"
	default:
		name = "xdg-open"
	}
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command(name, "/c", "start", url)
	} else {
		cmd = exec.Command(name, url)
	}
	_ = cmd.Start()
}

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "windows":
		cmd = exec.Command("clip")
	default:
		// Try wl-copy (Wayland), fall back to xclip.
		if _, err := exec.LookPath("wl-copy"); err == nil {
			cmd = exec.Command("wl-copy")
		} else {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		}
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	_, _ = io.WriteString(stdin, text)
	stdin.Close()
	return cmd.Wait()
}
