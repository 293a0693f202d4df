package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mohsinsiddi/w3worker/agent"
	"github.com/Mohsinsiddi/w3worker/alchemy"
	"github.com/Mohsinsiddi/w3worker/internal/ui"
	"github.com/spf13/cobra"
)

var (
	historyNetworks    string
	historyLimit       int
	historyFindBy      string
	historyFindValue   string
	historyJSON        bool
	historyInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history <address>",
	Short: "Fetch transaction history for an address",
	Long: `Fetch recent transactions for an address through the worker function,
exactly as an agent call would run it.

  # Default networks and limit from config
  w3worker history 0x742d35Cc6634C0532925a3b844Bc454e4438f44e

  # Both supported networks, last 5 transactions
  w3worker history 0x742d... --networks ETH_MAINNET,BASE_MAINNET --limit 5

  # Only transactions sent to a specific counterparty
  w3worker history 0x742d... --find-by toAddress --find-value 0xdead...

  # Machine-readable output
  w3worker history 0x742d... --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := args[0]

		key, err := requireAPIKey()
		if err != nil {
			return err
		}
		reg, err := newRegistry(key)
		if err != nil {
			return err
		}

		callArgs := map[string]any{"address": address}
		if historyNetworks != "" {
			callArgs["networks"] = historyNetworks
		} else if len(cfg.DefaultNetworks) > 0 {
			callArgs["networks"] = cfg.DefaultNetworks
		}
		if cmd.Flags().Changed("limit") {
			callArgs["limit"] = historyLimit
		} else if cfg.DefaultLimit > 0 {
			callArgs["limit"] = cfg.DefaultLimit
		}
		if historyFindBy != "" {
			callArgs["findBy"] = historyFindBy
		}
		if historyFindValue != "" {
			callArgs["findValue"] = historyFindValue
		}

		// Worker log lines: streamed live with --verbose, collected and
		// replayed after the spinner otherwise, swallowed under --json.
		var lines []string
		logger := agent.LoggerFunc(func(line string) { lines = append(lines, line) })
		if verbose {
			logger = agent.LoggerFunc(func(line string) { fmt.Println(ui.LogLine(line)) })
		}

		var spin *ui.Spinner
		if !verbose && !historyJSON {
			netsLabel := historyNetworks
			if netsLabel == "" {
				netsLabel = strings.Join(cfg.DefaultNetworks, ",")
			}
			spin = ui.NewSpinner(fmt.Sprintf("Querying %s on %s...", ui.TruncateAddr(address), ui.Network(netsLabel)))
			spin.Start()
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		res, err := reg.Call(ctx, alchemy.HistoryFunctionName, agent.Request{Args: callArgs, Log: logger})
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}

		if !verbose && !historyJSON {
			for _, line := range lines {
				fmt.Println(ui.LogLine(line))
			}
		}

		if !res.OK() {
			return errors.New(res.Feedback)
		}

		payload, ok := agent.ResultPayload(res.Feedback)
		if !ok {
			return fmt.Errorf("malformed worker feedback: %s", res.Feedback)
		}

		if historyJSON {
			var buf bytes.Buffer
			if err := json.Indent(&buf, payload, "", "  "); err != nil {
				return err
			}
			fmt.Println(buf.String())
			return nil
		}

		var env alchemy.HistoryResponse
		if err := json.Unmarshal(payload, &env); err != nil {
			return fmt.Errorf("decoding worker payload: %w", err)
		}

		display := address
		if cs, err := ui.ChecksumAddr(address); err == nil {
			display = cs
		}

		fmt.Println()
		fmt.Printf("%s  %s\n\n", ui.StyleTitle.Render("Transaction History"), ui.Addr(display))

		if len(env.Transactions) == 0 {
			fmt.Println(ui.Meta("No transactions in this window."))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Hash", Width: 16},
			{Title: "Network", Width: 14},
			{Title: "From", Width: 14},
			{Title: "To", Width: 14},
			{Title: "Value", Width: 22},
		})

		rows := make([]ui.HistoryRow, 0, len(env.Transactions))
		for _, tx := range env.Transactions {
			hash := txField(tx, "hash")
			network := txField(tx, "network")
			value := txField(tx, "value")
			if value == "" {
				value = "0"
			}
			t.AddRow(ui.Row{
				ui.TruncateHash(hash),
				network,
				ui.TruncateAddr(txField(tx, "fromAddress")),
				ui.TruncateAddr(txField(tx, "toAddress")),
				value,
			})
			rows = append(rows, ui.HistoryRow{
				Hash:        hash,
				Network:     network,
				ExplorerURL: ui.ExplorerTxURL(network, hash),
			})
		}

		if historyInteractive {
			return ui.RunHistoryList("Transaction History  ·  "+ui.TruncateAddr(display), t, rows)
		}

		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d transaction(s)", env.TotalCount)))
		if env.After != "" {
			fmt.Println(ui.Meta("More transactions available beyond this window — raise --limit."))
		}
		return nil
	},
}

// txField renders one field of a raw transaction for display. Values
// that are not strings upstream (block numbers, confirmations) still
// print sensibly.
func txField(tx alchemy.Transaction, name string) string {
	v, ok := tx[name]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func init() {
	historyCmd.Flags().StringVar(&historyNetworks, "networks", "", "networks to query, comma separated (default ETH_MAINNET)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "max transactions to fetch (default 25)")
	historyCmd.Flags().StringVar(&historyFindBy, "find-by", "", "transaction field to filter on (e.g. toAddress)")
	historyCmd.Flags().StringVar(&historyFindValue, "find-value", "", "exact value the filter field must equal")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print the raw result payload as JSON")
	historyCmd.Flags().BoolVarP(&historyInteractive, "interactive", "i", false, "browse results in an interactive list")
}
