package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Mohsinsiddi/w3worker/agent"
	"github.com/Mohsinsiddi/w3worker/internal/ui"
	"github.com/spf13/cobra"
)

var (
	runArgsJSON string
	runTimeout  time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <function>",
	Short: "Invoke a registered function the way an agent would",
	Long: `Dispatch one function call through the local registry and print the
result envelope as JSON.

  w3worker run get_transaction_history --args '{"address":"0x742d...","limit":5}'

Log lines stream to stderr; the envelope goes to stdout so the output
can be piped into jq or another process.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := requireAPIKey()
		if err != nil {
			return err
		}
		reg, err := newRegistry(key)
		if err != nil {
			return err
		}

		callArgs := map[string]any{}
		if runArgsJSON != "" {
			if err := json.Unmarshal([]byte(runArgsJSON), &callArgs); err != nil {
				return fmt.Errorf("parsing --args: %w", err)
			}
		}

		logger := agent.LoggerFunc(func(line string) {
			fmt.Fprintln(os.Stderr, ui.LogLine(line))
		})

		ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
		defer cancel()

		res, err := reg.Call(ctx, args[0], agent.Request{Args: callArgs, Log: logger})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runArgsJSON, "args", "", "function arguments as a JSON object")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 30*time.Second, "overall call timeout")
}
