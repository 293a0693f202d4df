package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/w3worker/internal/secrets"
	"github.com/Mohsinsiddi/w3worker/internal/ui"
	"github.com/spf13/cobra"
)

var functionsCmd = &cobra.Command{
	Use:   "functions [name]",
	Short: "List the functions this worker exposes",
	Long: `List every registered function, or show the full declaration of one:

  w3worker functions
  w3worker functions get_transaction_history`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Declarations carry no credentials, so listing works without a
		// real key.
		key := cfg.ResolveAPIKey(secrets.DefaultKeystore())
		if key == "" {
			key = "demo"
		}
		reg, err := newRegistry(key)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			fn, ok := reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown function %q — run `w3worker functions` to list all", args[0])
			}
			schema, err := json.MarshalIndent(fn.Schema, "", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("%s\n\n", ui.StyleTitle.Render(fn.Name))
			fmt.Println(ui.Val(fn.Description))
			fmt.Println()
			fmt.Println(string(schema))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Function", Width: 28},
			{Title: "Description", Width: 62},
		})
		for _, fn := range reg.Functions() {
			t.AddRow(ui.Row{fn.Name, fn.Description})
		}

		fmt.Printf("%s\n\n", ui.StyleTitle.Render("Registered Functions"))
		fmt.Println(t.Render())
		fmt.Println(ui.Hint("Describe one with: w3worker functions <name>"))
		return nil
	},
}
