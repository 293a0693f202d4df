package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mohsinsiddi/w3worker/internal/config"
	"github.com/Mohsinsiddi/w3worker/internal/secrets"
	"github.com/Mohsinsiddi/w3worker/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n\n", ui.StyleTitle.Render("Current Configuration"))
		fmt.Println(string(data))
		fmt.Println()

		keyLine := ui.Warn("not configured (set " + config.EnvAPIKey + " or run: w3worker config set-key <key>)")
		if key := cfg.ResolveAPIKey(secrets.DefaultKeystore()); key != "" {
			masked := key[:min(6, len(key))] + "…"
			keyLine = ui.Success("configured " + masked)
		}

		fmt.Println(ui.KeyValueBlock("Runtime", [][2]string{
			{"Alchemy API key", keyLine},
			{"Agent key", config.AgentKey()},
			{"Config directory", cfg.Dir()},
		}))
		return nil
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <api-key>",
	Short: "Store the Alchemy API key in the OS keychain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ks := secrets.DefaultKeystore()
		ref, err := ks.Store("alchemy", args[0])
		if err != nil {
			return err
		}
		cfg.APIKeyRef = ref
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("API key stored in the OS keychain."))
		fmt.Println(ui.Hint(config.EnvAPIKey + " in the environment still takes precedence."))
		return nil
	},
}

var configUnsetKeyCmd = &cobra.Command{
	Use:   "unset-key",
	Short: "Remove the stored Alchemy API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.APIKeyRef == "" {
			fmt.Println(ui.Meta("No stored key — nothing to remove."))
			return nil
		}
		if err := secrets.DefaultKeystore().Delete(cfg.APIKeyRef); err != nil {
			// Keychain entry may already be gone — still drop the reference.
			fmt.Println(ui.Warn(err.Error()))
		}
		cfg.APIKeyRef = ""
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Stored API key removed."))
		return nil
	},
}

var configSetNetworksCmd = &cobra.Command{
	Use:   "set-networks <list>",
	Short: "Set the default networks (comma separated)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var networks []string
		for _, tok := range strings.Split(args[0], ",") {
			if tok = strings.ToUpper(strings.TrimSpace(tok)); tok != "" {
				networks = append(networks, tok)
			}
		}
		if len(networks) == 0 {
			return fmt.Errorf("no networks given\n  Example: w3worker config set-networks ETH_MAINNET,BASE_MAINNET")
		}
		cfg.DefaultNetworks = networks
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Default networks set to " + strings.Join(networks, ", ")))
		return nil
	},
}

var configSetLimitCmd = &cobra.Command{
	Use:   "set-limit <n>",
	Short: "Set the default transaction limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("limit must be a positive number, got %q", args[0])
		}
		cfg.DefaultLimit = n
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default limit set to %d", n)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetKeyCmd, configUnsetKeyCmd,
		configSetNetworksCmd, configSetLimitCmd)
}
