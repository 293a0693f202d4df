// demo-agent: registers the Alchemy history worker in a local registry and
// drives it through a few calls the way an agent host would, printing every
// worker log line and the final result envelope.
//
// Needs ALCHEMY_API_KEY (a .env file in the working directory works). Without
// one the fetch scenarios still run and demonstrate the error envelope.
//
// Run from the module root:
//
//	go run ./scripts/demo-agent
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Mohsinsiddi/w3worker/agent"
	"github.com/Mohsinsiddi/w3worker/alchemy"
	"github.com/Mohsinsiddi/w3worker/internal/config"
)

// ── config ────────────────────────────────────────────────────────────────────

// Vitalik's address — always has fresh history on both networks.
const demoAddress = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

const callTimeout = 20 * time.Second

type scenario struct {
	label string
	args  map[string]any
}

var scenarios = []scenario{
	{
		label: "default call (ETH_MAINNET, limit 25)",
		args:  map[string]any{"address": demoAddress},
	},
	{
		label: "both networks, last 5 transactions",
		args: map[string]any{
			"address":  demoAddress,
			"networks": "ETH_MAINNET,BASE_MAINNET",
			"limit":    5,
		},
	},
	{
		label: "validation failure (missing address)",
		args:  map[string]any{},
	},
}

// ── main ──────────────────────────────────────────────────────────────────────

func main() {
	config.LoadDotEnv()

	apiKey := os.Getenv(config.EnvAPIKey)
	if apiKey == "" {
		// Upstream will reject it; the error envelope is part of the demo.
		apiKey = "demo"
		fmt.Println("note: " + config.EnvAPIKey + " not set — fetch scenarios will show the error path")
	}

	adapter, err := alchemy.New(alchemy.Options{APIKey: apiKey})
	if err != nil {
		fmt.Fprintln(os.Stderr, "worker setup:", err)
		os.Exit(1)
	}

	worker := adapter.AsWorker()
	reg := agent.NewRegistry()
	if err := reg.RegisterWorker(worker); err != nil {
		fmt.Fprintln(os.Stderr, "register:", err)
		os.Exit(1)
	}

	fmt.Printf("agent %q connected to worker %q (%s)\n", config.AgentKey(), worker.Name, worker.ID)
	for _, fn := range reg.Functions() {
		fmt.Printf("  function: %s\n", fn.Name)
	}
	fmt.Println()

	for i, sc := range scenarios {
		runScenario(reg, i+1, sc)
	}
}

// ── scenarios ─────────────────────────────────────────────────────────────────

func runScenario(reg *agent.Registry, n int, sc scenario) {
	fmt.Printf("── scenario %d: %s\n", n, sc.label)

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	req := agent.Request{
		Args: sc.args,
		Log:  agent.LoggerFunc(func(line string) { fmt.Println("  › " + line) }),
	}

	res, err := reg.Call(ctx, alchemy.HistoryFunctionName, req)
	if err != nil {
		fmt.Println("  dispatch error:", err)
		fmt.Println()
		return
	}

	fmt.Println("  envelope:")
	fmt.Println(indent(envelopeJSON(res), "    "))
	fmt.Println()
}

// ── output ────────────────────────────────────────────────────────────────────

func envelopeJSON(res agent.Result) string {
	// Feedback can carry a large payload; cap it for terminal output.
	const maxFeedback = 400
	if len(res.Feedback) > maxFeedback {
		res.Feedback = res.Feedback[:maxFeedback] + "… (truncated)"
	}
	data, _ := json.MarshalIndent(res, "", "  ")
	return string(data)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
