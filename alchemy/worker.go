package alchemy

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3worker/agent"
)

// HistoryFunctionName is the name the host framework dispatches on.
const HistoryFunctionName = "get_transaction_history"

// HistoryFunction declares get_transaction_history: the dispatch name,
// a planner-facing description, the parameter schema, and the handler.
func (a *Adapter) HistoryFunction() agent.Function {
	return agent.Function{
		Name: HistoryFunctionName,
		Description: fmt.Sprintf(
			"Fetch transaction history for a wallet address on %s. Supports an optional result limit and an optional field/value filter.",
			strings.Join(SupportedNetworks, " and ")),
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"address": map[string]any{
					"type":        "string",
					"description": "Wallet address to look up, 0x-prefixed hex.",
				},
				"networks": map[string]any{
					"type": "string",
					"description": fmt.Sprintf(
						"Comma-separated network identifiers (%s). Defaults to %s.",
						strings.Join(SupportedNetworks, ", "), DefaultNetwork),
				},
				"limit": map[string]any{
					"type":        "string",
					"description": fmt.Sprintf("Maximum number of transactions to return. Defaults to %d.", DefaultLimit),
				},
				"findBy": map[string]any{
					"type":        "string",
					"description": "Transaction field to filter on, paired with findValue.",
				},
				"findValue": map[string]any{
					"type":        "string",
					"description": "Exact value the findBy field must equal.",
				},
			},
			"required": []string{"address"},
		},
		Handler: a.TransactionHistory,
	}
}
