package alchemy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Mohsinsiddi/w3worker/agent"
)

// Defaults applied when the caller omits the argument.
const (
	DefaultNetwork = "ETH_MAINNET"
	DefaultLimit   = 25
)

// Failure messages surfaced to the host framework.
const (
	msgAddressRequired = "Wallet address is required."
	msgAddressInvalid  = "Invalid wallet address format. Must be a valid Ethereum address (e.g., 0x742d35Cc6634C0532925a3b844Bc454e4438f44e)."
	msgLimitInvalid    = "Limit must be a positive number."
	msgNoHistory       = "No transaction history found"
	msgFetched         = "Transaction history fetched successfully."
)

// Transaction is an opaque upstream record. Fields pass through
// unmodified; filtering reads arbitrary keys by name.
type Transaction map[string]any

// StringField returns the named field when it holds a string.
func (t Transaction) StringField(name string) (string, bool) {
	s, ok := t[name].(string)
	return s, ok
}

// HistoryResponse is the upstream envelope. Transactions may be
// filtered client-side, with TotalCount recomputed to match; no other
// field is altered.
type HistoryResponse struct {
	After        string        `json:"after"`
	TotalCount   int           `json:"totalCount"`
	Transactions []Transaction `json:"transactions"`
}

type historyRequest struct {
	Addresses []addressQuery `json:"addresses"`
	Limit     int            `json:"limit"`
}

type addressQuery struct {
	Address  string   `json:"address"`
	Networks []string `json:"networks"`
}

type apiError struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// historyArgs is the validated, strongly-typed form of one
// get_transaction_history call.
type historyArgs struct {
	Address   string
	Networks  []string
	Limit     int
	FindBy    string
	FindValue string
}

// TransactionHistory implements get_transaction_history: validate the
// loosely-typed arguments, issue one upstream request, optionally filter
// the result, and map the outcome into a Done/Failed result.
//
// Validation failures return before any log line or network traffic.
func (a *Adapter) TransactionHistory(ctx context.Context, req agent.Request) agent.Result {
	args, err := parseHistoryArgs(req)
	if err != nil {
		return agent.Failed(err.Error())
	}

	req.Logf("Fetching transaction history for address: %s on networks: %s",
		args.Address, strings.Join(args.Networks, ", "))

	env, err := a.fetchHistory(ctx, args)
	if err != nil {
		req.Logf("Error: %s", err)
		return agent.Failedf("Failed to fetch transaction history: %s", err)
	}

	if args.FindBy != "" && args.FindValue != "" {
		env.Transactions = filterTransactions(env.Transactions, args.FindBy, args.FindValue)
		env.TotalCount = len(env.Transactions)
		if env.TotalCount == 0 {
			return agent.Failed(msgNoHistory)
		}
	}

	payload, _ := json.Marshal(env)
	req.Logf("Successfully fetched %d transactions.", env.TotalCount)
	return agent.Done(agent.Feedback(msgFetched, payload))
}

// parseHistoryArgs turns the raw argument map into a validated request,
// rejecting or defaulting per field.
func parseHistoryArgs(req agent.Request) (historyArgs, error) {
	args := historyArgs{
		Networks: []string{DefaultNetwork},
		Limit:    DefaultLimit,
	}

	args.Address = req.StringArg("address")
	if args.Address == "" {
		return args, errors.New(msgAddressRequired)
	}
	if !isHexAddress(args.Address) {
		return args, errors.New(msgAddressInvalid)
	}

	if networks := parseNetworks(req); len(networks) > 0 {
		args.Networks = networks
	}

	if raw := req.StringArg("limit"); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			return args, errors.New(msgLimitInvalid)
		}
		args.Limit = n
	}

	args.FindBy = req.StringArg("findBy")
	args.FindValue = req.StringArg("findValue")
	return args, nil
}

// isHexAddress reports whether s is a 0x-prefixed 20-byte hex address.
// common.IsHexAddress alone also accepts the unprefixed form.
func isHexAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// parseNetworks normalizes the networks argument: a comma-separated or
// JSON-array string, or an already-structured sequence. Empty input
// returns nil so the caller's default applies.
func parseNetworks(req agent.Request) []string {
	raw, ok := req.Arg("networks")
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case string:
		return networksFromString(v)
	case []string:
		return normalizeNetworks(v)
	case []any:
		tokens := make([]string, 0, len(v))
		for _, item := range v {
			tokens = append(tokens, fmt.Sprint(item))
		}
		return normalizeNetworks(tokens)
	default:
		return networksFromString(fmt.Sprint(v))
	}
}

func networksFromString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return normalizeNetworks(arr)
		}
	}
	return normalizeNetworks(strings.Split(s, ","))
}

// normalizeNetworks trims and upper-cases each token. The API expects
// upper-cased identifiers; separators are left alone.
func normalizeNetworks(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// fetchHistory issues the single upstream POST. No retries; the server
// supplied error message is preferred when the response carries one.
func (a *Adapter) fetchHistory(ctx context.Context, args historyArgs) (*HistoryResponse, error) {
	body, _ := json.Marshal(historyRequest{
		Addresses: []addressQuery{{Address: args.Address, Networks: args.Networks}},
		Limit:     args.Limit,
	})

	url := fmt.Sprintf("%s/%s/transactions/history/by-address", a.baseURL, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var env HistoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return &env, nil
}

// filterTransactions keeps transactions whose named field equals value
// by exact string comparison. Non-string fields never match.
func filterTransactions(txs []Transaction, field, value string) []Transaction {
	matched := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if s, ok := tx.StringField(field); ok && s == value {
			matched = append(matched, tx)
		}
	}
	return matched
}
