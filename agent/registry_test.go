package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(status Status) HandlerFunc {
	return func(ctx context.Context, req Request) Result {
		return Result{Status: status, Feedback: "stub"}
	}
}

// ---------------------------------------------------------------------------
// Register / Lookup
// ---------------------------------------------------------------------------

func TestRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(Function{Name: "get_history", Handler: noopHandler(StatusDone)})
	require.NoError(t, err)

	fn, ok := reg.Lookup("get_history")
	require.True(t, ok)
	assert.Equal(t, "get_history", fn.Name)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Function{Name: "Get_History", Handler: noopHandler(StatusDone)}))

	_, ok := reg.Lookup("get_history")
	assert.True(t, ok)
	_, ok = reg.Lookup("  GET_HISTORY  ")
	assert.True(t, ok)
}

func TestRegisterRejectsDuplicateNames(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Function{Name: "dup", Handler: noopHandler(StatusDone)}))

	err := reg.Register(Function{Name: "DUP", Handler: noopHandler(StatusDone)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(Function{Name: "   ", Handler: noopHandler(StatusDone)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is empty")
}

func TestRegisterRejectsNilHandler(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(Function{Name: "nohandler"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")
}

func TestFunctionsPreserveRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, reg.Register(Function{Name: name, Handler: noopHandler(StatusDone)}))
	}

	fns := reg.Functions()
	require.Len(t, fns, 3)
	assert.Equal(t, "charlie", fns[0].Name)
	assert.Equal(t, "alpha", fns[1].Name)
	assert.Equal(t, "bravo", fns[2].Name)
}

// ---------------------------------------------------------------------------
// RegisterWorker
// ---------------------------------------------------------------------------

func TestRegisterWorkerAddsAllFunctions(t *testing.T) {
	reg := NewRegistry()
	w := Worker{
		ID: "history-worker",
		Functions: []Function{
			{Name: "fn_one", Handler: noopHandler(StatusDone)},
			{Name: "fn_two", Handler: noopHandler(StatusFailed)},
		},
	}
	require.NoError(t, reg.RegisterWorker(w))

	_, ok := reg.Lookup("fn_one")
	assert.True(t, ok)
	_, ok = reg.Lookup("fn_two")
	assert.True(t, ok)
}

func TestRegisterWorkerSurfacesWorkerID(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Function{Name: "taken", Handler: noopHandler(StatusDone)}))

	w := Worker{ID: "clashing-worker", Functions: []Function{
		{Name: "taken", Handler: noopHandler(StatusDone)},
	}}
	err := reg.RegisterWorker(w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clashing-worker")
}

// ---------------------------------------------------------------------------
// Call
// ---------------------------------------------------------------------------

func TestCallDispatchesToHandler(t *testing.T) {
	reg := NewRegistry()
	var gotAddress string
	require.NoError(t, reg.Register(Function{
		Name: "echo_address",
		Handler: func(ctx context.Context, req Request) Result {
			gotAddress = req.StringArg("address")
			return Done("ok")
		},
	}))

	res, err := reg.Call(context.Background(), "echo_address", Request{
		Args: map[string]any{"address": "0xabc"},
	})
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "0xabc", gotAddress)
}

func TestCallUnknownFunction(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Call(context.Background(), "nope", Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}

func TestCallReturnsDomainFailureAsResult(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Function{Name: "always_fails", Handler: noopHandler(StatusFailed)}))

	res, err := reg.Call(context.Background(), "always_fails", Request{})
	require.NoError(t, err, "domain failures are results, not dispatch errors")
	assert.Equal(t, StatusFailed, res.Status)
}
