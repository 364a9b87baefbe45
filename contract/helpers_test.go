package main

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"donation_proxy/sdk"
)

const (
	proxyAddress        = "contract:proxy"
	ownerAddress        = "hive:creator"
	distributionAddress = "contract:distribution"
	membershipAddress   = "contract:membership"
	defaultTimestamp    = int64(1_700_000_000)
)

var txCounter int

// setCaller points the mock env at a fresh tx from the given sender. Each
// call gets a new tx.id so the contract's env cache refreshes like on chain.
func setCaller(m *sdk.MockHost, sender string, ts int64, intents ...sdk.Intent) {
	txCounter++
	m.Env = sdk.Env{
		ContractId: proxyAddress,
		TxId:       fmt.Sprintf("tx-%d", txCounter),
		Timestamp:  strconv.FormatInt(ts, 10),
		Sender:     sdk.Sender{Address: sdk.Address(sender)},
		Intents:    intents,
	}
}

// callResult wraps one simulated invocation outcome.
type callResult struct {
	Ret    *string
	Revert *sdk.RevertError
}

// call runs an entrypoint with host-style atomicity: on revert, state,
// balances and emitted calls roll back as if the invocation never happened.
func call(m *sdk.MockHost, fn func(*string) *string, payload *string) (res callResult) {
	snap := m.Snapshot()
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*sdk.RevertError)
			if !ok {
				panic(r)
			}
			m.Restore(snap)
			res.Revert = re
		}
	}()
	res.Ret = fn(payload)
	return
}

// mustCall asserts the invocation committed and hands back the return message.
func mustCall(t *testing.T, m *sdk.MockHost, fn func(*string) *string, payload *string) string {
	t.Helper()
	res := call(m, fn, payload)
	require.Nil(t, res.Revert, "unexpected revert: %v", res.Revert)
	require.NotNil(t, res.Ret)
	return *res.Ret
}

// mustRevert asserts the invocation rolled back with the given symbol.
func mustRevert(t *testing.T, m *sdk.MockHost, fn func(*string) *string, payload *string, symbol string) *sdk.RevertError {
	t.Helper()
	res := call(m, fn, payload)
	require.NotNil(t, res.Revert, "expected revert %q, got success", symbol)
	require.Equal(t, symbol, res.Revert.Symbol, "revert message: %s", res.Revert.Msg)
	return res.Revert
}

func initPayload(directPart string, weight uint64, halftime int64) *string {
	return strptr(fmt.Sprintf(
		`{"asset":"hive","direct_part":%q,"distribution_contract":%q,"membership_contract":%q,"weight":%d,"halftime":%d}`,
		directPart, distributionAddress, membershipAddress, weight, halftime,
	))
}

// setupProxy resets the mock host and initializes the proxy with hive, the
// given direct part, weight and halftime, owned by ownerAddress.
func setupProxy(t *testing.T, directPart string, weight uint64, halftime int64) *sdk.MockHost {
	t.Helper()
	m := sdk.ResetMock()
	seedCollaborators(m)
	setCaller(m, ownerAddress, defaultTimestamp)
	mustCall(t, m, ContractInit, initPayload(directPart, weight, halftime))
	return m
}

// seedCollaborators registers the downstream contracts on the mock host so
// the init-time existence probe finds them.
func seedCollaborators(m *sdk.MockHost) {
	m.ForeignState[distributionAddress+"|"+ConfigKey] = "{}"
	m.ForeignState[membershipAddress+"|"+ConfigKey] = "{}"
}

func transferIntent(limit string, token string) sdk.Intent {
	return sdk.Intent{Type: "transfer.allow", Args: map[string]string{"limit": limit, "token": token}}
}

func replyPayload(id uint64, success bool, errMsg string) *string {
	return strptr(fmt.Sprintf(`{"id":%d,"success":%t,"error":%q}`, id, success, errMsg))
}
