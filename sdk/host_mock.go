//go:build !wasm

package sdk

import "fmt"

// RevertError is what Abort/Revert panic with on the mock host. The real host
// halts the wasm instance instead, so contract code never observes it.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// EnqueuedCall records one deferred cross-contract call for assertions.
type EnqueuedCall struct {
	ContractId string
	Method     string
	Payload    string
	Options    *CallOptions
}

// Transfer records a token movement issued through the host.
type Transfer struct {
	To     Address
	Amount int64
	Asset  Asset
}

// MockHost is an in-memory stand-in for the chain: kv state, balances, the
// env snapshot and everything the contract emitted during a call.
type MockHost struct {
	State        map[string]string
	Env          Env
	Balances     map[string]int64
	Logs         []string
	Calls        []EnqueuedCall
	Transfers    []Transfer
	Draws        []Transfer
	ForeignState map[string]string // contractId|key -> value
}

var mock = NewMockHost()

func NewMockHost() *MockHost {
	return &MockHost{
		State:        map[string]string{},
		Balances:     map[string]int64{},
		ForeignState: map[string]string{},
	}
}

// ResetMock swaps in a fresh host and returns it, call this at the top of every test.
func ResetMock() *MockHost {
	mock = NewMockHost()
	return mock
}

// ActiveMock exposes the host currently backing the sdk calls.
func ActiveMock() *MockHost {
	return mock
}

func balanceKey(address Address, asset Asset) string {
	return address.String() + "|" + asset.String()
}

// SetBalance seeds a ledger balance for an account.
func (m *MockHost) SetBalance(address Address, asset Asset, amount int64) {
	m.Balances[balanceKey(address, asset)] = amount
}

// Snapshot clones the durable bits so a harness can emulate the host's
// all-or-nothing commit around a single invocation.
func (m *MockHost) Snapshot() *MockHost {
	cp := NewMockHost()
	cp.Env = m.Env
	for k, v := range m.State {
		cp.State[k] = v
	}
	for k, v := range m.Balances {
		cp.Balances[k] = v
	}
	for k, v := range m.ForeignState {
		cp.ForeignState[k] = v
	}
	cp.Logs = append(cp.Logs, m.Logs...)
	cp.Calls = append(cp.Calls, m.Calls...)
	cp.Transfers = append(cp.Transfers, m.Transfers...)
	cp.Draws = append(cp.Draws, m.Draws...)
	return cp
}

// Restore rolls the host back to a previously taken snapshot.
func (m *MockHost) Restore(snap *MockHost) {
	m.Env = snap.Env
	m.State = snap.State
	m.Balances = snap.Balances
	m.ForeignState = snap.ForeignState
	m.Logs = snap.Logs
	m.Calls = snap.Calls
	m.Transfers = snap.Transfers
	m.Draws = snap.Draws
}

func hostLog(s string) {
	mock.Logs = append(mock.Logs, s)
}

func hostAbort(msg string) {
	panic(&RevertError{Msg: msg, Symbol: "abort"})
}

func hostRevert(msg string, symbol string) {
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

func hostStateSet(key string, value string) {
	mock.State[key] = value
}

func hostStateGet(key string) *string {
	val, ok := mock.State[key]
	if !ok {
		return nil
	}
	return &val
}

func hostStateDelete(key string) {
	delete(mock.State, key)
}

func hostEnv() Env {
	return mock.Env
}

func hostEnvKey(key string) *string {
	switch key {
	case "block.timestamp":
		return &mock.Env.Timestamp
	case "tx.id":
		return &mock.Env.TxId
	case "contract.id":
		return &mock.Env.ContractId
	default:
		return nil
	}
}

func hostBalance(address Address, asset Asset) int64 {
	return mock.Balances[balanceKey(address, asset)]
}

func hostDraw(amount int64, asset Asset) {
	sender := mock.Env.Sender.Address
	self := Address(mock.Env.ContractId)
	mock.Balances[balanceKey(sender, asset)] -= amount
	mock.Balances[balanceKey(self, asset)] += amount
	mock.Draws = append(mock.Draws, Transfer{To: self, Amount: amount, Asset: asset})
}

func hostTransfer(to Address, amount int64, asset Asset) {
	self := Address(mock.Env.ContractId)
	mock.Balances[balanceKey(self, asset)] -= amount
	mock.Balances[balanceKey(to, asset)] += amount
	mock.Transfers = append(mock.Transfers, Transfer{To: to, Amount: amount, Asset: asset})
}

func hostEnqueue(contractId string, method string, payload string, options *CallOptions) {
	mock.Calls = append(mock.Calls, EnqueuedCall{
		ContractId: contractId,
		Method:     method,
		Payload:    payload,
		Options:    options,
	})
}

func hostContractRead(contractId string, key string) *string {
	val, ok := mock.ForeignState[fmt.Sprintf("%s|%s", contractId, key)]
	if !ok {
		return nil
	}
	return &val
}
