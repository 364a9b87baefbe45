// Package sdk wraps the host api of a VSC-style chain. On the wasm build the
// lowercase host* functions are backed by //go:wasmimport shims, on every
// other build by an in-memory mock host so contract logic stays testable
// without a node.
package sdk

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("hello proxy")
func Log(s string) {
	hostLog(s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("not initialized")
func Abort(msg string) {
	hostAbort(msg)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// The whole invocation including enqueued calls is discarded by the host.
// Example payload: sdk.Revert("caller is not the owner", "unauthorized")
func Revert(msg string, symbol string) {
	hostRevert(msg, symbol)
	panic(symbol + ": " + msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("weight", "5")
func StateSetObject(key string, value string) {
	hostStateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("weight")
func StateGetObject(key string) *string {
	return hostStateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("pending_withdrawal")
func StateDeleteObject(key string) {
	hostStateDelete(key)
}

// GetEnv pulls the environment snapshot for the current invocation.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	return hostEnv()
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("block.timestamp")
func GetEnvKey(key string) *string {
	return hostEnvKey(key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("contract:proxy"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	return hostBalance(address, asset)
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	hostDraw(amount, asset)
}

// HiveTransfer sends tokens from the contract towards another address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHbd)
func HiveTransfer(to Address, amount int64, asset Asset) {
	hostTransfer(to, amount, asset)
}

// EnqueueCall registers a cross-contract call the host executes after this
// invocation committed. With options.ReplyOnSuccess set, the host calls the
// contract_reply export once the downstream contract confirmed success; the
// reply runs as its own invocation.
// Example payload: sdk.EnqueueCall("contract:distribution", "distribute", "{}", nil)
func EnqueueCall(contractId string, method string, payload string, options *CallOptions) {
	hostEnqueue(contractId, method, payload, options)
}

// ContractStateGet reads another contract's state key (view-only).
// Example payload: sdk.ContractStateGet("contract:distribution", "cfg")
func ContractStateGet(contractId string, key string) *string {
	return hostContractRead(contractId, key)
}
