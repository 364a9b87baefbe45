//go:build wasm

package main

// Entrypoints exported to the wasm host. Each wrapper forwards to the
// shared implementation so the same code also builds for host tests.

//go:wasmexport contract_init
func contractInitExport(payload *string) *string { return ContractInit(payload) }

//go:wasmexport donate
func donateExport(payload *string) *string { return Donate(payload) }

//go:wasmexport withdraw
func withdrawExport(payload *string) *string { return Withdraw(payload) }

//go:wasmexport close
func closeExport(payload *string) *string { return Close(payload) }

//go:wasmexport propose_member
func proposeMemberExport(payload *string) *string { return ProposeMember(payload) }

//go:wasmexport update_weight
func updateWeightExport(payload *string) *string { return UpdateWeight(payload) }

//go:wasmexport contract_reply
func contractReplyExport(payload *string) *string { return ContractReply(payload) }

//go:wasmexport proxy_state
func proxyStateExport(payload *string) *string { return ProxyState(payload) }
