package main

import (
	"strconv"

	"donation_proxy/sdk"
)

// cachedEnv is scoped to the currently executing transaction. Whenever the
// tx.id changes we refresh sdk.GetEnv() so subsequent helper calls (intents,
// sender, timestamps) always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// getContractAddress returns the proxy's own address for balance lookups.
func getContractAddress() sdk.Address {
	return sdk.Address(currentEnv().ContractId)
}

// TransferAllow represents arguments extracted from a transfer.allow intent:
// the permitted transfer amount (Limit) and the asset (Token).
type TransferAllow struct {
	Limit float64
	Token sdk.Asset
}

// getFirstTransferAllow scans the current intents and returns the first
// transfer.allow entry, or nil when the request carries no payment at all.
// Denomination checks stay with the caller since only donate knows the
// configured asset.
func getFirstTransferAllow() *TransferAllow {
	for _, intent := range currentEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			sdk.Revert("invalid intent limit", ErrInvalidPayment)
		}
		return &TransferAllow{
			Limit: limit,
			Token: sdk.Asset(intent.Args["token"]),
		}
	}
	return nil
}
