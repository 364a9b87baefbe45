package main

import (
	"math"

	"github.com/shopspring/decimal"

	"donation_proxy/sdk"
)

const AmountScale = 1000

// Amount is a token quantity in scaled integer units (1.000 hive == 1000).
type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for the hive transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// ProxyConfig is the immutable part of the ledger record, written at init.
// Closed is the single exception: close flips it to true exactly once.
type ProxyConfig struct {
	Owner                sdk.Address
	Asset                sdk.Asset
	DirectPart           decimal.Decimal
	DistributionContract sdk.Address
	MembershipContract   sdk.Address
	Closed               bool
}

// PendingWithdrawal is the single-slot record bridging a withdraw request and
// its confirmation reply. Amount stays nil when the owner did not cap the
// payout; the completion then releases the proxy's full balance.
type PendingWithdrawal struct {
	Receiver sdk.Address
	Amount   *Amount
}

// InitArgs is the contract_init payload.
type InitArgs struct {
	Asset                string
	DirectPart           string
	DistributionContract string
	MembershipContract   string
	Weight               uint64
	HalftimeSeconds      int64
}

// WithdrawArgs is the optional withdraw payload; both fields may be absent.
type WithdrawArgs struct {
	Receiver *string
	Amount   *int64
}

// ProposeMemberArgs carries the candidate address for propose_member.
type ProposeMemberArgs struct {
	Addr string
}

// ReplyEnvelope is what the host feeds into contract_reply after a sub-call
// with a registered reply id finished.
type ReplyEnvelope struct {
	Id      uint64
	Success bool
	Result  string
	Error   string
}
