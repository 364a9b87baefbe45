package main

// State keys for the singleton ledger record. The proxy holds exactly one of
// each, so plain string keys do the job (no packed prefixes like an indexed
// collection would need).
const (
	ConfigKey            = "cfg"
	WeightKey            = "weight"
	DonationsKey         = "donations"
	HalftimeKey          = "halftime"
	LastUpdatedKey       = "last_updated"
	PendingWithdrawalKey = "pending_withdrawal"
)
