package main

import (
	"strconv"

	"donation_proxy/sdk"
)

// -----------------------------------------------------------------------------
// Ledger Counters
//
// Weight, donation counter, halftime and last-updated live as decimal strings
// in the host kv, same scheme the id counters of other contracts use.
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// getSignedCount mirrors getCount for the int64-valued timestamps/durations.
func getSignedCount(key string) int64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseInt(*ptr, 10, 64)
	return n
}

func setSignedCount(key string, n int64) {
	sdk.StateSetObject(key, strconv.FormatInt(n, 10))
}

func getWeight() uint64       { return getCount(WeightKey) }
func setWeight(w uint64)      { setCount(WeightKey, w) }
func getDonations() uint64    { return getCount(DonationsKey) }
func setDonations(d uint64)   { setCount(DonationsKey, d) }
func getHalftime() int64      { return getSignedCount(HalftimeKey) }
func setHalftime(s int64)     { setSignedCount(HalftimeKey, s) }
func getLastUpdated() int64   { return getSignedCount(LastUpdatedKey) }
func setLastUpdated(ts int64) { setSignedCount(LastUpdatedKey, ts) }
