package main

import (
	"strconv"
	"time"

	"donation_proxy/sdk"
)

// nowUnix returns the current Unix timestamp, preferring the chain's block
// timestamp from the environment.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

// contractExists probes the collaborator's config key through the host to
// catch typoed contract ids at setup time instead of on the first sub-call.
func contractExists(contractId string) bool {
	return sdk.ContractStateGet(contractId, ConfigKey) != nil
}

// Convenience helper
func strptr(s string) *string { return &s }
