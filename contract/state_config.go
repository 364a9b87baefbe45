package main

import (
	"strings"

	"github.com/shopspring/decimal"

	"donation_proxy/sdk"
)

// -----------------------------------------------------------------------------
// Proxy Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the proxy has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized rejects calls arriving before contract_init ran.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Revert("proxy not initialized", ErrNotInitialized)
	}
}

// loadProxyConfig loads the proxy configuration from state.
func loadProxyConfig() *ProxyConfig {
	ptr := sdk.StateGetObject(ConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := decodeProxyConfig(*ptr)
	if cfg == nil {
		sdk.Abort("corrupted proxy configuration")
	}
	return cfg
}

// saveProxyConfig stores the proxy configuration to state.
func saveProxyConfig(cfg *ProxyConfig) {
	sdk.StateSetObject(ConfigKey, encodeProxyConfig(cfg))
}

// requireOwner fails the whole invocation unless the sender is the stored owner.
func requireOwner(sender sdk.Address) {
	cfg := loadProxyConfig()
	if cfg == nil || cfg.Owner != sender {
		sdk.Revert("caller is not the proxy owner", ErrUnauthorized)
	}
}

// -----------------------------------------------------------------------------
// Proxy Config Encoding
// -----------------------------------------------------------------------------

// encodeProxyConfig serializes ProxyConfig to a pipe-delimited string.
// Format: owner|asset|direct_part|distribution|membership|closed
func encodeProxyConfig(cfg *ProxyConfig) string {
	closedStr := "0"
	if cfg.Closed {
		closedStr = "1"
	}
	return strings.Join([]string{
		cfg.Owner.String(),
		cfg.Asset.String(),
		cfg.DirectPart.String(),
		cfg.DistributionContract.String(),
		cfg.MembershipContract.String(),
		closedStr,
	}, "|")
}

// decodeProxyConfig deserializes a pipe-delimited string to ProxyConfig.
func decodeProxyConfig(data string) *ProxyConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 6 {
		return nil
	}
	part, err := decimal.NewFromString(parts[2])
	if err != nil {
		return nil
	}
	return &ProxyConfig{
		Owner:                sdk.Address(parts[0]),
		Asset:                sdk.Asset(parts[1]),
		DirectPart:           part,
		DistributionContract: sdk.Address(parts[3]),
		MembershipContract:   sdk.Address(parts[4]),
		Closed:               parts[5] == "1",
	}
}
