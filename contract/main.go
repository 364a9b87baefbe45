////////////////////////////////////////////////////////////////////////////////
// Donation Proxy: collects deposits, splits them between a direct share and a
// pooled distribution, and drives the two-phase withdraw / propose-member
// flows against the distribution and membership contracts.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"github.com/shopspring/decimal"

	"donation_proxy/sdk"
)

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit configures the proxy with the caller as owner.
// Must be called before any other function.
// Payload: {"asset","direct_part","distribution_contract","membership_contract","weight","halftime"}
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	args := decodeInitArgs(payload)

	directPart, err := decimal.NewFromString(args.DirectPart)
	if err != nil {
		sdk.Revert("direct_part is not a decimal: "+args.DirectPart, ErrInvalidConfiguration)
	}
	if directPart.IsNegative() || directPart.GreaterThan(decimal.NewFromInt(1)) {
		sdk.Revert("direct_part must be within [0,1]", ErrInvalidConfiguration)
	}
	if args.HalftimeSeconds < 0 {
		sdk.Revert("halftime must not be negative", ErrInvalidConfiguration)
	}

	distribution := sdk.Address(args.DistributionContract)
	if !distribution.IsContract() || !contractExists(distribution.String()) {
		sdk.Revert("distribution contract not found: "+args.DistributionContract, ErrInvalidAddress)
	}
	membership := sdk.Address(args.MembershipContract)
	if !membership.IsContract() || !contractExists(membership.String()) {
		sdk.Revert("membership contract not found: "+args.MembershipContract, ErrInvalidAddress)
	}

	cfg := ProxyConfig{
		Owner:                getSenderAddress(),
		Asset:                sdk.Asset(args.Asset),
		DirectPart:           directPart,
		DistributionContract: distribution,
		MembershipContract:   membership,
		Closed:               false,
	}
	saveProxyConfig(&cfg)
	setWeight(args.Weight)
	setDonations(0)
	setHalftime(args.HalftimeSeconds)
	setLastUpdated(nowUnix())

	emitInitEvent(cfg.Owner.String(), cfg.Asset.String(), directPart.String())

	return strptr("initialized")
}
