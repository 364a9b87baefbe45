package main

import (
	"donation_proxy/sdk"
)

// UpdateWeight is the public maintenance operation: once the halftime window
// elapsed it halves the involvement weight and asks the distribution contract
// to pull back the released half. Unlike withdraw, the weight mutates right
// here and no pending record is staged; the forced sub-call expects no reply.
func UpdateWeight(_ *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	lastUpdated := getLastUpdated()
	halftime := getHalftime()

	elapsed := nowUnix() - lastUpdated
	if halftime > elapsed {
		// not yet halftime
		emitUpdateWeightEvent(sender.String(), false, getWeight())
		return strptr("performed=no")
	}

	weight := getWeight()
	// halving expressed as a negative delta, matching the withdraw message shape
	diff := -int64(weight) / 2

	cfg := loadProxyConfig()
	sdk.EnqueueCall(
		cfg.DistributionContract.String(),
		MethodWithdraw,
		encodeDistributionWithdrawMsg(weight, diff),
		nil,
	)

	newWeight := uint64(int64(weight) + diff)
	setWeight(newWeight)

	emitUpdateWeightEvent(sender.String(), true, newWeight)

	return strptr("performed=yes")
}
