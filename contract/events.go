package main

import (
	"fmt"
	"strconv"

	"donation_proxy/sdk"
)

// emitInitEvent leaves a one-line trace of the freshly configured proxy.
func emitInitEvent(owner string, asset string, directPart string) {
	sdk.Log(fmt.Sprintf(
		"in|by:%s|as:%s|dp:%s",
		owner,
		asset,
		directPart,
	))
}

// emitDonateEvent records sender and full amount so payout audits can replay the split.
func emitDonateEvent(sender string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"dn|by:%s|am:%f",
		sender,
		AmountToFloat(amount),
	))
}

// emitWithdrawEvent logs the staged request; the actual payout only shows up
// in wc. The w attribute carries the weight as it stood before the rebalance,
// matching the trace format audit tooling already consumes.
func emitWithdrawEvent(sender string, weight uint64, diff int64) {
	sdk.Log(fmt.Sprintf(
		"wd|by:%s|w:%d|d:%d",
		sender,
		weight,
		diff,
	))
}

// emitWithdrawCompletedEvent fires from the reply continuation once funds moved.
func emitWithdrawCompletedEvent(receiver string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"wc|to:%s|am:%f",
		receiver,
		AmountToFloat(amount),
	))
}

// emitCloseEvent marks the one-way flip to closed.
func emitCloseEvent(sender string) {
	sdk.Log("cl|by:" + sender)
}

// emitProposeMemberEvent notes the candidate handed to the membership contract.
func emitProposeMemberEvent(sender string, candidate string) {
	sdk.Log(fmt.Sprintf(
		"pm|by:%s|addr:%s",
		sender,
		candidate,
	))
}

// emitMemberAcceptedEvent confirms the membership contract took the proposal.
func emitMemberAcceptedEvent() {
	sdk.Log("ma|ok:1")
}

// emitUpdateWeightEvent includes performed yes/no so watchers see gated no-ops too.
func emitUpdateWeightEvent(sender string, performed bool, weight uint64) {
	sdk.Log(fmt.Sprintf(
		"uw|by:%s|p:%s|w:%d",
		sender,
		strconv.FormatBool(performed),
		weight,
	))
}
