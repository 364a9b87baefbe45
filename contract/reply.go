package main

import (
	"strconv"

	"donation_proxy/sdk"
)

// ContractReply is the continuation entrypoint. The host invokes it once a
// sub-call registered with a reply id finished; the envelope carries the id
// and the downstream outcome. Exactly two ids are legal.
// Payload: {"id","success","result","error"}
func ContractReply(payload *string) *string {
	requireInitialized()
	reply := decodeReplyEnvelope(payload)

	switch reply.Id {
	case WithdrawReplyId:
		return withdrawReply(reply)
	case ProposeMemberReplyId:
		return proposeMemberReply(reply)
	default:
		sdk.Revert("unexpected reply id "+strconv.FormatUint(reply.Id, 10), ErrUnrecognizedReplyId)
		return nil
	}
}

// withdrawReply releases the staged payout once the distribution contract
// confirmed. A failure reply reverts and leaves the pending slot untouched
// for inspection; a reply without a staged slot is a sequencing violation.
// Only the distribution contract itself may deliver this continuation.
func withdrawReply(reply *ReplyEnvelope) *string {
	cfg := loadProxyConfig()
	if getSenderAddress() != cfg.DistributionContract {
		sdk.Revert("withdraw reply must come from the distribution contract", ErrUnauthorized)
	}

	if !reply.Success {
		sdk.Revert("distribution withdraw failed: "+reply.Error, ErrDownstreamFailure)
	}

	pending := loadPendingWithdrawal()
	if pending == nil {
		sdk.Revert("no withdrawal awaiting confirmation", ErrMissingPendingState)
	}

	// an uncapped request pays out whatever the downstream call released
	amount := Amount(sdk.GetBalance(getContractAddress(), cfg.Asset))
	if pending.Amount != nil {
		amount = *pending.Amount
	}

	sdk.HiveTransfer(pending.Receiver, AmountToInt64(amount), cfg.Asset)
	deletePendingWithdrawal()

	emitWithdrawCompletedEvent(pending.Receiver.String(), amount)

	return strptr("withdrawal completed")
}

// proposeMemberReply only acknowledges the downstream result today; recording
// the accepted member locally is a hook point for later. Only the membership
// contract may deliver this continuation.
func proposeMemberReply(reply *ReplyEnvelope) *string {
	if getSenderAddress() != loadProxyConfig().MembershipContract {
		sdk.Revert("member reply must come from the membership contract", ErrUnauthorized)
	}

	if !reply.Success {
		sdk.Revert("membership proposal failed: "+reply.Error, ErrDownstreamFailure)
	}

	emitMemberAcceptedEvent()

	return strptr("member proposal confirmed")
}
