package main

import (
	"donation_proxy/sdk"
)

// ProposeMember forwards a candidate address to the membership contract with
// a reply-on-success continuation. The proxy writes no durable state at
// initiation time; the outbound call is the whole effect. Owner only.
// Payload: {"addr"}
func ProposeMember(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()
	requireOwner(sender)

	args := decodeProposeMemberArgs(payload)
	candidate := sdk.Address(args.Addr)
	if !candidate.IsValid() {
		sdk.Revert("member candidate address invalid: "+args.Addr, ErrInvalidAddress)
	}

	cfg := loadProxyConfig()
	replyId := ProposeMemberReplyId
	sdk.EnqueueCall(
		cfg.MembershipContract.String(),
		MethodProposeMember,
		encodeMemberProposalMsg(candidate.String()),
		&sdk.CallOptions{ReplyOnSuccess: &replyId},
	)

	emitProposeMemberEvent(sender.String(), candidate.String())

	return strptr("member proposed")
}
