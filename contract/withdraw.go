package main

import (
	"donation_proxy/sdk"
)

// Withdraw rebalances the involvement weight against the donation counter and
// asks the distribution contract to release funds. Nothing is paid out here:
// the staged pending withdrawal is consumed by the reply continuation once
// the distribution contract confirmed. Owner only.
// Payload (optional): {"receiver","amount"}
func Withdraw(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()
	requireOwner(sender)

	args := decodeWithdrawArgs(payload)

	weight := getWeight() // involvement
	donations := getDonations()
	diff := int64(donations) - int64(weight)

	setWeight(donations)
	// donations restart at 1 after a withdrawal, unlike the 0 at init
	setDonations(1)
	setLastUpdated(nowUnix())

	// missing receiver means withdraw to the owner
	receiver := sender
	if args.Receiver != nil {
		receiver = sdk.Address(*args.Receiver)
		if !receiver.IsValid() {
			sdk.Revert("withdraw receiver address invalid: "+*args.Receiver, ErrInvalidAddress)
		}
	}
	var amount *Amount
	if args.Amount != nil {
		// a negative cap would reverse the payout transfer on completion
		if *args.Amount < 0 {
			sdk.Revert("withdraw amount must not be negative", ErrInvalidPayment)
		}
		a := Amount(*args.Amount)
		amount = &a
	}
	savePendingWithdrawal(&PendingWithdrawal{Receiver: receiver, Amount: amount})

	cfg := loadProxyConfig()
	replyId := WithdrawReplyId
	sdk.EnqueueCall(
		cfg.DistributionContract.String(),
		MethodWithdraw,
		encodeDistributionWithdrawMsg(weight, diff),
		&sdk.CallOptions{ReplyOnSuccess: &replyId},
	)

	emitWithdrawEvent(sender.String(), weight, diff)

	return strptr("withdrawal requested")
}
