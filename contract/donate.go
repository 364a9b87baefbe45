package main

import (
	"github.com/shopspring/decimal"

	"donation_proxy/sdk"
)

// Donate accepts a payment attached via transfer.allow intent, keeps the
// direct share in the proxy and pushes the rest to the distribution contract.
// The distribute call is fire-and-forget; no reply id is registered.
func Donate(_ *string) *string {
	requireInitialized()
	cfg := loadProxyConfig()
	sender := getSenderAddress()

	ta := getFirstTransferAllow()
	if ta == nil {
		sdk.Revert("donation requires an attached payment", ErrInvalidPayment)
	}
	if ta.Token != cfg.Asset {
		sdk.Revert("donation must be denominated in "+cfg.Asset.String(), ErrInvalidPayment)
	}
	amount := FloatToAmount(ta.Limit)
	if amount <= 0 {
		sdk.Revert("donation amount must be positive", ErrInvalidPayment)
	}

	sdk.HiveDraw(AmountToInt64(amount), cfg.Asset)

	directAmount := directShare(amount, cfg.DirectPart)
	toDistribute := amount - directAmount

	sdk.HiveTransfer(cfg.DistributionContract, AmountToInt64(toDistribute), cfg.Asset)
	sdk.EnqueueCall(cfg.DistributionContract.String(), MethodDistribute, encodeDistributeMsg(), nil)

	setDonations(getDonations() + 1)

	emitDonateEvent(sender.String(), amount)

	return strptr("donation accepted")
}

// directShare computes floor(amount * part) exactly; the pooled remainder is
// amount minus this, so rounding always favors the distribution side.
func directShare(amount Amount, part decimal.Decimal) Amount {
	return Amount(decimal.NewFromInt(int64(amount)).Mul(part).Floor().IntPart())
}
