package main

import (
	"strconv"
	"strings"

	"donation_proxy/sdk"
)

// -----------------------------------------------------------------------------
// Pending Withdrawal Slot
//
// A single-slot record: present exactly while a withdraw sub-call awaits its
// confirmation reply. Encoding: receiver|amount, with an empty amount field
// when the owner left the payout uncapped.
// -----------------------------------------------------------------------------

// savePendingWithdrawal stages the receiver/amount pair for the reply continuation.
func savePendingWithdrawal(pw *PendingWithdrawal) {
	amountStr := ""
	if pw.Amount != nil {
		amountStr = strconv.FormatInt(int64(*pw.Amount), 10)
	}
	sdk.StateSetObject(PendingWithdrawalKey, pw.Receiver.String()+"|"+amountStr)
}

// loadPendingWithdrawal returns nil when no withdrawal awaits confirmation.
func loadPendingWithdrawal() *PendingWithdrawal {
	ptr := sdk.StateGetObject(PendingWithdrawalKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	parts := strings.Split(*ptr, "|")
	if len(parts) < 2 {
		sdk.Abort("corrupted pending withdrawal record")
	}
	pw := &PendingWithdrawal{Receiver: sdk.Address(parts[0])}
	if parts[1] != "" {
		n, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			sdk.Abort("corrupted pending withdrawal amount")
		}
		amt := Amount(n)
		pw.Amount = &amt
	}
	return pw
}

// deletePendingWithdrawal consumes the slot once the payout went through.
func deletePendingWithdrawal() {
	sdk.StateDeleteObject(PendingWithdrawalKey)
}
