package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donation_proxy/sdk"
)

func TestWithdrawNonOwnerRejected(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	m.State[DonationsKey] = "8"

	setCaller(m, "hive:stranger", defaultTimestamp+50)
	mustRevert(t, m, Withdraw, nil, ErrUnauthorized)

	assert.Equal(t, uint64(5), getWeight())
	assert.Equal(t, uint64(8), getDonations())
	assert.Equal(t, defaultTimestamp, getLastUpdated())
	assert.Nil(t, loadPendingWithdrawal())
	assert.Empty(t, m.Calls)
}

func TestWithdrawStagesPendingAndCallsDistribution(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	m.State[DonationsKey] = "8"

	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, nil)

	assert.Equal(t, uint64(8), getWeight())
	assert.Equal(t, uint64(1), getDonations())
	assert.Equal(t, defaultTimestamp+100, getLastUpdated())

	pending := loadPendingWithdrawal()
	require.NotNil(t, pending)
	assert.Equal(t, ownerAddress, pending.Receiver.String())
	assert.Nil(t, pending.Amount)

	require.Len(t, m.Calls, 1)
	c := m.Calls[0]
	assert.Equal(t, distributionAddress, c.ContractId)
	assert.Equal(t, MethodWithdraw, c.Method)
	assert.JSONEq(t, `{"weight":5,"diff":3}`, c.Payload)
	require.NotNil(t, c.Options)
	require.NotNil(t, c.Options.ReplyOnSuccess)
	assert.Equal(t, WithdrawReplyId, *c.Options.ReplyOnSuccess)

	// no payout before the confirmation reply
	assert.Empty(t, m.Transfers)
}

func TestWithdrawNegativeDiffWhenDonationsLag(t *testing.T) {
	m := setupProxy(t, "0.3", 9, 86400)
	m.State[DonationsKey] = "4"

	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, nil)

	require.Len(t, m.Calls, 1)
	assert.JSONEq(t, `{"weight":9,"diff":-5}`, m.Calls[0].Payload)
	assert.Equal(t, uint64(4), getWeight())
}

func TestWithdrawExplicitReceiverAndAmount(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)

	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, strptr(`{"receiver":"hive:friend","amount":2500}`))

	pending := loadPendingWithdrawal()
	require.NotNil(t, pending)
	assert.Equal(t, "hive:friend", pending.Receiver.String())
	require.NotNil(t, pending.Amount)
	assert.Equal(t, Amount(2500), *pending.Amount)
}

func TestWithdrawNegativeAmountRejected(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	m.SetBalance(proxyAddress, sdk.AssetHive, 9000)
	m.SetBalance("hive:friend", sdk.AssetHive, 1000)

	// a negative cap must never reach the pending slot; staged, it would
	// debit the receiver and credit the proxy at completion time
	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustRevert(t, m, Withdraw, strptr(`{"receiver":"hive:friend","amount":-500}`), ErrInvalidPayment)
	assert.Nil(t, loadPendingWithdrawal())
	assert.Empty(t, m.Calls)

	setCaller(m, distributionAddress, defaultTimestamp+101)
	mustRevert(t, m, ContractReply, replyPayload(WithdrawReplyId, true, ""), ErrMissingPendingState)

	assert.Empty(t, m.Transfers)
	assert.Equal(t, int64(1000), m.Balances["hive:friend|hive"])
	assert.Equal(t, int64(9000), m.Balances[proxyAddress+"|hive"])
}

func TestWithdrawEventCarriesPreRebalanceWeight(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	m.State[DonationsKey] = "8"

	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, nil)

	// w logs the weight as it stood before the rebalance wrote donations over it
	assert.Contains(t, m.Logs, "wd|by:"+ownerAddress+"|w:5|d:3")
}

func TestWithdrawInvalidReceiverRollsBackEverything(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	m.State[DonationsKey] = "8"

	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustRevert(t, m, Withdraw, strptr(`{"receiver":"bogus"}`), ErrInvalidAddress)

	// the counter writes preceding receiver validation must not survive
	assert.Equal(t, uint64(5), getWeight())
	assert.Equal(t, uint64(8), getDonations())
	assert.Equal(t, defaultTimestamp, getLastUpdated())
	assert.Nil(t, loadPendingWithdrawal())
	assert.Empty(t, m.Calls)
}

func TestWithdrawReplyPaysStagedAmount(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, strptr(`{"receiver":"hive:friend","amount":2500}`))

	m.SetBalance(proxyAddress, sdk.AssetHive, 9000)
	setCaller(m, distributionAddress, defaultTimestamp+101)
	mustCall(t, m, ContractReply, replyPayload(WithdrawReplyId, true, ""))

	require.Len(t, m.Transfers, 1)
	assert.Equal(t, "hive:friend", m.Transfers[0].To.String())
	assert.Equal(t, int64(2500), m.Transfers[0].Amount)
	assert.Nil(t, loadPendingWithdrawal())
}

func TestWithdrawReplyUncappedPaysFullBalance(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, nil)

	m.SetBalance(proxyAddress, sdk.AssetHive, 4200)
	setCaller(m, distributionAddress, defaultTimestamp+101)
	mustCall(t, m, ContractReply, replyPayload(WithdrawReplyId, true, ""))

	require.Len(t, m.Transfers, 1)
	assert.Equal(t, ownerAddress, m.Transfers[0].To.String())
	assert.Equal(t, int64(4200), m.Transfers[0].Amount)
}

func TestWithdrawReplyFailureKeepsPending(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, nil)

	setCaller(m, distributionAddress, defaultTimestamp+101)
	mustRevert(t, m, ContractReply, replyPayload(WithdrawReplyId, false, "pool dry"), ErrDownstreamFailure)

	assert.NotNil(t, loadPendingWithdrawal())
	assert.Empty(t, m.Transfers)
}

func TestWithdrawReplyWithoutPendingRejected(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, nil)

	setCaller(m, distributionAddress, defaultTimestamp+101)
	mustCall(t, m, ContractReply, replyPayload(WithdrawReplyId, true, ""))

	// replaying the continuation must not double-pay
	setCaller(m, distributionAddress, defaultTimestamp+102)
	mustRevert(t, m, ContractReply, replyPayload(WithdrawReplyId, true, ""), ErrMissingPendingState)
	assert.Len(t, m.Transfers, 1)
}

func TestWithdrawReplyFromNonDistributionRejected(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, strptr(`{"receiver":"hive:friend","amount":2500}`))
	m.SetBalance(proxyAddress, sdk.AssetHive, 9000)

	// nobody but the distribution contract may trigger the payout early
	setCaller(m, "hive:stranger", defaultTimestamp+101)
	mustRevert(t, m, ContractReply, replyPayload(WithdrawReplyId, true, ""), ErrUnauthorized)
	setCaller(m, ownerAddress, defaultTimestamp+102)
	mustRevert(t, m, ContractReply, replyPayload(WithdrawReplyId, true, ""), ErrUnauthorized)

	assert.NotNil(t, loadPendingWithdrawal())
	assert.Empty(t, m.Transfers)
}

func TestReplyUnknownIdRejected(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)
	setCaller(m, distributionAddress, defaultTimestamp+101)
	mustRevert(t, m, ContractReply, replyPayload(99, true, ""), ErrUnrecognizedReplyId)
}

// A second withdraw while one is pending silently overwrites the slot; the
// original behaved this way and the proxy keeps doing so.
func TestWithdrawOverwritesPendingSlot(t *testing.T) {
	m := setupProxy(t, "0.3", 5, 86400)

	setCaller(m, ownerAddress, defaultTimestamp+100)
	mustCall(t, m, Withdraw, strptr(`{"receiver":"hive:first"}`))
	setCaller(m, ownerAddress, defaultTimestamp+200)
	mustCall(t, m, Withdraw, strptr(`{"receiver":"hive:second"}`))

	pending := loadPendingWithdrawal()
	require.NotNil(t, pending)
	assert.Equal(t, "hive:second", pending.Receiver.String())
	assert.Len(t, m.Calls, 2)
}
