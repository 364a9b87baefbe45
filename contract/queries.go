package main

import (
	"github.com/CosmWasm/tinyjson/jwriter"
)

// stateSnapshot is the read model returned by proxy_state.
type stateSnapshot struct {
	Config      *ProxyConfig
	Weight      uint64
	Donations   uint64
	Halftime    int64
	LastUpdated int64
	Pending     *PendingWithdrawal
}

func (s stateSnapshot) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"owner":`)
	out.String(s.Config.Owner.String())
	out.RawString(`,"asset":`)
	out.String(s.Config.Asset.String())
	out.RawString(`,"direct_part":`)
	out.String(s.Config.DirectPart.String())
	out.RawString(`,"distribution_contract":`)
	out.String(s.Config.DistributionContract.String())
	out.RawString(`,"membership_contract":`)
	out.String(s.Config.MembershipContract.String())
	out.RawString(`,"closed":`)
	out.Bool(s.Config.Closed)
	out.RawString(`,"weight":`)
	out.Uint64(s.Weight)
	out.RawString(`,"donations":`)
	out.Uint64(s.Donations)
	out.RawString(`,"halftime":`)
	out.Int64(s.Halftime)
	out.RawString(`,"last_updated":`)
	out.Int64(s.LastUpdated)
	out.RawString(`,"pending_withdrawal":`)
	if s.Pending == nil {
		out.RawString("null")
	} else {
		out.RawString(`{"receiver":`)
		out.String(s.Pending.Receiver.String())
		out.RawString(`,"amount":`)
		if s.Pending.Amount == nil {
			out.RawString("null")
		} else {
			out.Int64(int64(*s.Pending.Amount))
		}
		out.RawByte('}')
	}
	out.RawByte('}')
}

// ProxyState returns the full ledger record as JSON for explorers and tests.
func ProxyState(_ *string) *string {
	requireInitialized()
	snap := stateSnapshot{
		Config:      loadProxyConfig(),
		Weight:      getWeight(),
		Donations:   getDonations(),
		Halftime:    getHalftime(),
		LastUpdated: getLastUpdated(),
		Pending:     loadPendingWithdrawal(),
	}
	return strptr(encodeMsg(snap))
}
