package main

import (
	"strings"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"donation_proxy/sdk"
)

// Entrypoint payloads and outbound messages travel as JSON. The codecs are
// hand-written against tinyjson's lexer/writer: reflection-free, which is
// what the tinygo target wants, and the wire shape stays explicit.

// UnmarshalTinyJSON decodes the contract_init payload.
func (a *InitArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "asset":
			a.Asset = in.String()
		case "direct_part":
			a.DirectPart = in.String()
		case "distribution_contract":
			a.DistributionContract = in.String()
		case "membership_contract":
			a.MembershipContract = in.String()
		case "weight":
			a.Weight = in.Uint64()
		case "halftime":
			a.HalftimeSeconds = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// UnmarshalTinyJSON decodes the optional withdraw payload.
func (a *WithdrawArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "receiver":
			if in.IsNull() {
				in.Skip()
				a.Receiver = nil
			} else {
				v := in.String()
				a.Receiver = &v
			}
		case "amount":
			if in.IsNull() {
				in.Skip()
				a.Amount = nil
			} else {
				v := in.Int64()
				a.Amount = &v
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// UnmarshalTinyJSON decodes the propose_member payload.
func (a *ProposeMemberArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "addr":
			a.Addr = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// UnmarshalTinyJSON decodes the host's reply envelope.
func (r *ReplyEnvelope) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			r.Id = in.Uint64()
		case "success":
			r.Success = in.Bool()
		case "result":
			r.Result = in.String()
		case "error":
			r.Error = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// requirePayload rejects nil/blank payloads before the lexer sees them.
func requirePayload(payload *string, what string) string {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		sdk.Abort(what + " payload missing")
	}
	return strings.TrimSpace(*payload)
}

func decodeInitArgs(payload *string) *InitArgs {
	raw := requirePayload(payload, "init")
	args := &InitArgs{}
	if err := tinyjson.Unmarshal([]byte(raw), args); err != nil {
		sdk.Revert("malformed init payload: "+err.Error(), ErrInvalidConfiguration)
	}
	return args
}

// decodeWithdrawArgs tolerates an absent payload since both fields are optional.
func decodeWithdrawArgs(payload *string) *WithdrawArgs {
	args := &WithdrawArgs{}
	if payload == nil || strings.TrimSpace(*payload) == "" {
		return args
	}
	if err := tinyjson.Unmarshal([]byte(strings.TrimSpace(*payload)), args); err != nil {
		sdk.Abort("malformed withdraw payload: " + err.Error())
	}
	return args
}

func decodeProposeMemberArgs(payload *string) *ProposeMemberArgs {
	raw := requirePayload(payload, "propose_member")
	args := &ProposeMemberArgs{}
	if err := tinyjson.Unmarshal([]byte(raw), args); err != nil {
		sdk.Abort("malformed propose_member payload: " + err.Error())
	}
	return args
}

func decodeReplyEnvelope(payload *string) *ReplyEnvelope {
	raw := requirePayload(payload, "reply")
	env := &ReplyEnvelope{}
	if err := tinyjson.Unmarshal([]byte(raw), env); err != nil {
		sdk.Abort("malformed reply envelope: " + err.Error())
	}
	return env
}

// -----------------------------------------------------------------------------
// Outbound messages
// -----------------------------------------------------------------------------

// distributionWithdrawMsg asks the distribution contract to release funds.
type distributionWithdrawMsg struct {
	Weight uint64
	Diff   int64
}

func (m distributionWithdrawMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"weight":`)
	out.Uint64(m.Weight)
	out.RawString(`,"diff":`)
	out.Int64(m.Diff)
	out.RawByte('}')
}

// memberProposalMsg proposes a candidate to the membership contract.
type memberProposalMsg struct {
	Addr string
}

func (m memberProposalMsg) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawString(`{"addr":`)
	out.String(m.Addr)
	out.RawByte('}')
}

func encodeMsg(v tinyjson.Marshaler) string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("failed to encode outbound message: " + err.Error())
	}
	return string(b)
}

func encodeDistributionWithdrawMsg(weight uint64, diff int64) string {
	return encodeMsg(distributionWithdrawMsg{Weight: weight, Diff: diff})
}

func encodeMemberProposalMsg(addr string) string {
	return encodeMsg(memberProposalMsg{Addr: addr})
}

// encodeDistributeMsg carries no fields; the funds arrive as the transfer itself.
func encodeDistributeMsg() string {
	return "{}"
}
