package main

// Reply ids registered with the host when a sub-call wants a success
// continuation. Any other id reaching contract_reply is a protocol violation.
const (
	WithdrawReplyId      uint64 = 1
	ProposeMemberReplyId uint64 = 2
)

// Methods invoked on the collaborator contracts.
const (
	MethodDistribute    = "distribute"
	MethodWithdraw      = "withdraw"
	MethodProposeMember = "propose_member"
)

// Revert symbols surfaced to the caller when an invocation is rejected.
const (
	ErrUnauthorized         = "unauthorized"
	ErrInvalidConfiguration = "invalid_configuration"
	ErrInvalidPayment       = "invalid_payment"
	ErrInvalidAddress       = "invalid_address"
	ErrUnrecognizedReplyId  = "unrecognized_reply_id"
	ErrDownstreamFailure    = "downstream_failure"
	ErrMissingPendingState  = "missing_pending_state"
	ErrNotInitialized       = "not_initialized"
)
