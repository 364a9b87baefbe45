package sdk

type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

// Env is the per-invocation snapshot the host hands to the contract.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	Index       int64  `json:"tx.index"`
	OpIndex     int64  `json:"tx.op_index"`
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Sender      Sender
	Caller      Caller
	Payer       string
	Intents     []Intent
}

// CallOptions tunes an enqueued cross-contract call. ReplyOnSuccess names the
// reply id the host invokes contract_reply with once the downstream call
// committed; a nil id means fire-and-forget.
type CallOptions struct {
	ReplyOnSuccess *uint64  `json:"reply_on_success,omitempty"`
	Intents        []Intent `json:"intents,omitempty"`
}
