package main

// Close flips the proxy to closed. The transition is one-way and idempotent:
// closing an already closed proxy succeeds and changes nothing. Owner only.
func Close(_ *string) *string {
	requireInitialized()
	sender := getSenderAddress()
	requireOwner(sender)

	cfg := loadProxyConfig()
	cfg.Closed = true
	saveProxyConfig(cfg)

	emitCloseEvent(sender.String())

	return strptr("closed")
}
