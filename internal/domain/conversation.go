package domain

// ConversationTurn is one transcript entry. A turn with an empty Response is
// pending: an optimistic local echo awaiting the server's reply. Pending
// turns are never removed or edited; a reply arrives as a separate completed
// turn, keeping the transcript strictly append-only.
type ConversationTurn struct {
	Message   string
	Response  string
	Intent    string
	Sentiment string
	// Timestamp is an ISO-8601 (RFC 3339) instant, as served by the backend.
	Timestamp string
}

// Pending reports whether the turn is still awaiting a server reply.
func (t ConversationTurn) Pending() bool {
	return t.Response == ""
}

// ChatReply is the coach's answer to one message.
type ChatReply struct {
	Response    string
	Intent      string
	Sentiment   string
	Suggestions []string
}
