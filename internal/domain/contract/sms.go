package contract

// SMSSender sends one outbound text message. Implementations do not retry.
type SMSSender interface {
	Send(to, body string) error
}
