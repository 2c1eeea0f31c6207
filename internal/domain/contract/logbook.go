package contract

// Logbook appends one human-readable event line to a flat log file.
type Logbook interface {
	Append(event string) error
}
