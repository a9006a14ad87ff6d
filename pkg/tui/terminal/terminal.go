// ABOUTME: Defines the Terminal interface for raw mode, size queries, input, and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts the controlling terminal: raw-mode lifecycle,
// dimension queries, timed single-byte input, and output writing.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (cols, rows int, err error)

	// ReadByte returns the next input byte. ok is false when no byte
	// arrived within the read timeout; err is reserved for hard read
	// failures, never for timeouts.
	ReadByte() (b byte, ok bool, err error)

	Write(p []byte) (n int, err error)
}
