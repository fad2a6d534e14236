package heredoc

import "fmt"

// NestingError reports accumulator-stack corruption: Active or CloseActive
// invoked with nothing pending. Defensive — the reorder machine's
// transition discipline should make this unreachable, but it is named so
// a future caller can errors.As on it rather than match a panic message
// string.
type NestingError struct {
	Op string // the Stack operation that was attempted
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("heredoc: %s called with no pending accumulator", e.Op)
}
