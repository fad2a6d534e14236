package lexcompat

import "fmt"

// UpstreamError wraps a failure returned by the upstream lexer itself
// (as opposed to a problem in this package's own transform).
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("lexcompat: upstream lexer failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
