package tokenizer

import (
	"fmt"

	"github.com/vellum-html/vellum/token"
)

// UnimplementedError reports a (state, byte) pair the state machine has no
// transition for. The tokenizer panics with one of these rather than
// guessing at recovery; callers that want a non-fatal result should recover
// at the call site and inspect the panic value.
type UnimplementedError struct {
	State    State
	Position token.Position
	Byte     byte
	AtEOF    bool
}

func (e *UnimplementedError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("tokenizer: unimplemented transition in state %s at %s: unexpected EOF", e.State, e.Position)
	}
	return fmt.Sprintf("tokenizer: unimplemented transition in state %s at %s: byte %q", e.State, e.Position, e.Byte)
}
