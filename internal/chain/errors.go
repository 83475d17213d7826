package chain

import (
	"errors"
	"fmt"

	solana "github.com/gagliardetto/solana-go"
)

// SubmitError wraps a submission or confirmation failure together with the
// transaction signature, so callers can still print an explorer link.
type SubmitError struct {
	Signature solana.Signature
	Err       error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("transaction %s: %v", e.Signature, e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// SignatureFromError digs a transaction signature out of an error chain.
func SignatureFromError(err error) (solana.Signature, bool) {
	var submitErr *SubmitError
	if errors.As(err, &submitErr) {
		return submitErr.Signature, true
	}
	return solana.Signature{}, false
}
