// Package transfer assembles the week-one walkthrough transaction: several
// unrelated instructions batched atomically into a single submission.
package transfer

import (
	"errors"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// MemoProgramID is the SPL memo program.
var MemoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

// Params drives BuildInstructions. NewAccount is a throwaway keypair's public
// key funded to NewAccountRent so the transaction demonstrates account
// creation alongside the transfer.
type Params struct {
	Payer          solana.PublicKey
	Recipient      solana.PublicKey
	Lamports       uint64
	Memo           string
	NewAccount     solana.PublicKey
	NewAccountRent uint64
}

// BuildInstructions returns, in order: create a zero-space system account,
// transfer lamports to the recipient, and attach a memo signed by the payer.
func BuildInstructions(p Params) ([]solana.Instruction, error) {
	if p.Payer.IsZero() || p.Recipient.IsZero() || p.NewAccount.IsZero() {
		return nil, errors.New("payer, recipient, and new account are required")
	}
	if p.Lamports == 0 {
		return nil, errors.New("transfer amount must be positive")
	}

	createAccount := system.NewCreateAccountInstruction(
		p.NewAccountRent,
		0, // no data, plain system account
		solana.SystemProgramID,
		p.Payer,
		p.NewAccount,
	).Build()

	transferLamports := system.NewTransferInstruction(
		p.Lamports,
		p.Payer,
		p.Recipient,
	).Build()

	memo := NewMemoInstruction(p.Memo, p.Payer)

	return []solana.Instruction{createAccount, transferLamports, memo}, nil
}

// NewMemoInstruction builds a memo instruction signed by signer. The memo
// program takes the message as raw instruction data.
func NewMemoInstruction(message string, signer solana.PublicKey) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		solana.Meta(signer).SIGNER(),
	}
	return solana.NewInstruction(MemoProgramID, accounts, []byte(message))
}
