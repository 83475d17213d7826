// Package spl assembles the fungible token walkthroughs: creating a mint
// with on-chain metadata, and minting supply into an associated token
// account.
package spl

import (
	"errors"
	"fmt"
	"math"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/tokenmeta"
)

// MintAccountSize is the serialized size of an SPL mint account.
const MintAccountSize = 82

// CreateTokenParams drives BuildCreateTokenInstructions. The payer becomes
// both mint and freeze authority, and update authority on the metadata.
type CreateTokenParams struct {
	Payer    solana.PublicKey
	Mint     solana.PublicKey
	Decimals uint8
	Rent     uint64 // rent-exempt minimum for MintAccountSize bytes
	Name     string
	Symbol   string
	URI      string
}

// BuildCreateTokenInstructions returns, in order: fund and allocate the mint
// account, initialize the mint, and create the metadata account. Ordering is
// significant; the token program rejects initialization of an account that
// does not exist yet, and metadata requires an initialized mint.
func BuildCreateTokenInstructions(p CreateTokenParams) ([]solana.Instruction, error) {
	if p.Payer.IsZero() || p.Mint.IsZero() {
		return nil, errors.New("payer and mint are required")
	}
	if p.Name == "" || p.Symbol == "" {
		return nil, errors.New("token name and symbol are required")
	}

	createAccount := system.NewCreateAccountInstruction(
		p.Rent,
		MintAccountSize,
		solana.TokenProgramID,
		p.Payer,
		p.Mint,
	).Build()

	initializeMint := token.NewInitializeMintInstruction(
		p.Decimals,
		p.Payer, // mint authority
		p.Payer, // freeze authority
		p.Mint,
		solana.SysVarRentPubkey,
	).Build()

	metadataAddress, _, err := tokenmeta.FindMetadataAddress(p.Mint)
	if err != nil {
		return nil, fmt.Errorf("derive metadata address: %w", err)
	}
	createMetadata, err := tokenmeta.CreateMetadataAccountV3{
		Metadata:        metadataAddress,
		Mint:            p.Mint,
		MintAuthority:   p.Payer,
		Payer:           p.Payer,
		UpdateAuthority: p.Payer,
		Data: tokenmeta.DataV2{
			Name:                 p.Name,
			Symbol:               p.Symbol,
			URI:                  p.URI,
			SellerFeeBasisPoints: 0,
		},
		IsMutable: true,
	}.Build()
	if err != nil {
		return nil, fmt.Errorf("build create metadata: %w", err)
	}

	return []solana.Instruction{createAccount, initializeMint, createMetadata}, nil
}

// MintParams drives BuildMintInstructions.
type MintParams struct {
	Payer  solana.PublicKey
	Mint   solana.PublicKey
	Owner  solana.PublicKey // token account owner, usually the payer
	Amount uint64           // raw units, already scaled by decimals
}

// BuildMintInstructions derives the owner's associated token account,
// creates it idempotently, and mints Amount raw units into it. The payer
// must hold the mint authority.
func BuildMintInstructions(p MintParams) ([]solana.Instruction, error) {
	if p.Payer.IsZero() || p.Mint.IsZero() || p.Owner.IsZero() {
		return nil, errors.New("payer, mint, and owner are required")
	}
	if p.Amount == 0 {
		return nil, errors.New("mint amount must be positive")
	}

	ata, _, err := solana.FindAssociatedTokenAddress(p.Owner, p.Mint)
	if err != nil {
		return nil, fmt.Errorf("derive associated token account: %w", err)
	}

	createATA := NewCreateIdempotentInstruction(p.Payer, ata, p.Owner, p.Mint)

	mintTo := token.NewMintToInstruction(
		p.Amount,
		p.Mint,
		ata,
		p.Payer,
		nil,
	).Build()

	return []solana.Instruction{createATA, mintTo}, nil
}

// NewCreateIdempotentInstruction builds the associated token account
// program's CreateIdempotent instruction (discriminator 1), which succeeds
// even when the account already exists.
func NewCreateIdempotentInstruction(payer, ata, owner, mint solana.PublicKey) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		solana.Meta(payer).WRITE().SIGNER(),
		solana.Meta(ata).WRITE(),
		solana.Meta(owner),
		solana.Meta(mint),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.TokenProgramID),
	}
	return solana.NewInstruction(solana.SPLAssociatedTokenAccountProgramID, accounts, []byte{1})
}

// RawAmount scales a UI amount by the mint's decimals, rounding to the
// nearest raw unit.
func RawAmount(uiAmount float64, decimals uint8) uint64 {
	return uint64(math.Round(uiAmount * math.Pow10(int(decimals))))
}
