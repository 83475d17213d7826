// Package nft assembles the NFT walkthrough: a zero-decimal mint, a single
// minted unit, royalty-bearing metadata, and a master edition, all in one
// transaction.
package nft

import (
	"errors"
	"fmt"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/spl"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/tokenmeta"
)

// Params drives BuildInstructions. The payer is mint authority, update
// authority, creator, and recipient of the minted token.
type Params struct {
	Payer                solana.PublicKey
	Mint                 solana.PublicKey
	Rent                 uint64 // rent-exempt minimum for the mint account
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
}

// BuildInstructions returns the six instructions of the NFT mint in their
// required order: create mint account, initialize mint (0 decimals), create
// the payer's associated token account, mint exactly one unit, attach
// metadata with a single verified creator, and mint the master edition with
// max supply 0.
func BuildInstructions(p Params) ([]solana.Instruction, error) {
	if p.Payer.IsZero() || p.Mint.IsZero() {
		return nil, errors.New("payer and mint are required")
	}
	if p.Name == "" {
		return nil, errors.New("nft name is required")
	}

	createAccount := system.NewCreateAccountInstruction(
		p.Rent,
		spl.MintAccountSize,
		solana.TokenProgramID,
		p.Payer,
		p.Mint,
	).Build()

	initializeMint := token.NewInitializeMintInstruction(
		0, // NFTs are indivisible
		p.Payer,
		p.Payer,
		p.Mint,
		solana.SysVarRentPubkey,
	).Build()

	ata, _, err := solana.FindAssociatedTokenAddress(p.Payer, p.Mint)
	if err != nil {
		return nil, fmt.Errorf("derive associated token account: %w", err)
	}
	createATA := spl.NewCreateIdempotentInstruction(p.Payer, ata, p.Payer, p.Mint)

	mintOne := token.NewMintToInstruction(1, p.Mint, ata, p.Payer, nil).Build()

	metadataAddress, _, err := tokenmeta.FindMetadataAddress(p.Mint)
	if err != nil {
		return nil, fmt.Errorf("derive metadata address: %w", err)
	}
	creators := []tokenmeta.Creator{{
		Address:  p.Payer,
		Verified: true, // payer signs the transaction
		Share:    100,
	}}
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
			SellerFeeBasisPoints: p.SellerFeeBasisPoints,
			Creators:             &creators,
		},
		IsMutable: true,
	}.Build()
	if err != nil {
		return nil, fmt.Errorf("build create metadata: %w", err)
	}

	editionAddress, _, err := tokenmeta.FindMasterEditionAddress(p.Mint)
	if err != nil {
		return nil, fmt.Errorf("derive master edition address: %w", err)
	}
	maxSupply := uint64(0) // no prints
	createEdition, err := tokenmeta.CreateMasterEditionV3{
		Edition:         editionAddress,
		Mint:            p.Mint,
		UpdateAuthority: p.Payer,
		MintAuthority:   p.Payer,
		Payer:           p.Payer,
		Metadata:        metadataAddress,
		MaxSupply:       &maxSupply,
	}.Build()
	if err != nil {
		return nil, fmt.Errorf("build create master edition: %w", err)
	}

	return []solana.Instruction{
		createAccount,
		initializeMint,
		createATA,
		mintOne,
		createMetadata,
		createEdition,
	}, nil
}
