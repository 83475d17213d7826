// Package tokenmeta builds instructions for the Metaplex token metadata
// program: the metadata account attached to a mint and the master edition
// account that marks an NFT as a unique edition.
package tokenmeta

import (
	solana "github.com/gagliardetto/solana-go"
)

// ProgramID is the Metaplex token metadata program.
var ProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

const (
	metadataSeed = "metadata"
	editionSeed  = "edition"
)

// FindMetadataAddress derives the metadata PDA for a mint:
// ["metadata", program id, mint].
func FindMetadataAddress(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte(metadataSeed),
			ProgramID.Bytes(),
			mint.Bytes(),
		},
		ProgramID,
	)
}

// FindMasterEditionAddress derives the master edition PDA for a mint:
// ["metadata", program id, mint, "edition"].
func FindMasterEditionAddress(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{
			[]byte(metadataSeed),
			ProgramID.Bytes(),
			mint.Bytes(),
			[]byte(editionSeed),
		},
		ProgramID,
	)
}
