package tokenmeta

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

// Instruction discriminators from the token metadata program's interface.
const (
	instructionCreateMetadataAccountV3 uint8 = 33
	instructionCreateMasterEditionV3   uint8 = 17
)

// Creator attributes a share of royalties to an address.
type Creator struct {
	Address  solana.PublicKey
	Verified bool
	Share    uint8
}

// Collection links a piece of metadata to a collection NFT.
type Collection struct {
	Verified bool
	Key      solana.PublicKey
}

// Uses tracks consumable-use counters on an asset.
type Uses struct {
	UseMethod uint8
	Remaining uint64
	Total     uint64
}

// CollectionDetails marks a metadata account as a sized collection parent.
type CollectionDetails struct {
	Kind uint8
	Size uint64
}

// DataV2 is the metadata payload: naming, content URI, and royalty split.
// Field order matches the program's borsh layout.
type DataV2 struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
	Creators             *[]Creator  `bin:"optional"`
	Collection           *Collection `bin:"optional"`
	Uses                 *Uses       `bin:"optional"`
}

type createMetadataAccountV3Args struct {
	Instruction       uint8
	Data              DataV2
	IsMutable         bool
	CollectionDetails *CollectionDetails `bin:"optional"`
}

type createMasterEditionV3Args struct {
	Instruction uint8
	MaxSupply   *uint64 `bin:"optional"`
}

// CreateMetadataAccountV3 describes the accounts and payload for attaching
// metadata to a mint. Metadata is the PDA from FindMetadataAddress.
type CreateMetadataAccountV3 struct {
	Metadata        solana.PublicKey
	Mint            solana.PublicKey
	MintAuthority   solana.PublicKey
	Payer           solana.PublicKey
	UpdateAuthority solana.PublicKey
	Data            DataV2
	IsMutable       bool
}

// Build encodes the instruction. The update authority is marked as a signer,
// which holds for every walkthrough here (payer == update authority).
func (ix CreateMetadataAccountV3) Build() (solana.Instruction, error) {
	data, err := borshEncode(createMetadataAccountV3Args{
		Instruction: instructionCreateMetadataAccountV3,
		Data:        ix.Data,
		IsMutable:   ix.IsMutable,
	})
	if err != nil {
		return nil, fmt.Errorf("encode create metadata args: %w", err)
	}
	accounts := solana.AccountMetaSlice{
		solana.Meta(ix.Metadata).WRITE(),
		solana.Meta(ix.Mint),
		solana.Meta(ix.MintAuthority).SIGNER(),
		solana.Meta(ix.Payer).WRITE().SIGNER(),
		solana.Meta(ix.UpdateAuthority).SIGNER(),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.SysVarRentPubkey),
	}
	return solana.NewInstruction(ProgramID, accounts, data), nil
}

// CreateMasterEditionV3 describes the accounts for minting a master edition.
// A MaxSupply of 0 permits no prints, i.e. a one-of-one NFT.
type CreateMasterEditionV3 struct {
	Edition         solana.PublicKey
	Mint            solana.PublicKey
	UpdateAuthority solana.PublicKey
	MintAuthority   solana.PublicKey
	Payer           solana.PublicKey
	Metadata        solana.PublicKey
	MaxSupply       *uint64
}

// Build encodes the instruction.
func (ix CreateMasterEditionV3) Build() (solana.Instruction, error) {
	data, err := borshEncode(createMasterEditionV3Args{
		Instruction: instructionCreateMasterEditionV3,
		MaxSupply:   ix.MaxSupply,
	})
	if err != nil {
		return nil, fmt.Errorf("encode create master edition args: %w", err)
	}
	accounts := solana.AccountMetaSlice{
		solana.Meta(ix.Edition).WRITE(),
		solana.Meta(ix.Mint).WRITE(),
		solana.Meta(ix.UpdateAuthority).SIGNER(),
		solana.Meta(ix.MintAuthority).SIGNER(),
		solana.Meta(ix.Payer).WRITE().SIGNER(),
		solana.Meta(ix.Metadata).WRITE(),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.SysVarRentPubkey),
	}
	return solana.NewInstruction(ProgramID, accounts, data), nil
}

func borshEncode(v any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
