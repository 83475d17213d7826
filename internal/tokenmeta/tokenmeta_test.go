package tokenmeta

import (
	"bytes"
	"encoding/binary"
	"testing"

	solana "github.com/gagliardetto/solana-go"
)

func appendBorshString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func TestFindMetadataAddress(t *testing.T) {
	mint := solana.NewWallet().PublicKey()

	first, bump, err := FindMetadataAddress(mint)
	if err != nil {
		t.Fatalf("FindMetadataAddress returned error: %v", err)
	}
	second, bump2, err := FindMetadataAddress(mint)
	if err != nil {
		t.Fatalf("second derivation returned error: %v", err)
	}
	if !first.Equals(second) || bump != bump2 {
		t.Fatalf("derivation not deterministic: %s/%d vs %s/%d", first, bump, second, bump2)
	}

	other, _, err := FindMetadataAddress(solana.NewWallet().PublicKey())
	if err != nil {
		t.Fatalf("derivation for other mint returned error: %v", err)
	}
	if first.Equals(other) {
		t.Fatalf("different mints derived the same metadata address")
	}

	edition, _, err := FindMasterEditionAddress(mint)
	if err != nil {
		t.Fatalf("FindMasterEditionAddress returned error: %v", err)
	}
	if edition.Equals(first) {
		t.Fatalf("edition PDA must differ from metadata PDA")
	}
}

func TestCreateMetadataAccountV3Data(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	payer := solana.NewWallet().PublicKey()
	metadata, _, err := FindMetadataAddress(mint)
	if err != nil {
		t.Fatalf("derive metadata: %v", err)
	}

	inst, err := CreateMetadataAccountV3{
		Metadata:        metadata,
		Mint:            mint,
		MintAuthority:   payer,
		Payer:           payer,
		UpdateAuthority: payer,
		Data: DataV2{
			Name:                 "Gold Coin",
			Symbol:               "GOLD",
			URI:                  "https://example.com/gold.json",
			SellerFeeBasisPoints: 250,
		},
		IsMutable: true,
	}.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if !inst.ProgramID().Equals(ProgramID) {
		t.Fatalf("wrong program id %s", inst.ProgramID())
	}
	accounts := inst.Accounts()
	if len(accounts) != 7 {
		t.Fatalf("expected 7 accounts, got %d", len(accounts))
	}
	if !accounts[0].PublicKey.Equals(metadata) || !accounts[0].IsWritable || accounts[0].IsSigner {
		t.Fatalf("metadata account meta wrong: %+v", accounts[0])
	}
	if !accounts[3].PublicKey.Equals(payer) || !accounts[3].IsWritable || !accounts[3].IsSigner {
		t.Fatalf("payer account meta wrong: %+v", accounts[3])
	}
	if !accounts[5].PublicKey.Equals(solana.SystemProgramID) {
		t.Fatalf("system program missing: %+v", accounts[5])
	}

	var want []byte
	want = append(want, 33)
	want = appendBorshString(want, "Gold Coin")
	want = appendBorshString(want, "GOLD")
	want = appendBorshString(want, "https://example.com/gold.json")
	want = binary.LittleEndian.AppendUint16(want, 250)
	want = append(want, 0, 0, 0) // creators, collection, uses all None
	want = append(want, 1)       // is_mutable
	want = append(want, 0)       // collection_details None

	data, err := inst.Data()
	if err != nil {
		t.Fatalf("Data returned error: %v", err)
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("instruction data mismatch:\n got %v\nwant %v", data, want)
	}
}

func TestCreateMetadataAccountV3Creators(t *testing.T) {
	creator := solana.NewWallet().PublicKey()
	creators := []Creator{{Address: creator, Verified: true, Share: 100}}
	inst, err := CreateMetadataAccountV3{
		Metadata:        solana.NewWallet().PublicKey(),
		Mint:            solana.NewWallet().PublicKey(),
		MintAuthority:   creator,
		Payer:           creator,
		UpdateAuthority: creator,
		Data: DataV2{
			Name:     "One",
			Symbol:   "ONE",
			URI:      "u",
			Creators: &creators,
		},
	}.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	data, err := inst.Data()
	if err != nil {
		t.Fatalf("Data returned error: %v", err)
	}

	var want []byte
	want = append(want, 33)
	want = appendBorshString(want, "One")
	want = appendBorshString(want, "ONE")
	want = appendBorshString(want, "u")
	want = binary.LittleEndian.AppendUint16(want, 0)
	want = append(want, 1)                                // creators Some
	want = binary.LittleEndian.AppendUint32(want, 1)      // vec length
	want = append(want, creator.Bytes()...)               // address
	want = append(want, 1, 100)                           // verified, share
	want = append(want, 0, 0)                             // collection, uses None
	want = append(want, 0)                                // is_mutable false
	want = append(want, 0)                                // collection_details None

	if !bytes.Equal(data, want) {
		t.Fatalf("instruction data mismatch:\n got %v\nwant %v", data, want)
	}
}

func TestCreateMasterEditionV3Data(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	payer := solana.NewWallet().PublicKey()
	metadata, _, _ := FindMetadataAddress(mint)
	edition, _, _ := FindMasterEditionAddress(mint)

	maxSupply := uint64(0)
	inst, err := CreateMasterEditionV3{
		Edition:         edition,
		Mint:            mint,
		UpdateAuthority: payer,
		MintAuthority:   payer,
		Payer:           payer,
		Metadata:        metadata,
		MaxSupply:       &maxSupply,
	}.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	accounts := inst.Accounts()
	if len(accounts) != 9 {
		t.Fatalf("expected 9 accounts, got %d", len(accounts))
	}
	if !accounts[0].PublicKey.Equals(edition) || !accounts[0].IsWritable {
		t.Fatalf("edition account meta wrong: %+v", accounts[0])
	}
	if !accounts[6].PublicKey.Equals(solana.TokenProgramID) {
		t.Fatalf("token program missing: %+v", accounts[6])
	}

	data, err := inst.Data()
	if err != nil {
		t.Fatalf("Data returned error: %v", err)
	}
	want := []byte{17, 1, 0, 0, 0, 0, 0, 0, 0, 0} // discriminator, Some(0)
	if !bytes.Equal(data, want) {
		t.Fatalf("instruction data mismatch:\n got %v\nwant %v", data, want)
	}
}
