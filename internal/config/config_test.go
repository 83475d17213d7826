package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Name != "bootcamp-test" {
		t.Fatalf("unexpected App.Name: %s", cfg.App.Name)
	}
	if cfg.App.MetricsAddr != ":9109" {
		t.Fatalf("unexpected App.MetricsAddr: %s", cfg.App.MetricsAddr)
	}
	if cfg.RPC.Cluster != "devnet" {
		t.Fatalf("unexpected RPC.Cluster: %s", cfg.RPC.Cluster)
	}
	if cfg.RPC.Endpoint != "https://api.devnet.solana.com" {
		t.Fatalf("unexpected RPC.Endpoint: %s", cfg.RPC.Endpoint)
	}
	if cfg.RPC.WSEndpoint != "wss://api.devnet.solana.com" {
		t.Fatalf("unexpected RPC.WSEndpoint: %s", cfg.RPC.WSEndpoint)
	}
	if cfg.RPC.Commitment != "confirmed" {
		t.Fatalf("unexpected RPC.Commitment: %s", cfg.RPC.Commitment)
	}
	if cfg.RPC.Timeout() != 45*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.RPC.Timeout())
	}
	if cfg.Wallet.KeypairPath != ".local/id.json" {
		t.Fatalf("unexpected Wallet.KeypairPath: %s", cfg.Wallet.KeypairPath)
	}
	if cfg.Wallet.PublicKeyPath != ".local/id.pub" {
		t.Fatalf("unexpected Wallet.PublicKeyPath: %s", cfg.Wallet.PublicKeyPath)
	}
	if cfg.Airdrop.SOL != 2 {
		t.Fatalf("unexpected Airdrop.SOL: %.2f", cfg.Airdrop.SOL)
	}
	if cfg.Transfer.Recipient != "63EEC9FfGyksm7PkVC6z8uAmqozbQcTzbkWJNsgqjkFs" {
		t.Fatalf("unexpected Transfer.Recipient: %s", cfg.Transfer.Recipient)
	}
	if cfg.Transfer.Lamports != 5000000 {
		t.Fatalf("unexpected Transfer.Lamports: %d", cfg.Transfer.Lamports)
	}
	if cfg.Transfer.Memo != "brought to you by the bootcamp" {
		t.Fatalf("unexpected Transfer.Memo: %s", cfg.Transfer.Memo)
	}
	if cfg.Token.Symbol != "BOOT" {
		t.Fatalf("unexpected Token.Symbol: %s", cfg.Token.Symbol)
	}
	if cfg.Token.Decimals != 6 {
		t.Fatalf("unexpected Token.Decimals: %d", cfg.Token.Decimals)
	}
	if cfg.Token.MintAmount != 12.5 {
		t.Fatalf("unexpected Token.MintAmount: %.2f", cfg.Token.MintAmount)
	}
	if cfg.NFT.SellerFeeBasisPoints != 500 {
		t.Fatalf("unexpected NFT.SellerFeeBasisPoints: %d", cfg.NFT.SellerFeeBasisPoints)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{}
	cfg.Token.MintAddress = "So11111111111111111111111111111111111111112"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Token.MintAddress != cfg.Token.MintAddress {
		t.Fatalf("mint address lost in round trip: %s", loaded.Token.MintAddress)
	}
}

func TestSaveNil(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "nil.yaml"), nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := &Config{}
	cfg.RPC.Endpoint = "https://api.devnet.solana.com"
	cfg.RPC.Commitment = "confirmed"

	t.Setenv("SOLANA_RPC_URL", "http://127.0.0.1:8899")
	t.Setenv("SOLANA_COMMITMENT", "finalized")
	cfg.ApplyEnv()

	if cfg.RPC.Endpoint != "http://127.0.0.1:8899" {
		t.Fatalf("endpoint not overridden: %s", cfg.RPC.Endpoint)
	}
	if cfg.RPC.Commitment != "finalized" {
		t.Fatalf("commitment not overridden: %s", cfg.RPC.Commitment)
	}
}

func TestTimeoutDefault(t *testing.T) {
	var r RPC
	if r.Timeout() != 60*time.Second {
		t.Fatalf("expected 60s default, got %s", r.Timeout())
	}
}
