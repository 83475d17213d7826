// Package wallet loads and persists ed25519 signing material in the
// formats the Solana CLI understands.
package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	solana "github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/config"
)

// EnvPrivateKey is checked before any file-based material so a wallet can be
// injected without touching the config.
const EnvPrivateKey = "SOLANA_PRIVATE_KEY_BASE58"

// ErrKeypairExists is returned by SaveKeypair when the target file is already present.
var ErrKeypairExists = errors.New("keypair file already exists")

// LoadPrivateKeyFromEnv reads a base58 private key from the environment,
// loading .env first on a best-effort basis.
func LoadPrivateKeyFromEnv() (solana.PrivateKey, error) {
	_ = godotenv.Load() // best-effort
	b58 := os.Getenv(EnvPrivateKey)
	if b58 == "" {
		return nil, fmt.Errorf("%s not set", EnvPrivateKey)
	}
	return solana.PrivateKeyFromBase58(b58)
}

// Load resolves the signing key in priority order: environment, inline
// base58 config value, then the Solana CLI keypair file.
func Load(cfg config.Wallet) (solana.PrivateKey, error) {
	if key, err := LoadPrivateKeyFromEnv(); err == nil {
		return key, nil
	}
	if cfg.PrivateKeyBase58 != "" {
		key, err := solana.PrivateKeyFromBase58(cfg.PrivateKeyBase58)
		if err != nil {
			return nil, fmt.Errorf("decode configured private key: %w", err)
		}
		return key, nil
	}
	if cfg.KeypairPath == "" {
		return nil, errors.New("no wallet configured: set " + EnvPrivateKey + " or wallet.keypair_path")
	}
	key, err := solana.PrivateKeyFromSolanaKeygenFile(cfg.KeypairPath)
	if err != nil {
		return nil, fmt.Errorf("read keypair file %s: %w", cfg.KeypairPath, err)
	}
	return key, nil
}

// Generate creates a fresh ed25519 keypair.
func Generate() solana.PrivateKey {
	return solana.NewWallet().PrivateKey
}

// SaveKeypair writes the 64-byte secret key as the JSON byte array the
// Solana CLI expects. Refuses to clobber an existing file.
func SaveKeypair(path string, key solana.PrivateKey) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrKeypairExists, path)
	}
	secret := make([]int, len(key))
	for i, b := range key {
		secret[i] = int(b)
	}
	data, err := json.Marshal(secret)
	if err != nil {
		return fmt.Errorf("marshal secret key: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create keypair dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write keypair: %w", err)
	}
	return nil
}

// SavePublicKey writes the base58 public key to a sidecar file.
func SavePublicKey(path string, pub solana.PublicKey) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create pubkey dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(pub.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("write pubkey: %w", err)
	}
	return nil
}
