// Binary keygen generates a wallet keypair, saves the secret key in the
// Solana CLI JSON format, and writes the base58 public key to a sidecar file.
package main

import (
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/chain"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/config"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/util"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/wallet"
)

func main() {
	log := util.NewLogger(util.EnvOr("LOG_LEVEL", "info"))

	cfg, err := config.Load(util.EnvOr("BOOTCAMP_CONFIG", config.DefaultPath))
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	cfg.ApplyEnv()
	if cfg.Wallet.KeypairPath == "" {
		log.Fatal().Msg("wallet.keypair_path not configured")
	}

	key := wallet.Generate()
	if err := wallet.SaveKeypair(cfg.Wallet.KeypairPath, key); err != nil {
		log.Fatal().Err(err).Msg("save keypair")
	}
	log.Info().Str("path", cfg.Wallet.KeypairPath).Msg("keypair saved")

	if cfg.Wallet.PublicKeyPath != "" {
		if err := wallet.SavePublicKey(cfg.Wallet.PublicKeyPath, key.PublicKey()); err != nil {
			log.Fatal().Err(err).Msg("save public key")
		}
		log.Info().Str("path", cfg.Wallet.PublicKeyPath).Msg("public key saved")
	}

	log.Info().
		Str("pubkey", key.PublicKey().String()).
		Str("explorer", chain.ExplorerAddressURL(cfg.RPC.Cluster, cfg.RPC.Endpoint, key.PublicKey().String())).
		Msg("wallet ready")
}
