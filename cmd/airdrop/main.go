// Binary airdrop requests devnet SOL for the configured wallet and waits for
// the airdrop transaction to confirm.
package main

import (
	"context"

	solana "github.com/gagliardetto/solana-go"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/chain"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/config"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/metrics"
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
	if cfg.App.MetricsAddr != "" {
		_ = metrics.Serve(cfg.App.MetricsAddr)
	}

	signer, err := wallet.Load(cfg.Wallet)
	if err != nil {
		log.Fatal().Err(err).Msg("load wallet")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RPC.Timeout())
	defer cancel()

	client, err := chain.NewClient(ctx, cfg.RPC, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect cluster")
	}
	defer client.Close()

	sol := cfg.Airdrop.SOL
	if sol <= 0 {
		sol = 1
	}
	lamports := uint64(sol * float64(solana.LAMPORTS_PER_SOL))

	log.Info().Float64("sol", sol).Str("to", signer.PublicKey().String()).Msg("requesting airdrop")
	sig, err := client.Airdrop(ctx, signer.PublicKey(), lamports)
	if err != nil {
		if failedSig, ok := chain.SignatureFromError(err); ok {
			log.Error().Str("explorer", client.ExplorerTxURL(failedSig)).Msg("airdrop failed")
		}
		log.Fatal().Err(err).Msg("airdrop")
	}

	balance, err := client.Balance(ctx, signer.PublicKey())
	if err != nil {
		log.Fatal().Err(err).Msg("fetch balance")
	}
	log.Info().
		Str("sig", sig.String()).
		Str("explorer", client.ExplorerTxURL(sig)).
		Float64("balance_sol", float64(balance)/float64(solana.LAMPORTS_PER_SOL)).
		Msg("airdrop confirmed")
}
