// Binary transfer submits one transaction carrying three instructions:
// create a throwaway rent-exempt account, transfer lamports to the
// configured recipient, and attach a memo.
package main

import (
	"context"

	solana "github.com/gagliardetto/solana-go"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/chain"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/config"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/metrics"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/transfer"
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
	recipient, err := solana.PublicKeyFromBase58(cfg.Transfer.Recipient)
	if err != nil {
		log.Fatal().Err(err).Msg("parse transfer.recipient")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RPC.Timeout())
	defer cancel()

	client, err := chain.NewClient(ctx, cfg.RPC, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect cluster")
	}
	defer client.Close()

	// The throwaway account exists only to show several instructions in one
	// atomic transaction; its keypair is dropped after the run.
	fresh := solana.NewWallet()
	rent, err := client.RentExemption(ctx, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("fetch rent exemption")
	}

	instructions, err := transfer.BuildInstructions(transfer.Params{
		Payer:          signer.PublicKey(),
		Recipient:      recipient,
		Lamports:       cfg.Transfer.Lamports,
		Memo:           cfg.Transfer.Memo,
		NewAccount:     fresh.PublicKey(),
		NewAccountRent: rent,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build instructions")
	}

	tx, err := client.BuildAndSign(ctx, instructions, signer, fresh.PrivateKey)
	if err != nil {
		log.Fatal().Err(err).Msg("build transaction")
	}

	sig, err := client.SendAndConfirm(ctx, tx)
	if err != nil {
		if failedSig, ok := chain.SignatureFromError(err); ok {
			log.Error().Str("explorer", client.ExplorerTxURL(failedSig)).Msg("transaction failed")
		}
		log.Fatal().Err(err).Msg("submit transaction")
	}

	log.Info().
		Str("sig", sig.String()).
		Str("explorer", client.ExplorerTxURL(sig)).
		Str("new_account", fresh.PublicKey().String()).
		Uint64("lamports", cfg.Transfer.Lamports).
		Msg("transfer confirmed")
}
