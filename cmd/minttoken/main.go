// Binary minttoken mints supply of the configured token into the wallet's
// associated token account, creating the account on the fly if needed.
package main

import (
	"context"

	solana "github.com/gagliardetto/solana-go"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/chain"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/config"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/metrics"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/spl"
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
	if cfg.Token.MintAddress == "" {
		log.Fatal().Msg("token.mint_address not set; run createtoken first")
	}
	mint, err := solana.PublicKeyFromBase58(cfg.Token.MintAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("parse token.mint_address")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RPC.Timeout())
	defer cancel()

	client, err := chain.NewClient(ctx, cfg.RPC, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect cluster")
	}
	defer client.Close()

	amount := spl.RawAmount(cfg.Token.MintAmount, cfg.Token.Decimals)
	instructions, err := spl.BuildMintInstructions(spl.MintParams{
		Payer:  signer.PublicKey(),
		Mint:   mint,
		Owner:  signer.PublicKey(),
		Amount: amount,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build instructions")
	}

	tx, err := client.BuildAndSign(ctx, instructions, signer)
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
		Str("mint", mint.String()).
		Float64("ui_amount", cfg.Token.MintAmount).
		Uint64("raw_amount", amount).
		Msg("tokens minted")
}
