// Binary createtoken creates a fungible mint with on-chain metadata in a
// single transaction, then records the mint address back into the config so
// minttoken can pick it up.
package main

import (
	"context"

	solana "github.com/gagliardetto/solana-go"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/chain"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/config"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/metrics"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/spl"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/tokenmeta"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/util"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/wallet"
)

func main() {
	log := util.NewLogger(util.EnvOr("LOG_LEVEL", "info"))

	cfgPath := util.EnvOr("BOOTCAMP_CONFIG", config.DefaultPath)
	cfg, err := config.Load(cfgPath)
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

	mint := solana.NewWallet()
	rent, err := client.RentExemption(ctx, spl.MintAccountSize)
	if err != nil {
		log.Fatal().Err(err).Msg("fetch rent exemption")
	}

	instructions, err := spl.BuildCreateTokenInstructions(spl.CreateTokenParams{
		Payer:    signer.PublicKey(),
		Mint:     mint.PublicKey(),
		Decimals: cfg.Token.Decimals,
		Rent:     rent,
		Name:     cfg.Token.Name,
		Symbol:   cfg.Token.Symbol,
		URI:      cfg.Token.MetadataURI,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build instructions")
	}

	// The mint keypair co-signs its own account creation.
	tx, err := client.BuildAndSign(ctx, instructions, signer, mint.PrivateKey)
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

	metadataAddress, _, err := tokenmeta.FindMetadataAddress(mint.PublicKey())
	if err != nil {
		log.Fatal().Err(err).Msg("derive metadata address")
	}

	cfg.Token.MintAddress = mint.PublicKey().String()
	if err := config.Save(cfgPath, cfg); err != nil {
		log.Warn().Err(err).Msg("could not persist mint address to config")
	}

	log.Info().
		Str("sig", sig.String()).
		Str("explorer", client.ExplorerTxURL(sig)).
		Str("mint", mint.PublicKey().String()).
		Str("metadata", metadataAddress.String()).
		Uint8("decimals", cfg.Token.Decimals).
		Msg("token created")
}
