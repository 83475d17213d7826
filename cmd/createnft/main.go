// Binary createnft mints a one-of-one NFT in a single transaction: mint
// account, associated token account, one minted unit, royalty-bearing
// metadata, and a master edition.
package main

import (
	"context"

	solana "github.com/gagliardetto/solana-go"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/chain"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/config"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/metrics"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/nft"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/spl"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/tokenmeta"
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

	mint := solana.NewWallet()
	rent, err := client.RentExemption(ctx, spl.MintAccountSize)
	if err != nil {
		log.Fatal().Err(err).Msg("fetch rent exemption")
	}

	instructions, err := nft.BuildInstructions(nft.Params{
		Payer:                signer.PublicKey(),
		Mint:                 mint.PublicKey(),
		Rent:                 rent,
		Name:                 cfg.NFT.Name,
		Symbol:               cfg.NFT.Symbol,
		URI:                  cfg.NFT.MetadataURI,
		SellerFeeBasisPoints: cfg.NFT.SellerFeeBasisPoints,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build instructions")
	}

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

	metadataAddress, _, _ := tokenmeta.FindMetadataAddress(mint.PublicKey())
	editionAddress, _, _ := tokenmeta.FindMasterEditionAddress(mint.PublicKey())

	log.Info().
		Str("sig", sig.String()).
		Str("explorer", client.ExplorerTxURL(sig)).
		Str("mint", mint.PublicKey().String()).
		Str("metadata", metadataAddress.String()).
		Str("master_edition", editionAddress.String()).
		Uint16("royalty_bps", cfg.NFT.SellerFeeBasisPoints).
		Msg("nft minted")
}
