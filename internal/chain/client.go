// Package chain wraps the Solana RPC and websocket clients with the small
// surface the walkthroughs need: blockhashes, rent, airdrops, and
// sign-submit-confirm in one call.
package chain

import (
	"context"
	"fmt"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	sendandconfirm "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/rs/zerolog"

	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/config"
	"github.com/hkhangus/solana-bootcamp-autumn-2024/internal/metrics"
)

// Client bundles the RPC connection, an optional websocket connection for
// confirmation subscriptions, and the submission defaults from config.
type Client struct {
	rpc           *rpc.Client
	ws            *ws.Client
	commitment    rpc.CommitmentType
	cluster       string
	endpoint      string
	skipPreflight bool
	pollInterval  time.Duration
	log           zerolog.Logger
}

// ParseCommitment maps the config string onto an RPC commitment level,
// defaulting to confirmed.
func ParseCommitment(s string) rpc.CommitmentType {
	switch s {
	case "processed":
		return rpc.CommitmentProcessed
	case "finalized":
		return rpc.CommitmentFinalized
	default:
		return rpc.CommitmentConfirmed
	}
}

// NewClient connects to the configured cluster. The websocket connection is
// only dialed when an endpoint is configured; without it confirmation falls
// back to polling signature statuses.
func NewClient(ctx context.Context, cfg config.RPC, log zerolog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("rpc endpoint not configured")
	}
	client := &Client{
		rpc:           rpc.New(cfg.Endpoint),
		commitment:    ParseCommitment(cfg.Commitment),
		cluster:       cfg.Cluster,
		endpoint:      cfg.Endpoint,
		skipPreflight: cfg.SkipPreflight,
		pollInterval:  time.Second,
		log:           log,
	}
	if cfg.WSEndpoint != "" {
		wsClient, err := ws.Connect(ctx, cfg.WSEndpoint)
		if err != nil {
			return nil, fmt.Errorf("connect websocket %s: %w", cfg.WSEndpoint, err)
		}
		client.ws = wsClient
	}
	return client, nil
}

// Close tears down the websocket connection, if any.
func (c *Client) Close() {
	if c.ws != nil {
		c.ws.Close()
	}
}

// LatestBlockhash fetches a recent blockhash at the client's commitment.
func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	metrics.RPCCallsTotal.WithLabelValues("getLatestBlockhash").Inc()
	out, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("get latest blockhash: %w", err)
	}
	return out.Value.Blockhash, nil
}

// RentExemption returns the lamports needed to make an account of the given
// size rent-exempt.
func (c *Client) RentExemption(ctx context.Context, space uint64) (uint64, error) {
	metrics.RPCCallsTotal.WithLabelValues("getMinimumBalanceForRentExemption").Inc()
	lamports, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, space, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("get rent exemption for %d bytes: %w", space, err)
	}
	return lamports, nil
}

// Balance returns the lamport balance of an account.
func (c *Client) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	metrics.RPCCallsTotal.WithLabelValues("getBalance").Inc()
	out, err := c.rpc.GetBalance(ctx, account, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return out.Value, nil
}

// BuildAndSign fetches a fresh blockhash, assembles the instructions into a
// transaction paid by the first signer, and signs with every keypair.
func (c *Client) BuildAndSign(ctx context.Context, instructions []solana.Instruction, payer solana.PrivateKey, extraSigners ...solana.PrivateKey) (*solana.Transaction, error) {
	blockhash, err := c.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(payer.PublicKey()))
	if err != nil {
		return nil, fmt.Errorf("assemble transaction: %w", err)
	}
	signers := append([]solana.PrivateKey{payer}, extraSigners...)
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return tx, nil
}

// SendAndConfirm submits a signed transaction and waits for it to reach the
// client's commitment. Failures after submission come back as *SubmitError so
// the caller can still log the signature.
func (c *Client) SendAndConfirm(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	metrics.RPCCallsTotal.WithLabelValues("sendTransaction").Inc()
	metrics.TransactionsTotal.WithLabelValues("submitted").Inc()

	if c.ws != nil {
		sig, err := sendandconfirm.SendAndConfirmTransaction(ctx, c.rpc, c.ws, tx)
		if err != nil {
			metrics.TransactionsTotal.WithLabelValues("failed").Inc()
			if sig == (solana.Signature{}) {
				return sig, fmt.Errorf("send transaction: %w", err)
			}
			return sig, &SubmitError{Signature: sig, Err: err}
		}
		metrics.TransactionsTotal.WithLabelValues("confirmed").Inc()
		return sig, nil
	}

	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       c.skipPreflight,
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues("failed").Inc()
		return sig, fmt.Errorf("send transaction: %w", err)
	}
	c.log.Debug().Str("sig", sig.String()).Msg("transaction submitted, waiting for confirmation")
	if err := c.Confirm(ctx, sig); err != nil {
		metrics.TransactionsTotal.WithLabelValues("failed").Inc()
		return sig, err
	}
	metrics.TransactionsTotal.WithLabelValues("confirmed").Inc()
	return sig, nil
}

// Confirm polls signature statuses until the signature reaches the client's
// commitment or the context expires.
func (c *Client) Confirm(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return &SubmitError{Signature: sig, Err: ctx.Err()}
		case <-ticker.C:
		}
		metrics.RPCCallsTotal.WithLabelValues("getSignatureStatuses").Inc()
		out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			c.log.Debug().Err(err).Msg("signature status poll failed, retrying")
			continue
		}
		if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
			continue
		}
		status := out.Value[0]
		if status.Err != nil {
			return &SubmitError{Signature: sig, Err: fmt.Errorf("transaction failed on chain: %v", status.Err)}
		}
		if commitmentReached(status.ConfirmationStatus, c.commitment) {
			return nil
		}
	}
}

// Airdrop requests lamports for an account and waits for the transaction to
// confirm. Only meaningful against devnet/testnet clusters.
func (c *Client) Airdrop(ctx context.Context, to solana.PublicKey, lamports uint64) (solana.Signature, error) {
	metrics.RPCCallsTotal.WithLabelValues("requestAirdrop").Inc()
	sig, err := c.rpc.RequestAirdrop(ctx, to, lamports, c.commitment)
	if err != nil {
		return sig, fmt.Errorf("request airdrop: %w", err)
	}
	if err := c.Confirm(ctx, sig); err != nil {
		return sig, err
	}
	return sig, nil
}

// ExplorerTxURL renders the explorer link for a signature on this cluster.
func (c *Client) ExplorerTxURL(sig solana.Signature) string {
	return ExplorerTxURL(c.cluster, c.endpoint, sig.String())
}

// ExplorerAddressURL renders the explorer link for an address on this cluster.
func (c *Client) ExplorerAddressURL(address solana.PublicKey) string {
	return ExplorerAddressURL(c.cluster, c.endpoint, address.String())
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	rank := func(s string) int {
		switch s {
		case "processed":
			return 0
		case "confirmed":
			return 1
		case "finalized":
			return 2
		}
		return -1
	}
	return rank(string(status)) >= rank(string(want))
}
