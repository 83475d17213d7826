// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the walkthrough binaries look for configuration
// unless BOOTCAMP_CONFIG points elsewhere.
const DefaultPath = "config.yaml"

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// RPC defines cluster endpoints and submission defaults shared by every walkthrough.
type RPC struct {
	Cluster       string `yaml:"cluster"` // devnet|testnet|mainnet-beta|custom
	Endpoint      string `yaml:"endpoint"`
	WSEndpoint    string `yaml:"ws_endpoint"`  // optional; enables websocket confirmation
	Commitment    string `yaml:"commitment"`   // processed|confirmed|finalized
	TimeoutSecs   int    `yaml:"timeout_secs"` // per-run deadline
	SkipPreflight bool   `yaml:"skip_preflight"`
}

// Timeout converts the configured per-run deadline into a duration, defaulting to 60s.
func (r RPC) Timeout() time.Duration {
	if r.TimeoutSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(r.TimeoutSecs) * time.Second
}

// Wallet stores env-backed or file-backed signing material locations.
type Wallet struct {
	KeypairPath      string `yaml:"keypair_path"`     // Solana CLI JSON secret key array
	PublicKeyPath    string `yaml:"public_key_path"`  // sidecar written by keygen
	PrivateKeyBase58 string `yaml:"private_key_base58"`
}

// Airdrop sets how much devnet SOL the airdrop walkthrough requests.
type Airdrop struct {
	SOL float64 `yaml:"sol"`
}

// Transfer parameterizes the multi-instruction transfer walkthrough.
type Transfer struct {
	Recipient string `yaml:"recipient"`
	Lamports  uint64 `yaml:"lamports"`
	Memo      string `yaml:"memo"`
}

// Token parameterizes the fungible token walkthroughs (create + mint).
type Token struct {
	Name        string  `yaml:"name"`
	Symbol      string  `yaml:"symbol"`
	MetadataURI string  `yaml:"metadata_uri"`
	Decimals    uint8   `yaml:"decimals"`
	MintAddress string  `yaml:"mint_address"` // set after create-token; consumed by mint-token
	MintAmount  float64 `yaml:"mint_amount"`  // UI amount, scaled by decimals at mint time
}

// NFT parameterizes the NFT walkthrough.
type NFT struct {
	Name                 string `yaml:"name"`
	Symbol               string `yaml:"symbol"`
	MetadataURI          string `yaml:"metadata_uri"`
	SellerFeeBasisPoints uint16 `yaml:"seller_fee_basis_points"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App      App      `yaml:"app"`
	RPC      RPC      `yaml:"rpc"`
	Wallet   Wallet   `yaml:"wallet"`
	Airdrop  Airdrop  `yaml:"airdrop"`
	Transfer Transfer `yaml:"transfer"`
	Token    Token    `yaml:"token"`
	NFT      NFT      `yaml:"nft"`
}

// ApplyEnv overlays SOLANA_* environment variables onto the RPC settings so
// a cluster can be swapped without editing the config file.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load() // best-effort
	if v := os.Getenv("SOLANA_RPC_URL"); v != "" {
		c.RPC.Endpoint = v
	}
	if v := os.Getenv("SOLANA_WS_URL"); v != "" {
		c.RPC.WSEndpoint = v
	}
	if v := os.Getenv("SOLANA_COMMITMENT"); v != "" {
		c.RPC.Commitment = v
	}
	if v := os.Getenv("SOLANA_CLUSTER"); v != "" {
		c.RPC.Cluster = v
	}
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
