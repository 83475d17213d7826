package chain

import "net/url"

const explorerBase = "https://explorer.solana.com"

// ExplorerTxURL renders a human-clickable explorer link for a transaction
// signature, tagging the right cluster.
func ExplorerTxURL(cluster, endpoint, sig string) string {
	return explorerBase + "/tx/" + sig + clusterQuery(cluster, endpoint)
}

// ExplorerAddressURL renders an explorer link for an account address.
func ExplorerAddressURL(cluster, endpoint, address string) string {
	return explorerBase + "/address/" + address + clusterQuery(cluster, endpoint)
}

func clusterQuery(cluster, endpoint string) string {
	switch cluster {
	case "", "mainnet", "mainnet-beta":
		return ""
	case "devnet", "testnet":
		return "?cluster=" + cluster
	default:
		return "?cluster=custom&customUrl=" + url.QueryEscape(endpoint)
	}
}
