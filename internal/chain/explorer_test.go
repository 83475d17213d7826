package chain

import "testing"

func TestExplorerTxURL(t *testing.T) {
	sig := "5j7s6NiJS3JAkvgkoc18WVAsiSaci2pxB2A6ueCJP4tprA2TFg9wSyTLeYouxPBJEMzJinENTkpA52YStRW5Dia7"

	cases := []struct {
		name     string
		cluster  string
		endpoint string
		want     string
	}{
		{"mainnet", "mainnet-beta", "https://api.mainnet-beta.solana.com", "https://explorer.solana.com/tx/" + sig},
		{"devnet", "devnet", "https://api.devnet.solana.com", "https://explorer.solana.com/tx/" + sig + "?cluster=devnet"},
		{"testnet", "testnet", "https://api.testnet.solana.com", "https://explorer.solana.com/tx/" + sig + "?cluster=testnet"},
		{"custom", "localnet", "http://127.0.0.1:8899", "https://explorer.solana.com/tx/" + sig + "?cluster=custom&customUrl=http%3A%2F%2F127.0.0.1%3A8899"},
	}
	for _, tc := range cases {
		if got := ExplorerTxURL(tc.cluster, tc.endpoint, sig); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestExplorerAddressURL(t *testing.T) {
	addr := "63EEC9FfGyksm7PkVC6z8uAmqozbQcTzbkWJNsgqjkFs"
	want := "https://explorer.solana.com/address/" + addr + "?cluster=devnet"
	if got := ExplorerAddressURL("devnet", "", addr); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
