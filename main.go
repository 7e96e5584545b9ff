package main

import "github/chapool/nft-faucet/cmd"

func main() {
	cmd.Execute()
}
