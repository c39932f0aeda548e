package main

import "bitbucket.org/Amartha/go-recon-matching/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
