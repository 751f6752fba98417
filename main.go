package main

import "github.com/healthsignal/symclust/cmd"

func main() {
	cmd.Execute()
}
