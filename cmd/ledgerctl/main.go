package main

import (
	"github.com/nghuy/gameledger/internal/cli"
)

func main() {
	cli.Execute()
}
