package main

import (
	"github.com/aquaveo/xmsconan/pkg/cli"
)

func main() {
	cli.Execute()
}
