package main

import "max.ks1230/fx-converter/internal/cli"

func main() {
	cli.Execute()
}
