package main

import "github.com/asifkhanbk/price-calculator/cmd"

func main() {
	cmd.Execute()
}
