package main

import "github.com/soracht/FocusPulse/cmd/fpctl/arg"

func main() {
	arg.Execute()
}
