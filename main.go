package main

import "github.com/meysamhadeli/decomment/cmd"

func main() {
	cmd.Execute()
}
