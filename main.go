package main

import "raildiff/cmd"

func main() {
	cmd.Execute()
}
