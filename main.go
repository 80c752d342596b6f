package main

import "minhafinanca/cmd"

func main() {
	cmd.Execute()
}
