package main

import "catalog-importer/cmd"

func main() {
	cmd.Execute()
}
