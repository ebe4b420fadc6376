/*
Copyright © 2025 MAROUANE BOUFAROUJ <boufaroujmarouan@gmail.com>
*/
package main

import "github.com/chibuka/so-importer/cmd"

func main() {
	cmd.Execute()
}
