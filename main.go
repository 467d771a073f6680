/*
readmegen

	https://github.com/henvic/readmegen

*/

package main

import "github.com/henvic/readmegen/cmd"

func main() {
	cmd.Execute()
}
