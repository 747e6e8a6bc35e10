// Command weft runs terminal applications built from weft components.
package main

import "github.com/go-drift/weft/cmd/weft/cmd"

func main() {
	cmd.Execute()
}
