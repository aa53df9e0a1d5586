// Command relkit releases a multi-gem suite from its checkout root, driven
// by the suite's release.yml manifest.
package main

import "fastcat.org/go/relkit/cmd"

func main() {
	cmd.Main()
}
