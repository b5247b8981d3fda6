// SPDX-License-Identifier: MPL-2.0

package main

import cmd "plugscan-cli/cmd/plugscan"

func main() {
	cmd.Execute()
}
