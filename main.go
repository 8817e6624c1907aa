// SPDX-License-Identifier: MPL-2.0

package main

import cmd "envdoctor-cli/cmd/envdoctor"

func main() {
	cmd.Execute()
}
