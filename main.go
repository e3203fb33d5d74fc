// SPDX-License-Identifier: MPL-2.0

package main

import cmd "sandshell/cmd/sandshell"

func main() {
	cmd.Execute()
}
