// SPDX-License-Identifier: MPL-2.0

package builtins

import "strings"

// splitAttachedValues rewrites arguments of the form "-U3" into the
// two-token form "-U 3" that the flag package understands. Only the
// single-letter flags listed in valueFlags are rewritten; everything
// else passes through untouched.
func splitAttachedValues(args []string, valueFlags string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' &&
			strings.ContainsRune(valueFlags, rune(arg[1])) {
			out = append(out, arg[:2], arg[2:])
			continue
		}
		out = append(out, arg)
	}
	return out
}
