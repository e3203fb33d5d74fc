// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"
)

// GenerateCUE renders cfg as a config.cue document suitable for writing
// to the config directory.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// sandshell configuration file\n")
	sb.WriteString("// Validated against the embedded #Config schema on load.\n\n")

	sb.WriteString(fmt.Sprintf("history_size: %d\n", cfg.HistorySize))

	sb.WriteString("\nui: {\n")
	sb.WriteString(fmt.Sprintf("\tcolor_scheme: %q\n", cfg.UI.ColorScheme))
	sb.WriteString(fmt.Sprintf("\tverbose:      %v\n", cfg.UI.Verbose))
	sb.WriteString(fmt.Sprintf("\tprompt:       %q\n", cfg.UI.Prompt))
	sb.WriteString("}\n")

	sb.WriteString("\nsnapshot: {\n")
	sb.WriteString(fmt.Sprintf("\tauto_load: %v\n", cfg.Snapshot.AutoLoad))
	if cfg.Snapshot.Path != "" {
		sb.WriteString(fmt.Sprintf("\tpath: %q\n", cfg.Snapshot.Path))
	}
	sb.WriteString("}\n")

	sb.WriteString("\nremote: mode: " + fmt.Sprintf("%q", cfg.Remote.Mode) + "\n")

	sb.WriteString("\nssh: {\n")
	sb.WriteString(fmt.Sprintf("\taddr: %q\n", cfg.SSH.Addr))
	if cfg.SSH.HostKeyPath != "" {
		sb.WriteString(fmt.Sprintf("\thost_key_path: %q\n", cfg.SSH.HostKeyPath))
	}
	sb.WriteString("}\n")

	return sb.String()
}
