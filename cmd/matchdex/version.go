package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags, with
// debug.ReadBuildInfo as the fallback for plain "go install" builds.
var (
	version = ""
	commit  = ""
	date    = ""
)

// getVersion returns the version string shown by the root command and the
// version subcommand.
func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// buildSetting looks up one key in the binary's embedded build settings.
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of matchdex.`,
		Run: func(cmd *cobra.Command, _ []string) {
			rev := commit
			if rev == "" {
				rev = buildSetting("vcs.revision")
				if len(rev) > 7 {
					rev = rev[:7]
				}
			}
			if rev == "" {
				rev = "unknown"
			}

			built := date
			if built == "" {
				built = buildSetting("vcs.time")
			}
			if built == "" {
				built = "unknown"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "matchdex version %s\n", getVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", rev)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", built)
		},
	}
}
