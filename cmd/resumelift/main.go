package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/resumelift/resumelift/internal/interfaces/cli/migrate"
	"github.com/resumelift/resumelift/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "resumelift",
		Short: "ResumeLift - AI-assisted CV rewriting service",
		Long:  `ResumeLift rewrites CVs for a target role, metered by subscription plan quotas.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
