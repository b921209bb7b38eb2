package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"profile_validator/internal/config"
	"profile_validator/internal/domain/service/profile"
	"profile_validator/internal/infrastructure/oracle"
	"profile_validator/internal/profilecheck"
	"profile_validator/pkg/contextx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := newRootCommand(os.Stdout).ExecuteContext(ctx)

	switch {
	case errors.Is(err, profilecheck.ErrInvalidProfiles):
		os.Exit(1) //nolint:gocritic
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2) //nolint:mnd
	}
}

type checkOptions struct {
	json    bool
	ai      bool
	verbose bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "profilecheck",
		Short:         "Score employee profiles offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCommand(out))

	return root
}

func newCheckCommand(out io.Writer) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check <glob>...",
		Short: "Validate the profiles in YAML files matching the given patterns",
		Long: `Scores every profile document (name, email, phone, bio, skills and an
optional password) found in files matching the patterns. Patterns support
** (profiles/**/*.yaml). Exits with code 1 when any profile is invalid.

With --ai the bio is also reviewed by the text quality oracle configured
through AI_PROVIDER and the related environment variables.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), out, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print reports as JSON")
	cmd.Flags().BoolVar(&opts.ai, "ai", false, "Review bios with the configured text quality oracle")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log oracle calls to stderr")

	return cmd
}

func runCheck(ctx context.Context, out io.Writer, patterns []string, opts checkOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	ctx = contextx.WithLogger(ctx, slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))

	service := profile.NewService(oracle.New(cfg.Oracle))

	reports, err := profilecheck.NewChecker(service).
		WithAI(opts.ai).
		Check(ctx, patterns)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	if opts.json {
		err = profilecheck.RenderJSON(out, reports)
	} else {
		err = profilecheck.RenderText(out, reports)
	}

	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for _, r := range reports {
		if !r.Valid() {
			return profilecheck.ErrInvalidProfiles
		}
	}

	return nil
}
