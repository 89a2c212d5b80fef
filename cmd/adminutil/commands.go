package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"agencia_maker/internal/adapter/persistence/kvstore"
	"agencia_maker/internal/adapter/persistence/repository"
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/infrastructure/config"
	"agencia_maker/internal/infrastructure/logging"
	"agencia_maker/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize empty collections with the demo catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRepositories(cmd.Context(), func(repos *repository.Repositories, _ *zap.Logger) error {
			if err := repos.Initialize(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "store ready: %d users, %d print jobs\n",
				len(repos.Users.List(cmd.Context())), len(repos.PrintJobs.List(cmd.Context())))
			return nil
		})
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRepositories(cmd.Context(), func(repos *repository.Repositories, _ *zap.Logger) error {
			return printUsers(cmd.OutOrStdout(), repos.Users.List(cmd.Context()))
		})
	},
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List print jobs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRepositories(cmd.Context(), func(repos *repository.Repositories, _ *zap.Logger) error {
			return printJobs(cmd.OutOrStdout(), repos.PrintJobs.List(cmd.Context()))
		})
	},
}

var promoteCertifiedCmd = &cobra.Command{
	Use:   "promote-certified <user-id>",
	Short: "Grant the certified badge to a maker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepositories(cmd.Context(), func(repos *repository.Repositories, logger *zap.Logger) error {
			user, err := usecase.NewUserUseCase(repos.Users, logger).PromoteCertified(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now certified\n", user.Name, user.ID)
			return nil
		})
	},
}

func withRepositories(ctx context.Context, fn func(*repository.Repositories, *zap.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, closeStore, err := kvstore.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	return fn(repository.NewRepositories(store, logger, time.Now), logger)
}

func printUsers(w io.Writer, users []entities.User) error {
	if outputJSON {
		return writeJSON(w, users)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPRIMARY ROLE\tCERTIFIED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.PrimaryRole(), u.IsCertified)
	}
	return tw.Flush()
}

func printJobs(w io.Writer, jobs []entities.PrintJob) error {
	if outputJSON {
		return writeJSON(w, jobs)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPAYMENT\tPRICE\tFEE")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%.2f\n", j.ID, truncate(j.Title, 40), j.Status, j.PaymentStatus, j.Price, j.ServiceFee)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
