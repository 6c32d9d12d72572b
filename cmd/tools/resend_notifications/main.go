// Command resend_notifications re-dispatches job suggestions whose in-app
// notification or requested email was not delivered. It only runs when an
// operator invokes it; nothing retries deliveries automatically.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"talent-bank/internal/app"
	"talent-bank/internal/config"
	"talent-bank/pkg/logging"
)

const (
	promptYes = "Yes"
	promptNo  = "No"
)

var (
	dryRun bool
	limit  int
	yes    bool
)

var rootCmd = &cobra.Command{
	Use:   "resend_notifications",
	Short: "Retry failed suggestion notifications",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", true, "If true, only list suggestions that would be resent")
	rootCmd.Flags().IntVar(&limit, "limit", 200, "Max number of suggestions to process in one run")
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if limit < 1 {
		return fmt.Errorf("--limit must be positive")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	application, cleanup, err := app.InitializeApp(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer cleanup()

	pending, err := application.Suggestions.Undelivered(ctx, limit)
	if err != nil {
		return err
	}
	log.Info("found undelivered suggestions", "count", len(pending), "limit", limit)

	for _, sg := range pending {
		fmt.Printf("%s candidate=%d job=%d notification_sent=%t email_requested=%t email_sent=%t\n",
			sg.ID, sg.CandidateID, sg.JobID, sg.NotificationSent, sg.EmailRequested, sg.EmailSent)
	}
	if len(pending) == 0 || dryRun {
		if dryRun {
			log.Info("dry run, nothing resent")
		}
		return nil
	}

	if !yes {
		prompt := promptui.Select{
			Label: fmt.Sprintf("Resend notifications for %d suggestions?", len(pending)),
			Items: []string{promptYes, promptNo},
		}
		_, answer, err := prompt.Run()
		if err != nil {
			return err
		}
		if answer != promptYes {
			log.Info("aborted by operator")
			return nil
		}
	}

	var delivered, failed int
	for _, sg := range pending {
		res, err := application.Suggestions.Redeliver(ctx, sg)
		if err != nil {
			log.Error("redeliver", "suggestion_id", sg.ID.String(), "err", err)
			failed++
			continue
		}
		if res.NotificationSent && (!res.EmailRequested || res.EmailSent) {
			delivered++
		} else {
			failed++
		}
	}

	log.Info("resend finished", "delivered", delivered, "still_failing", failed)
	return nil
}
