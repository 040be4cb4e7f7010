package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tokenhub/internal/bootstrap"
	"tokenhub/internal/platform/config"
	apperrors "tokenhub/internal/platform/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "tokenhub",
		Short:         "Health token scanning and allowance hub",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "data directory")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newScanCmd(&dataPath))
	root.AddCommand(newTagCmd(&dataPath))
	root.AddCommand(newHistoryCmd(&dataPath))
	root.AddCommand(newClearCmd(&dataPath))
	root.AddCommand(newAllowanceCmd(&dataPath))
	root.AddCommand(newHealthCmd(&dataPath))
	root.AddCommand(newFamilyCmd(&dataPath))
	root.AddCommand(newHubCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// currentSpace resolves the joined family space name; no space means scans
// stay local.
func currentSpace(ctx context.Context, app *bootstrap.App) (string, error) {
	space, err := app.FamilyCLI.Current(ctx)
	if errors.Is(err, apperrors.ErrNoFamilySpace) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return space.Name, nil
}

func newTUICmd(dataPath *string) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the tokenhub dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(userID, app)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "default", "user id")
	return cmd
}

func newScanCmd(dataPath *string) *cobra.Command {
	var userID, file, hexMessage, family string
	var stepsLimit, sleepLimit int
	var local bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Process a captured tag message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := readMessage(file, hexMessage)
			if err != nil {
				return err
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := context.Background()
			space := family
			if space == "" && !local {
				space, err = currentSpace(ctx, app)
				if err != nil {
					return err
				}
			}
			if local {
				space = ""
			}

			out, err := app.ScanCLI.ScanMessage(ctx, userID, space, message, stepsLimit, sleepLimit)
			if err != nil {
				return err
			}
			if !out.Found {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No token found on this tag.")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "default", "user id")
	cmd.Flags().StringVar(&file, "file", "", "path to a binary NDEF message")
	cmd.Flags().StringVar(&hexMessage, "hex", "", "NDEF message as hex")
	cmd.Flags().StringVar(&family, "family", "", "mirror into this family space instead of the joined one")
	cmd.Flags().BoolVar(&local, "local", false, "do not mirror this scan")
	cmd.Flags().IntVar(&stepsLimit, "steps-limit", -1, "override the physical activity limit (-1 = from health data)")
	cmd.Flags().IntVar(&sleepLimit, "sleep-limit", -1, "override the sleep limit (-1 = from health data)")
	return cmd
}

func readMessage(file, hexMessage string) ([]byte, error) {
	switch {
	case file != "" && hexMessage != "":
		return nil, fmt.Errorf("use either --file or --hex, not both")
	case file != "":
		payload, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read tag message: %w", err)
		}
		return payload, nil
	case hexMessage != "":
		payload, err := hex.DecodeString(strings.TrimSpace(hexMessage))
		if err != nil {
			return nil, fmt.Errorf("decode hex message: %w", err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("a tag message is required: pass --file or --hex")
	}
}

func newTagCmd(dataPath *string) *cobra.Command {
	tag := &cobra.Command{Use: "tag", Short: "Tag authoring helpers"}

	var asText bool
	var outFile string
	encodeCmd := &cobra.Command{
		Use:   "encode <token-json>",
		Short: "Encode a token payload as an NDEF message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			message, err := app.ScanCLI.EncodeToken(args[0], asText)
			if err != nil {
				return err
			}
			if outFile != "" {
				if err := os.WriteFile(outFile, message, 0o644); err != nil {
					return fmt.Errorf("write tag message: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(message), outFile)
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(message))
			return nil
		},
	}
	encodeCmd.Flags().BoolVar(&asText, "text", false, "encode as a well-known text record instead of application/json")
	encodeCmd.Flags().StringVar(&outFile, "out", "", "write the binary message to this file")

	tag.AddCommand(encodeCmd)
	return tag
}

func newHistoryCmd(dataPath *string) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded scans, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			records, err := app.LedgerCLI.History(context.Background(), userID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no scans recorded")
				return nil
			}
			for _, record := range records {
				when := time.UnixMilli(record.Timestamp).Format("2006-01-02 15:04")
				if record.Type == "mood" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tmood\t%s\n", when, record.Mood)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", when, record.Category, record.Amount)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "default", "user id")
	return cmd
}

func newClearCmd(dataPath *string) *cobra.Command {
	var userID string
	var all, today bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove recorded scans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := context.Background()
			if all {
				if err := app.LedgerCLI.ClearAll(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleared all scans")
				return nil
			}

			space, err := currentSpace(ctx, app)
			if err != nil {
				return err
			}
			if today {
				if err := app.LedgerCLI.ClearToday(ctx, userID, space); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared today's scans for %s\n", userID)
				return nil
			}
			if err := app.LedgerCLI.ClearUser(ctx, userID, space); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared all scans for %s\n", userID)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "default", "user id")
	cmd.Flags().BoolVar(&all, "all", false, "clear every user's scans (local only)")
	cmd.Flags().BoolVar(&today, "today", false, "clear only today's scans for the user")
	return cmd
}

func newAllowanceCmd(dataPath *string) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "allowance",
		Short: "Show today's token allowance and usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			summary, err := app.AllowanceCLI.Summary(context.Background(), userID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "physical activity: %d of %d remaining (used %d)\n",
				summary.StepsRemaining, summary.Allowance.Steps, summary.StepsUsed)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sleep: %d of %d remaining (used %d)\n",
				summary.SleepRemaining, summary.Allowance.Sleep, summary.SleepUsed)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "default", "user id")
	return cmd
}

func newHealthCmd(dataPath *string) *cobra.Command {
	health := &cobra.Command{Use: "health", Short: "Manage today's health snapshot"}

	var userID string
	var steps, sleepMinutes int
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Record today's health metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.AllowanceCLI.SetToday(context.Background(), userID, steps, sleepMinutes); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d steps and %d sleep minutes for %s\n", steps, sleepMinutes, userID)
			return nil
		},
	}
	setCmd.Flags().StringVar(&userID, "user", "default", "user id")
	setCmd.Flags().IntVar(&steps, "steps", 0, "steps walked today")
	setCmd.Flags().IntVar(&sleepMinutes, "sleep-minutes", 0, "minutes slept last night")

	var showUser string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored health snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			snapshot, err := app.AllowanceCLI.Snapshot(context.Background(), showUser)
			if errors.Is(err, apperrors.ErrNoHealthSnapshot) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no health snapshot recorded")
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps, %d sleep minutes\n", snapshot.Date, snapshot.Steps, snapshot.SleepMinutes)
			return nil
		},
	}
	showCmd.Flags().StringVar(&showUser, "user", "default", "user id")

	health.AddCommand(setCmd, showCmd)
	return health
}

func newFamilyCmd(dataPath *string) *cobra.Command {
	family := &cobra.Command{Use: "family", Short: "Manage the shared family space"}

	var hubAddr string
	joinCmd := &cobra.Command{
		Use:   "join <name>",
		Short: "Join a family space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			space, err := app.FamilyCLI.Join(context.Background(), args[0], hubAddr)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "joined family space %s\n", space.Name)
			return nil
		},
	}
	joinCmd.Flags().StringVar(&hubAddr, "hub", "", "family hub address, host:port")

	family.AddCommand(joinCmd)
	family.AddCommand(&cobra.Command{
		Use:   "leave",
		Short: "Leave the joined family space",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.FamilyCLI.Leave(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "left the family space")
			return nil
		},
	})
	family.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the joined family space",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			space, err := app.FamilyCLI.Current(context.Background())
			if errors.Is(err, apperrors.ErrNoFamilySpace) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not in a family space")
				return nil
			}
			if err != nil {
				return err
			}
			joined := time.UnixMilli(space.JoinedAt).Format("2006-01-02")
			if space.HubAddr != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (hub %s, joined %s)\n", space.Name, space.HubAddr, joined)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (joined %s)\n", space.Name, joined)
			return nil
		},
	})
	return family
}

func newHubCmd(dataPath *string) *cobra.Command {
	hub := &cobra.Command{Use: "hub", Short: "Family hub operations"}

	var addr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the shared family hub",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.MirrorCLI.Serve(context.Background(), addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7420", "listen address")

	var space, userID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List mirrored scans on the hub",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := context.Background()
			if space == "" {
				space, err = currentSpace(ctx, app)
				if err != nil {
					return err
				}
			}
			docs, err := app.MirrorCLI.List(ctx, space, userID)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no mirrored scans")
				return nil
			}
			for _, doc := range docs {
				when := time.UnixMilli(doc.Timestamp).Format("2006-01-02 15:04")
				if doc.Type == "mood" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tmood\t%s\n", when, doc.UserID, doc.Mood)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", when, doc.UserID, doc.Category, doc.Amount)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&space, "space", "", "family space (defaults to the joined one)")
	listCmd.Flags().StringVar(&userID, "user", "", "filter by user id")

	hub.AddCommand(serveCmd, listCmd)
	return hub
}
