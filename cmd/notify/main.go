// Command notify sends a live-session invite to every registered email, the
// same broadcast POST /api/notify-live-session performs.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"outreach/internal/adapter/repo"
	"outreach/internal/db"
	"outreach/internal/infra"
	"outreach/internal/notifications"
	"outreach/internal/providers/mail"
)

func main() {
	var (
		titleFlag   string
		dateFlag    string
		timeFlag    string
		linkFlag    string
		timeoutFlag time.Duration
	)

	flag.StringVar(&titleFlag, "title", "", "session topic")
	flag.StringVar(&dateFlag, "date", "", "session date as shown to learners")
	flag.StringVar(&timeFlag, "time", "", "session time as shown to learners")
	flag.StringVar(&linkFlag, "link", "", "join link")
	flag.DurationVar(&timeoutFlag, "timeout", 10*time.Minute, "overall deadline for the broadcast")
	flag.Parse()

	session := notifications.LiveSession{
		Title: strings.TrimSpace(titleFlag),
		Date:  strings.TrimSpace(dateFlag),
		Time:  strings.TrimSpace(timeFlag),
		Link:  strings.TrimSpace(linkFlag),
	}
	if session.Title == "" || session.Date == "" || session.Time == "" || session.Link == "" {
		exitWithError(errors.New("-title, -date, -time and -link are all required"))
	}

	_ = godotenv.Load()
	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	logger := infra.NewLogger(cfg.AppEnv).With().Str("cmd", "notify").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	database, err := infra.NewDatabase(ctx, cfg)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer database.Close()
	if err := db.Migrate(ctx, database, logger); err != nil {
		exitWithError(fmt.Errorf("failed to initialize schema: %w", err))
	}

	relay, err := mail.New(cfg.Mail, logger)
	if err != nil {
		exitWithError(err)
	}

	runner := infra.NewSQLRunner(database.DB, database.Dialect, logger)
	broadcaster := notifications.Broadcaster{
		Relay:       relay,
		Concurrency: cfg.NotifyConcurrency,
		Logger:      logger,
	}
	res, err := broadcaster.InviteRegistered(ctx, repo.NewLiveSessionRepository(runner),
		notifications.Templates{Admin: cfg.Mail.AdminAddress}, session)
	if errors.Is(err, notifications.ErrNoRecipients) {
		fmt.Println("No registered users found.")
		return
	}
	if err != nil {
		exitWithError(err)
	}

	fmt.Println(notifications.Summary(res))
	if len(res.Errors) > 0 {
		out, _ := json.MarshalIndent(res.Errors, "", "  ")
		fmt.Println(string(out))
		os.Exit(2)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
