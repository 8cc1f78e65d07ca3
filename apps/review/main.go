package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/trezcool/masomo-review/core"
	"github.com/trezcool/masomo-review/core/review"
	emailsvc "github.com/trezcool/masomo-review/services/email"
	logsvc "github.com/trezcool/masomo-review/services/logger"
	dummydb "github.com/trezcool/masomo-review/storage/database/dummy"
)

var isTerminalFunc = term.IsTerminal // mockable

// the session always exits with status 0
func main() {
	defer os.Exit(0)

	conf, err := core.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return
	}

	std := logsvc.NewStdLogger("REVIEW", os.Stderr, conf)
	logger := logsvc.NewRollbarLogger(std, conf)
	defer logger.Close()

	// set up DB & registry
	db, err := dummydb.Open()
	if err != nil {
		logger.Error(fmt.Sprintf("opening database: %v", err), err)
		return
	}
	reg := review.NewRegistry(dummydb.NewReviewRepository(db), newEmailService(conf, logger), logger)

	// start session
	sess := newSession(reg, os.Stdin, os.Stdout, logger, isTerminalFunc(int(os.Stdout.Fd())))
	if err := sess.run(context.Background()); err != nil {
		logger.Error(fmt.Sprintf("session: %v", err), err)
	}
}

// newEmailService returns nil when notifications are disabled.
func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if !conf.Notifications {
		return nil
	}
	switch conf.EmailBackend {
	case "sendgrid":
		if conf.SendgridApiKey == "" {
			logger.Warn("emailBackend is sendgrid but sendgridApiKey is not set; falling back to console")
			return emailsvc.NewConsoleService(conf, logger)
		}
		return emailsvc.NewSendgridService(conf, logger)
	default:
		return emailsvc.NewConsoleService(conf, logger)
	}
}
