package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/northlight-studio/website/modules/contact"
	"github.com/northlight-studio/website/modules/content"
	"github.com/northlight-studio/website/modules/web"
	"github.com/northlight-studio/website/pkg/config"
	"github.com/northlight-studio/website/pkg/email"
	"github.com/northlight-studio/website/pkg/httpserver"
	"github.com/northlight-studio/website/pkg/logger"
	"github.com/northlight-studio/website/pkg/requestid"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"website"`
}

func main() {
	var appCfg appConfig
	config.MustLoad(&appCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), appCfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg appConfig, log *slog.Logger) error {
	repo, err := content.NewRepository(content.FS)
	if err != nil {
		return err
	}

	var emailCfg email.Config
	config.MustLoad(&emailCfg)
	sender, err := email.NewFromConfig(emailCfg)
	if err != nil {
		return err
	}

	var contactCfg contact.Config
	config.MustLoad(&contactCfg)
	contactSvc := contact.NewService(contactCfg, sender, log)

	handler, err := web.NewHandler(repo, contactSvc, log)
	if err != nil {
		return err
	}
	router := web.NewRouter(handler, log)

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)
	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))

	log.Info("starting server",
		slog.String("addr", srvCfg.Addr),
		slog.String("env", appCfg.Env),
	)
	return srv.Run(ctx, router)
}
