package main

import (
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/joho/godotenv"

	"github.com/tolko/rp-reports/internal/conf"
	"github.com/tolko/rp-reports/internal/data"
	"github.com/tolko/rp-reports/internal/logger"
	"github.com/tolko/rp-reports/internal/server"
	"github.com/tolko/rp-reports/internal/service"
	"github.com/tolko/rp-reports/internal/usecase"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the service name.
	Name string = "rp-reports"
	// Version is the service version.
	Version string
	// flagconf is the config file path.
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()
	// .env is optional; it feeds the ${...} placeholders in config.yaml.
	_ = godotenv.Load()

	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}
	if bc.Data != nil && bc.Data.Database != nil {
		bc.Data.Database.Source = os.ExpandEnv(bc.Data.Database.Source)
	}

	base, err := logger.New(bc.Log)
	if err != nil {
		panic(err)
	}
	l := log.With(base,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	app, cleanup, err := initApp(&bc, l)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		panic(err)
	}
}

func initApp(bc *conf.Bootstrap, l log.Logger) (*kratos.App, func(), error) {
	d, cleanup, err := data.NewData(bc.Data, l)
	if err != nil {
		return nil, nil, err
	}

	clientRepo := data.NewClientRepo(d, l)
	reportRepo := data.NewReportRepo(d, l)
	mentionRepo := data.NewMentionRepo(d, l)

	ucReport := usecase.NewReportUseCase(reportRepo, mentionRepo, bc.Report, l)
	ucMention := usecase.NewMentionUseCase(mentionRepo, reportRepo, l)
	ucClient := usecase.NewClientUseCase(clientRepo, l)

	svc := service.NewDashboardService(ucReport, ucMention, ucClient, l)
	hs := server.NewHTTPServer(bc.Server, svc, l)

	app := kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(l),
		kratos.Server(hs),
	)
	return app, cleanup, nil
}
