// Command seed loads a YAML fixture of clients and mentions into the
// store through the same use cases the server runs, so seeded data obeys
// the creation-time validation.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tolko/rp-reports/internal/conf"
	"github.com/tolko/rp-reports/internal/data"
	"github.com/tolko/rp-reports/internal/logger"
	"github.com/tolko/rp-reports/internal/usecase"
)

var (
	flagconf    string
	flagfixture string
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path")
	flag.StringVar(&flagfixture, "fixture", "configs/seed.yaml", "fixture path")
}

type mentionSeed struct {
	PublicationDate string `yaml:"publication_date"`
	MediaName       string `yaml:"media_name"`
	Reporter        string `yaml:"reporter"`
	Title           string `yaml:"title"`
	KeyMessage      string `yaml:"key_message"`
	Reach           string `yaml:"reach"`
	AVEValue        string `yaml:"ave_value"`
	Tier            string `yaml:"tier"`
	Sentiment       string `yaml:"sentiment"`
	MediaType       string `yaml:"media_type"`
}

type clientSeed struct {
	Name     string        `yaml:"name"`
	Mentions []mentionSeed `yaml:"mentions"`
}

type fixture struct {
	Clients []clientSeed `yaml:"clients"`
}

func main() {
	flag.Parse()
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
	l := log.NewHelper(base)

	raw, err := os.ReadFile(flagfixture)
	if err != nil {
		l.Fatalf("read fixture: %v", err)
	}
	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		l.Fatalf("parse fixture: %v", err)
	}

	d, cleanup, err := data.NewData(bc.Data, base)
	if err != nil {
		l.Fatalf("open store: %v", err)
	}
	defer cleanup()

	clientRepo := data.NewClientRepo(d, base)
	reportRepo := data.NewReportRepo(d, base)
	mentionRepo := data.NewMentionRepo(d, base)
	ucClient := usecase.NewClientUseCase(clientRepo, base)
	ucMention := usecase.NewMentionUseCase(mentionRepo, reportRepo, base)

	ctx := context.Background()
	clients, mentions := 0, 0
	for _, cs := range fx.Clients {
		clientID, err := ucClient.Create(ctx, cs.Name)
		if err != nil {
			l.Fatalf("create client %q: %v", cs.Name, err)
		}
		clients++

		for _, ms := range cs.Mentions {
			_, err := ucMention.Create(ctx, usecase.MentionInput{
				ClientID:        clientID,
				PublicationDate: ms.PublicationDate,
				MediaName:       ms.MediaName,
				Reporter:        ms.Reporter,
				Title:           ms.Title,
				KeyMessage:      ms.KeyMessage,
				Reach:           ms.Reach,
				AVEValue:        ms.AVEValue,
				Tier:            ms.Tier,
				Sentiment:       ms.Sentiment,
				MediaType:       ms.MediaType,
			})
			if err != nil {
				l.Fatalf("create mention %q for %q: %v", ms.Title, cs.Name, err)
			}
			mentions++
		}
	}

	l.Infof("seeded %d clients and %d mentions", clients, mentions)
}
