package main

import (
	"github.com/Irfan-Firosh/Yapply/internal/config"
	"github.com/Irfan-Firosh/Yapply/internal/handler"
	"github.com/Irfan-Firosh/Yapply/internal/logger"
	"github.com/Irfan-Firosh/Yapply/internal/openai"
	"github.com/Irfan-Firosh/Yapply/internal/repository"
	"github.com/Irfan-Firosh/Yapply/internal/supabase"
	"github.com/Irfan-Firosh/Yapply/internal/vapi"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger     *zap.Logger
	Config     *config.Config
	Supabase   *supabase.Client
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	db := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key)
	vapiClient := vapi.NewClient(cfg.Vapi.APIKey, cfg.Vapi.PhoneNumberID, vapi.WithTimeout(cfg.Vapi.Timeout))
	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	repo := repository.NewRepository(db)

	h := &handler.Handler{
		Logger:   log,
		Repo:     repo,
		Supabase: db,
		Vapi:     vapiClient,
		OpenAI:   openaiClient,
		Config:   cfg,
	}

	app := &application{
		Logger:     log,
		Config:     cfg,
		Supabase:   db,
		Repository: repo,
		Handler:    h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
