package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"chase-cover/config"
	"chase-cover/internal/api/telegram"
	"chase-cover/internal/api/web"
	"chase-cover/internal/container"
	"chase-cover/internal/infrastructure/cad"
	"chase-cover/internal/infrastructure/mail"
	"chase-cover/internal/infrastructure/photo"
	"chase-cover/internal/infrastructure/sketch"
	"chase-cover/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Собираем инфраструктуру
	appContainer := container.New(container.Deps{
		Packages:   storage.NewMemoryPackageRepository(storage.DefaultPackageLimit),
		Drafts:     storage.NewMemoryDraftRepository(),
		Sketch:     sketch.NewRasterRenderer(),
		Preview:    sketch.NewSVGRenderer(),
		Outline:    cad.NewDXFEmitter(),
		Normalizer: photo.NewNormalizer(cfg.PhotoMaxSide),
		Inspector:  photo.NewInspector(),
		Mailer: mail.NewSMTPMailer(mail.Settings{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SenderEmail,
			Password: cfg.SenderPassword,
		}),
		EncodeSnapshot: storage.EncodeSnapshot,
		ShopEmail:      cfg.ShopEmail,
	})

	if !cfg.MailConfigured() {
		log.Println("SENDER_EMAIL/SENDER_PASSWORD are not set, sending to the shop is disabled")
	}

	// Бот запускается только при заданном токене
	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
		if err != nil {
			log.Fatalf("Failed to create bot: %v", err)
		}
		go func() {
			log.Println("Bot is running...")
			if err := bot.Run(ctx); err != nil {
				log.Printf("Bot error: %v", err)
			}
		}()
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           web.NewHandler(appContainer).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
