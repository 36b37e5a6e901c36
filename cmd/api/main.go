package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soa-bango-backend/config"
	v1 "soa-bango-backend/internal/delivery/http/v1"
	"soa-bango-backend/internal/usecase"
	"soa-bango-backend/pkg/logger"
	"soa-bango-backend/pkg/mailer"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogFile)
	logger.Log.Info("Starting Soa Bango backend", "port", cfg.Port)

	// 3. Setup Mail Sender
	// A single shared sender, injected into every usecase. Missing
	// credentials only warn here; dispatch fails at call time.
	var sender mailer.Sender
	switch cfg.MailProvider {
	case "resend":
		s := mailer.NewResendSender(cfg.ResendAPIKey, cfg.MailFromEmail, cfg.MailFromName)
		if !s.Configured() {
			logger.Log.Warn("Resend sender not fully configured - form submissions will fail to dispatch")
		} else {
			logger.Log.Info("Serveur email prêt à envoyer des messages", "provider", "resend")
		}
		sender = s
	default:
		s := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFromEmail, cfg.MailFromName)
		switch {
		case !s.Configured():
			logger.Log.Warn("SMTP sender not fully configured - form submissions will fail to dispatch")
		default:
			verifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.Verify(verifyCtx); err != nil {
				logger.Log.Warn("Erreur de configuration email", "error", err)
			} else {
				logger.Log.Info("Serveur email prêt à envoyer des messages", "provider", "smtp", "host", cfg.SMTPHost)
			}
			cancel()
		}
		sender = s
	}

	// 4. Setup UseCases
	identity := usecase.Identity{
		FromEmail:  cfg.MailFromEmail,
		FromName:   cfg.MailFromName,
		OwnerEmail: cfg.OwnerEmail,
	}
	contactUC := usecase.NewContactUsecase(sender, identity)
	orderUC := usecase.NewOrderUsecase(sender, identity)
	newsletterUC := usecase.NewNewsletterUsecase(sender, identity)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    contactUC,
		OrderUC:      orderUC,
		NewsletterUC: newsletterUC,
		Config:       cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Serveur démarré",
			"url", "http://localhost:"+cfg.Port,
			"endpoints", []string{
				"GET  /api/health",
				"POST /api/contact",
				"POST /api/order",
				"POST /api/newsletter",
			})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
