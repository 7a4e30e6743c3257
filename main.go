package main

import (
	"context"
	"log"

	"course-payment-service/config"
	"course-payment-service/controllers"
	"course-payment-service/database"
	"course-payment-service/middleware"
	"course-payment-service/models"
	"course-payment-service/repository"
	"course-payment-service/routes"
	"course-payment-service/sender"
	"course-payment-service/services"
	"course-payment-service/wayforpay"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[PaymentService] failed to load config: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("[PaymentService] failed to initialize logger: ", err)
	}
	defer logger.Sync()

	db, err := database.ConnectPostgres(cfg, logger,
		&models.Order{}, &models.PricingTier{}, &models.EmailTemplate{},
	)
	if err != nil {
		logger.Fatal("Failed to connect to DB", zap.Error(err))
	}

	signer, err := wayforpay.NewSigner(cfg.MerchantSecret)
	if err != nil {
		logger.Fatal("Signature engine init failed", zap.Error(err))
	}

	pricingRepo := repository.NewGormPricingRepository(db)
	tiers, err := pricingRepo.LoadTiers(context.Background())
	if err != nil || len(tiers) == 0 {
		logger.Warn("pricing_tiers table not readable or empty, using built-in defaults", zap.Error(err))
		tiers = models.DefaultPricingTiers()
	}

	orderRepo := repository.NewGormOrderRepository(db)
	templateRepo := repository.NewGormEmailTemplateRepository(db)

	notifier := services.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, logger)

	var mailer services.ConfirmationMailer
	if smtpSender, smtpErr := sender.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass); smtpErr != nil {
		logger.Warn("SMTP not configured, confirmation emails disabled", zap.Error(smtpErr))
	} else {
		mailer = services.NewTemplatedMailer(templateRepo, smtpSender, logger)
	}

	purchaseSvc := services.NewPurchaseService(cfg, signer, tiers, logger)
	callbackSvc := services.NewCallbackService(signer, orderRepo, notifier, mailer, tiers, logger)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	pc := &controllers.PaymentController{
		Purchases: purchaseSvc,
		Callbacks: callbackSvc,
		Logger:    logger,
	}
	routes.RegisterPaymentRoutes(r, pc)

	logger.Info("Payment service running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
