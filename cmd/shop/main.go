package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shopstream/internal/catalog"
	"shopstream/internal/config"
	"shopstream/internal/infra/ai"
	"shopstream/internal/infra/db"
	infraRepo "shopstream/internal/infra/repository"
	"shopstream/internal/infra/ui"
	"shopstream/internal/usecase"
	"shopstream/internal/usecase/auth"
	"shopstream/internal/validator"
	"shopstream/pkg/logger"
)

func main() {
	// .env は無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(logger.Options{
		Service: "shopstream",
		Env:     cfg.GoEnv,
		Level:   cfg.LogLevel,
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// プロファイルストア（localStorage相当）
	gormDB, err := db.Connect(cfg.StoragePath)
	if err != nil {
		panic(err)
	}
	blobs, err := infraRepo.NewBlobGormStore(gormDB)
	if err != nil {
		panic(err)
	}

	// 静的データ（カタログ・認証ディレクトリ）
	productRepo := infraRepo.NewStaticProductRepository(catalog.Products())

	hasher := auth.NewBcryptPasswordHasher(0)
	userRepo, err := infraRepo.NewStaticUserRepository(catalog.Users(), hasher)
	if err != nil {
		panic(err)
	}

	// usecaseに渡す部品
	idGen := &auth.UUIDGenerator{}
	clock := &auth.SystemClock{}
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL, idGen)

	notifier := ui.NewConsoleNotifier(log)
	nav := ui.NewConsoleNavigator(log)
	v := validator.NewStorefrontValidator()

	// Usecase生成
	sessionUC := usecase.NewSessionUsecase(userRepo, blobs, verifier, issuer, clock, v, nav, log, cfg.LoginDelay)
	cartUC := usecase.NewCartUsecase(blobs, notifier, log)
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(sessionUC, cartUC, notifier, nav)

	var recommendUC *usecase.RecommendationUsecase
	if cfg.GeminiAPIKey != "" {
		rec, err := ai.NewGeminiRecommender(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("recommendations disabled", zap.Error(err))
		} else {
			recommendUC = usecase.NewRecommendationUsecase(rec, v, log)
		}
	}

	ctx := context.Background()

	// 起動時に1回だけhydrate。以降の操作はこの完了を前提にできる。
	if err := sessionUC.Hydrate(ctx); err != nil {
		log.Warn("session hydrate failed", zap.Error(err))
	}
	if err := cartUC.Hydrate(ctx); err != nil {
		log.Warn("cart hydrate failed", zap.Error(err))
	}

	runShell(ctx, os.Stdin, os.Stdout, sessionUC, cartUC, productUC, orderUC, recommendUC)
}
