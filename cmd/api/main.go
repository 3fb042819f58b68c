package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"composer/internal/auth"
	"composer/internal/cache"
	"composer/internal/config"
	"composer/internal/dam"
	"composer/internal/domain/model"
	"composer/internal/factory"
	"composer/internal/handler"
	"composer/internal/infra/db"
	infraOverture "composer/internal/infra/overture"
	infraRepo "composer/internal/infra/repository"
	"composer/internal/localization"
	"composer/internal/metrics"
	"composer/internal/middleware"
	"composer/internal/observability"
	"composer/internal/provider"
	"composer/internal/search"
	"composer/internal/server"
	"composer/internal/usecase"
	"composer/internal/viewmodel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env は無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	culture, err := language.Parse(cfg.DefaultCulture)
	if err != nil {
		return fmt.Errorf("DEFAULT_CULTURE: %w", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg.DSN(), logger)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	if err := db.Seed(ctx, gormDB, db.SeedOptions{
		Scope:       cfg.DefaultScope,
		CultureName: cfg.DefaultCulture,
		Currency:    cfg.DefaultCurrency,
		Location:    cfg.DefaultInventoryLocation,
	}); err != nil {
		return err
	}

	m := metrics.New("composer")

	//キャッシュ（REDIS_ADDR が無ければプロセス内）
	cacheProvider, closeCache, err := newCacheProvider(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()
	c := cache.New(cacheProvider, cfg.CacheTTL, m, logger)

	//コマースAPI（postgres 実装）
	clock := auth.SystemClock{}
	ids := auth.UUIDGenerator{}
	newAccountStatus := model.AccountStatusActive
	if cfg.RequireAccountApproval {
		newAccountStatus = model.AccountStatusRequiresApproval
	}
	backend := infraOverture.NewBackend(
		gormDB,
		auth.NewBcryptPasswordHasher(12),
		auth.NewBcryptPasswordVerifier(),
		ids,
		clock,
		infraOverture.NewLogResetNotifier(logger, cfg.PasswordResetURL),
		infraOverture.Options{
			DefaultCurrency:  cfg.DefaultCurrency,
			NewAccountStatus: newAccountStatus,
			PasswordPolicy:   auth.PasswordPolicy{MinLength: cfg.PasswordMinLength},
		},
		logger,
	)

	//Repository生成
	cartRepo := infraRepo.NewCartOvertureRepository(backend)
	inventoryRepo := infraRepo.NewInventoryOvertureRepository(backend, c)
	settingsRepo := infraRepo.NewProductSettingsOvertureRepository(backend, c)
	customerRepo := infraRepo.NewCustomerOvertureRepository(backend, c)
	membershipRepo := infraRepo.NewMembershipOvertureRepository(backend)
	productRepo := infraRepo.NewProductOvertureRepository(backend, c)
	countryRepo := infraRepo.NewCountryOvertureRepository(backend, c)
	orderRepo := infraRepo.NewOrderOvertureRepository(backend)

	//表示用の部品
	localizer := localization.NewProvider(cfg.DefaultCurrency)
	images, err := dam.NewConventionBasedProvider(dam.Settings{
		ServerURL:        cfg.ImageBaseURL,
		ImageFolderName:  cfg.ImageFolderName,
		FallbackImageURL: cfg.FallbackImageURL,
	})
	if err != nil {
		return err
	}
	productURLs := provider.NewProductURLProvider()
	rewards := factory.NewRewardViewModelFactory(localizer)
	lineItemFactory := factory.NewLineItemViewModelFactory(localizer, productURLs, rewards, provider.NewLineItemValidationProvider())
	cartFactory := factory.NewCartViewModelFactory(localizer, lineItemFactory, rewards)
	lineItems := usecase.NewLineItemService(images, "M")
	myAccountURLs := provider.NewMyAccountURLProvider()
	orderFactory := factory.NewOrderViewModelFactory(localizer, lineItemFactory, rewards, myAccountURLs)

	//Usecase生成
	cartSvc := usecase.NewCartViewService(cartRepo, cartFactory, lineItems, logger)
	couponSvc := usecase.NewCouponViewService(cartRepo, cartFactory, localizer, lineItems, logger)
	inventorySvc := usecase.NewInventoryViewService(
		inventoryRepo,
		usecase.NewProductSettingsViewService(settingsRepo),
		provider.NewInventoryLocationProvider(settingsRepo, cfg.DefaultInventoryLocation),
		clock,
		inventoryStatuses(cfg.AvailableStatuses),
		logger,
	)
	membershipSvc := usecase.NewMembershipViewService(
		membershipRepo,
		customerRepo,
		cartRepo,
		orderRepo,
		myAccountURLs,
		cfg.CartName,
		cfg.PasswordMinLength,
		logger,
	)
	countrySvc := usecase.NewCountryViewService(countryRepo, logger)
	orderSvc := usecase.NewOrderViewService(orderRepo, orderFactory, lineItems, localizer, logger)
	wishListSvc := usecase.NewWishListViewService(cartRepo, lineItemFactory, lineItems, myAccountURLs, logger)
	productSvc := usecase.NewProductViewService(productRepo, images, productURLs, localizer, logger)
	searchSvc := usecase.NewSearchViewService(
		productRepo,
		images,
		productURLs,
		localizer,
		[]search.FacetSetting{
			{FieldName: usecase.PriceFacetName, FacetType: viewmodel.FacetTypeRange, FacetValueType: search.FacetValueTypeCurrency},
			{FieldName: "brand", FacetType: viewmodel.FacetTypeSingle, FacetValueType: search.FacetValueTypeText},
		},
		map[viewmodel.FacetType]search.SelectedFacetProvider{
			viewmodel.FacetTypeRange:  search.NewRangeSelectedFacetProvider(search.NewFacetLocalizationProvider(localizer)),
			viewmodel.FacetTypeSingle: search.NewSingleSelectedFacetProvider(),
		},
		logger,
	)

	//cookie と認証チケット
	cookies := middleware.NewComposerCookieStore(cfg.CookieHashKey, cfg.CookieBlockKey, cfg.CookieSecure, 30*24*time.Hour)
	tickets := middleware.NewAuthTicket(middleware.AuthTicketOptions{
		Secret:     cfg.AuthSecret,
		CookieName: cfg.AuthCookieName,
		Timeout:    cfg.AuthCookieTimeout,
		Secure:     cfg.CookieSecure,
	}, clock)

	//Handler生成
	handlers := server.Handlers{
		Cart:       handler.NewCartHandler(cartSvc, couponSvc, cfg.CartName),
		Country:    handler.NewCountryHandler(countrySvc),
		Inventory:  handler.NewInventoryHandler(inventorySvc),
		Membership: handler.NewMembershipHandler(membershipSvc, tickets, cookies, ids, logger),
		Order:      handler.NewOrderHandler(orderSvc, cfg.CartName),
		Product:    handler.NewProductHandler(productSvc),
		Search:     handler.NewSearchHandler(searchSvc),
		WishList:   handler.NewWishListHandler(wishListSvc, cfg.WishListName),
	}

	e := server.New(server.Options{
		Logger:  logger,
		Metrics: m,
		Cookies: cookies,
		Tickets: tickets,
		IDs:     ids,
		Defaults: middleware.ContextDefaults{
			Scope:     cfg.DefaultScope,
			Culture:   culture,
			Supported: []language.Tag{culture, language.English, language.French},
		},
		Localizer: localizer,
	})
	server.RegisterRoutes(e, handlers, m)

	//Server起動
	return server.Start(ctx, e, cfg.Addr(), logger)
}

func newCacheProvider(ctx context.Context, cfg config.Config, logger *zap.Logger) (cache.Provider, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("cache: in-process", zap.Int("size", cfg.CacheSize))
		return cache.NewMemoryProvider(cfg.CacheSize, cfg.CacheTTL), func() {}, nil
	}

	p, err := cache.NewRedisProvider(ctx, cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("cache: redis", zap.String("addr", cfg.RedisAddr))
	return p, func() { _ = p.Close() }, nil
}

func inventoryStatuses(names []string) []model.InventoryStatus {
	out := make([]model.InventoryStatus, 0, len(names))
	for _, n := range names {
		out = append(out, model.InventoryStatus(n))
	}
	return out
}
