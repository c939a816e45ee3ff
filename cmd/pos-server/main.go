package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/tanakrit-dev/pizzashop-pos/pkg/logging"
	"github.com/tanakrit-dev/pizzashop-pos/pkg/shutdown"
	"github.com/tanakrit-dev/pizzashop-pos/pkg/tracing"

	catalogapp "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/application"
	catalogmem "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/infrastructure/memory"
	memberapp "github.com/tanakrit-dev/pizzashop-pos/internal/member/application"
	membermem "github.com/tanakrit-dev/pizzashop-pos/internal/member/infrastructure/memory"
	orderapp "github.com/tanakrit-dev/pizzashop-pos/internal/order/application"
	orderdomain "github.com/tanakrit-dev/pizzashop-pos/internal/order/domain"
	orderhttp "github.com/tanakrit-dev/pizzashop-pos/internal/order/infrastructure/http"
	ordermem "github.com/tanakrit-dev/pizzashop-pos/internal/order/infrastructure/memory"
)

type config struct {
	HTTPAddr         string `envconfig:"HTTP_ADDR" default:":8080"`
	PromoItemName    string `envconfig:"PROMO_ITEM_NAME" default:"พิซซ่าเรดฮาวายเอี้ยน"`
	PromoMinSubtotal string `envconfig:"PROMO_MIN_SUBTOTAL" default:"1000"`
	MemberRate       string `envconfig:"MEMBER_DISCOUNT_RATE" default:"0.10"`
	BirthdayRate     string `envconfig:"BIRTHDAY_DISCOUNT_RATE" default:"0.15"`
}

func main() {
	log := logging.New("pos-server")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	var cfg config
	if err := envconfig.Process("pos", &cfg); err != nil {
		log.Error("config parse failed", "err", err)
		os.Exit(1)
	}

	rules, err := rulesFrom(cfg)
	if err != nil {
		log.Error("invalid pricing rules", "err", err)
		os.Exit(1)
	}

	tp, err := tracing.Init(ctx, "pos-server", log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(ctx) }()

	// In-memory collaborators, constructed once for the process lifetime.
	catalogRepo := catalogmem.NewRepository(catalogmem.Seed())
	memberDir := membermem.NewDirectory(membermem.Seed())
	orderLog := ordermem.NewRepository()

	catalogSvc := catalogapp.NewService(catalogRepo)
	memberSvc := memberapp.NewService(log, memberDir, nil)
	checkoutSvc := orderapp.NewService(log, catalogRepo, memberDir, orderLog, rules, nil)

	handler := orderhttp.NewHandler(log, checkoutSvc, catalogSvc, memberSvc)

	r := chi.NewRouter()
	r.Mount("/", handler.Routes())
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("pos-server shutdown complete")
}

func rulesFrom(cfg config) (orderdomain.Rules, error) {
	minSubtotal, err := decimal.NewFromString(cfg.PromoMinSubtotal)
	if err != nil {
		return orderdomain.Rules{}, err
	}
	memberRate, err := decimal.NewFromString(cfg.MemberRate)
	if err != nil {
		return orderdomain.Rules{}, err
	}
	birthdayRate, err := decimal.NewFromString(cfg.BirthdayRate)
	if err != nil {
		return orderdomain.Rules{}, err
	}
	return orderdomain.Rules{
		PromoItemName:    cfg.PromoItemName,
		PromoMinSubtotal: minSubtotal,
		MemberRate:       memberRate,
		BirthdayRate:     birthdayRate,
	}, nil
}
