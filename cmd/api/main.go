package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanbook/internal/adapter/http"
	"loanbook/internal/adapter/middleware"
	"loanbook/internal/adapter/repository/mysql"
	"loanbook/internal/config"
	"loanbook/internal/infrastructure/cache"
	"loanbook/internal/infrastructure/db"
	carduc "loanbook/internal/usecase/card"
	loanuc "loanbook/internal/usecase/loan"
	repayuc "loanbook/internal/usecase/repayment"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	scheduleRepo := mysql.NewScheduleRepository(gdb)
	repaymentRepo := mysql.NewRepaymentRepository(gdb)
	cardRepo := mysql.NewCardRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	loans := loanuc.NewUsecase(loanRepo, scheduleRepo, guow)
	repayments := repayuc.NewUsecase(loanRepo, repaymentRepo, guow)
	cards := carduc.NewUsecase(cardRepo)

	h := httpadp.NewHandler()
	loanHandler := httpadp.NewLoanHandler(loans, repayments)
	cardHandler := httpadp.NewCardHandler(cards)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/loans", loanHandler.CreateLoan, idemp)
	e.GET("/loans", loanHandler.ListLoans)
	e.GET("/loans/:loan_id", loanHandler.GetLoan)
	e.POST("/loans/:loan_id/repayments", loanHandler.RepayLoan, idemp)
	e.GET("/loans/:loan_id/repayments", loanHandler.ListRepayments)

	e.GET("/debit-cards", cardHandler.ListCards)
	e.POST("/debit-cards", cardHandler.CreateCard, idemp)
	e.GET("/debit-cards/:card_id", cardHandler.GetCard)
	e.PUT("/debit-cards/:card_id", cardHandler.UpdateCard)
	e.DELETE("/debit-cards/:card_id", cardHandler.DeleteCard)

	e.GET("/debit-card-transactions/:card_id", cardHandler.ListTransactions)
	e.POST("/debit-card-transactions", cardHandler.CreateTransaction, idemp)
	e.GET("/debit-card-transaction/:transaction_id", cardHandler.GetTransaction)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
