package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "credit-engine/internal/adapter/http"
	appmw "credit-engine/internal/adapter/middleware"
	"credit-engine/internal/adapter/notifier"
	"credit-engine/internal/adapter/repository/mysql"
	"credit-engine/internal/config"
	"credit-engine/internal/infrastructure/cache"
	"credit-engine/internal/infrastructure/db"
	appuc "credit-engine/internal/usecase/application"
	contractuc "credit-engine/internal/usecase/contract"
	"credit-engine/internal/usecase/servicing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	applications := mysql.NewApplicationRepository(gdb)
	contracts := mysql.NewContractRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	applicants := mysql.NewApplicantRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	n := notifier.NewLogNotifier()
	gen := contractuc.NewGenerator()

	appUC := appuc.NewUsecase(applications, applicants, tx, gen, n)
	svcUC := servicing.NewUsecase(contracts, payments, tx, n)

	appH := httpadp.NewApplicationHandler(appUC)
	svcH := httpadp.NewServicingHandler(svcUC)
	sysH := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	// bypasses GET/HEAD/OPTIONS internally
	e.Use(appmw.IdempotencyMiddleware(rdb, cfg.IdempTTL))

	// routes
	e.GET("/health", sysH.Health)

	e.POST("/applications", appH.Create)
	e.PUT("/applications/:application_id", appH.Update)
	e.GET("/applications/:application_id", appH.Get)
	e.POST("/applications/:application_id/submit", appH.Submit)
	e.POST("/applications/:application_id/review", appH.BeginReview)
	e.POST("/applications/:application_id/approve", appH.Approve)
	e.POST("/applications/:application_id/reject", appH.Reject)
	e.POST("/applications/:application_id/request-documents", appH.RequestDocuments)
	e.POST("/applications/:application_id/resubmit", appH.ResubmitDocuments)
	e.POST("/applications/:application_id/documents", appH.AttachDocument)
	e.POST("/applications/:application_id/documents/:document_id/verify", appH.VerifyDocument)
	e.GET("/applications/:application_id/score", appH.Score)

	e.POST("/contracts/:contract_id/sign", svcH.Sign)
	e.GET("/contracts/:contract_id", svcH.GetContract)
	e.GET("/contracts/:contract_id/schedule", svcH.GetSchedule)
	e.POST("/contracts/:contract_id/suspend", svcH.Suspend)
	e.POST("/contracts/:contract_id/reactivate", svcH.Reactivate)
	e.POST("/contracts/:contract_id/payoff/simulate", svcH.SimulatePayoff)
	e.POST("/contracts/:contract_id/payoff", svcH.CommitPayoff)

	e.GET("/payments/:payment_id", svcH.GetPayment)
	e.POST("/payments/:payment_id/pay", svcH.Pay)
	e.POST("/payments/:payment_id/miss", svcH.MarkMissed)

	e.POST("/servicing/overdue-scan", svcH.OverdueScan)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
