package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "touring/internal/config"
	"touring/internal/console"
	intdb "touring/internal/db"
	router "touring/internal/http"
	"touring/internal/metrics"
	"touring/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitInconsistent = 2
)

// consistencyRunner is implemented by services.ConsistencyService.
type consistencyRunner interface {
	Run() (bool, error)
}

func main() {
	os.Exit(run())
}

func run() int {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Printf("config: %v", err)
		return exitFailure
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		log.Printf("database: %v", err)
		return exitFailure
	}
	defer intconfig.CloseDB()

	if env.AutoMigrate {
		if err := intdb.EnsureSchema(db); err != nil {
			log.Printf("schema: %v", err)
			return exitFailure
		}
	}

	m := metrics.NewRegistry()
	consistency := services.NewConsistencyService(db, m)
	if code := checkConsistency(consistency); code != exitOK {
		return code
	}

	if env.Mode == intconfig.ModeHTTP {
		serve(env, m)
		return exitOK
	}

	c := console.New(os.Stdin, os.Stdout, services.NewCustomerService(db), services.NewBookingService(db, m))
	return runConsole(c, consistency)
}

// runConsole runs one console session, then checks consistency again on the
// way out.
func runConsole(c *console.Console, consistency consistencyRunner) int {
	runErr := c.Run()
	if code := checkConsistency(consistency); code != exitOK {
		return code
	}
	if errors.Is(runErr, console.ErrTooManyAttempts) {
		return exitFailure
	}
	return exitOK
}

// checkConsistency maps the inventory check onto an exit code: 2 when
// reservations and inventory disagree, 1 when they could not be read.
func checkConsistency(svc consistencyRunner) int {
	log.Println("[DBCC] checking database consistency...")
	ok, err := svc.Run()
	if err != nil {
		log.Printf("[DBCC] could not read reservations or inventory: %v", err)
		return exitFailure
	}
	if !ok {
		log.Println("Fatal Error: Database Consistency Check failed")
		return exitInconsistent
	}
	log.Println("[DBCC] ok")
	return exitOK
}

func serve(env intconfig.Env, m *metrics.Registry) {
	r := router.NewRouter(env, m)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown failed: %v", err)
		return
	}

	log.Println("Server stopped.")
}
