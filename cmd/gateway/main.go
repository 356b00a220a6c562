package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos-loyalty-gateway/internal/auth"
	"pos-loyalty-gateway/internal/config"
	"pos-loyalty-gateway/internal/httpapi"
	"pos-loyalty-gateway/internal/posdb"
	"pos-loyalty-gateway/internal/store/memory"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	creds, err := memory.FromLists(cfg.Usernames, cfg.PasswordHashes)
	if err != nil {
		log.Fatalf("failed to build credential store: %v", err)
	}

	codec, err := auth.NewCodec(cfg.SecretKey, cfg.Algorithm)
	if err != nil {
		log.Fatalf("failed to init token codec: %v", err)
	}

	pos, err := posdb.NewStore(cfg.DatabaseURL, cfg.CollectItemCodes, cfg.RedeemPayCodes)
	if err != nil {
		log.Fatalf("failed to init pos database: %v", err)
	}
	defer pos.Close()

	srv := httpapi.NewServer(cfg, creds, codec, pos)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("gateway listening on %s", cfg.ListenAddr())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Printf("shutdown requested")
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
}
