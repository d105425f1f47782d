package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moko271/design-thinking-grarec/config"
	"github.com/moko271/design-thinking-grarec/log"
	"github.com/moko271/design-thinking-grarec/server"
)

func main() {
	cfg := config.Get()

	// Without a key every model call fails, so refuse to boot at all.
	if cfg.OpenAIAPIKey == "" {
		log.Fatal().Msg("OPENAI_API_KEY is not set; add it to the environment or a .env file")
	}

	srv := server.New(cfg)

	go func() {
		// Students connect over the classroom network, so print the
		// reachable URLs at startup.
		printNetworkAddresses(cfg.Port)

		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	log.Info().Msg("server stopped")
}

func printNetworkAddresses(port int) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok {
				if ip4 := ipnet.IP.To4(); ip4 != nil {
					log.Info().
						Str("url", fmt.Sprintf("http://%s:%d", ip4.String(), port)).
						Msg("network")
				}
			}
		}
	}
}
