package main

import (
	"flag"
	"net/http"
	"os"

	fichegen "github.com/opd-ai/fichegen/src"
	"github.com/opd-ai/fichegen/srv/generator"
	"github.com/opd-ai/fichegen/srv/tlsserve"
	"github.com/opd-ai/fichegen/srv/ui"
	"github.com/opd-ai/fichegen/srv/util"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	useTLS := flag.Bool("tls", false, "serve HTTPS, generating a self-signed certificate if needed")
	certFile := flag.String("cert", "certs/server.crt", "TLS certificate file")
	keyFile := flag.String("key", "certs/server.key", "TLS key file")
	outputDir := flag.String("outputs", "outputs", "directory for generated fiches")
	fontDir := flag.String("fonts", "fonts", "directory with DejaVu fonts")
	flag.Parse()

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		util.ErrorLogger.Fatal("ANTHROPIC_API_KEY is not set")
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		util.ErrorLogger.Fatal("failed to create outputs directory:", err)
	}

	deps := generator.Deps{
		Client:    fichegen.NewClaudeClient(apiKey),
		OutputDir: *outputDir,
		FontDir:   *fontDir,
	}

	handler := util.LoggingMiddleware(util.RecoveryMiddleware(ui.NewGeneratorUI(deps)))

	util.InfoLogger.Printf("server starting on %s", *addr)
	var err error
	if *useTLS {
		err = tlsserve.ListenAndServeTLS(*addr, *certFile, *keyFile, handler)
	} else {
		err = http.ListenAndServe(*addr, handler)
	}
	if err != nil {
		util.ErrorLogger.Fatal(err)
	}
}
