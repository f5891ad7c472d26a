package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lookbusy1344/arm-emulator/httpapi"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/riscv"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		decodeWord  = flag.String("decode", "", "Decode a hex or binary instruction word and print its assembly")
		encodeLine  = flag.String("encode", "", "Encode an assembly line and print its hex word")
		apiServer   = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort     = flag.Int("port", 8080, "API server port (used with -api-server)")
		isaProfile  = flag.String("isa", "RV32I", "ISA profile: RV32I or RV64I")
		abiNames    = flag.Bool("abi", false, "Render registers using ABI names")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("rvcodec %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	cfg, err := resolveConfig(*isaProfile, *abiNames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *apiServer:
		runAPIServer(*apiPort)
	case *decodeWord != "":
		runDecode(*decodeWord, cfg)
	case *encodeLine != "":
		runEncode(*encodeLine, cfg)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func resolveConfig(profile string, abi bool) (isa.Config, error) {
	switch profile {
	case string(isa.RV32I):
		return isa.Config{ISA: isa.RV32I, ABI: abi}, nil
	case string(isa.RV64I):
		return isa.Config{ISA: isa.RV64I, ABI: abi}, nil
	default:
		return isa.Config{}, fmt.Errorf("unknown -isa %q, want RV32I or RV64I", profile)
	}
}

func runDecode(word string, cfg isa.Config) {
	w, _, _, err := bits.ParseWord(word)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	res, err := riscv.Decode(w, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(res.Asm)
}

func runEncode(line string, cfg isa.Config) {
	res, err := riscv.Encode(line, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(res.Hex)
}

func runAPIServer(port int) {
	server := httpapi.NewServer(port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: API server: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: shutting down API server: %v\n", err)
			os.Exit(1)
		}
	}
}
