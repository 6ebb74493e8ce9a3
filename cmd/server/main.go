// cmd/server is the entrypoint for a ring node. One process hosts the
// Chord gRPC service, the local store, the background maintenance workers,
// and the HTTP application gateway.
//
// Example — three local nodes forming a ring through DNS or the peer cache:
//
//	NODE_HOST=127.0.0.1 ./server --port 50051 --http-port 8081 --data-dir /tmp/n1
//	NODE_HOST=127.0.0.1 ./server --port 50052 --http-port 8082 --data-dir /tmp/n2
//	NODE_HOST=127.0.0.1 ./server --port 50053 --http-port 8083 --data-dir /tmp/n3
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/ErnestoAbreu/distributed-social-network/internal/api"
	"github.com/ErnestoAbreu/distributed-social-network/internal/app"
	"github.com/ErnestoAbreu/distributed-social-network/internal/chord"
	"github.com/ErnestoAbreu/distributed-social-network/internal/chordpb"
	"github.com/ErnestoAbreu/distributed-social-network/internal/config"
	"github.com/ErnestoAbreu/distributed-social-network/internal/store"
)

const snapshotInterval = 60 * time.Second

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	host := flag.String("host", "", "Advertised host (overrides NODE_HOST)")
	port := flag.Int("port", 0, "Chord gRPC port (overrides DEFAULT_PORT)")
	httpPort := flag.Int("http-port", 0, "HTTP gateway port (overrides HTTP_PORT)")
	dataDir := flag.String("data-dir", "", "Directory for WAL and snapshots (overrides DATA_DIR)")
	debug := flag.Bool("debug", false, "Verbose logging")
	flag.Parse()

	lgr := newLogger(*debug)
	defer lgr.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		lgr.Fatal("configuration invalid", zap.Error(err))
	}
	if *host != "" {
		cfg.NodeHost = *host
	}
	if *port != 0 {
		cfg.DefaultPort = *port
	}
	if *httpPort != 0 {
		cfg.HTTPPort = *httpPort
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	address := fmt.Sprintf("%s:%d", resolveHost(cfg, lgr), cfg.DefaultPort)
	lgr.Info("starting node",
		zap.String("address", address),
		zap.Int("m_bits", cfg.MBits),
		zap.Int("replication_k", cfg.ReplicationK))

	// ── Storage ────────────────────────────────────────────────────────────
	nodeDataDir := filepath.Join(cfg.DataDir, strings.ReplaceAll(address, ":", "_"))
	st, err := store.New(nodeDataDir, lgr)
	if err != nil {
		lgr.Fatal("open store", zap.Error(err))
	}

	// ── Ring core and workers ──────────────────────────────────────────────
	pool := chord.NewPool(cfg, lgr)
	node := chord.NewNode(address, cfg.MBits, st, pool, lgr)
	timer := chord.NewTimer(node, cfg.TimerInterval, lgr)
	replicator := chord.NewReplicator(node, cfg.ReplicationK, cfg.ReplicationInterval, lgr)
	stabilizer := chord.NewStabilizer(node, cfg.StabilizeInterval, lgr)
	discoverer := chord.NewDiscoverer(node, replicator, cfg, lgr)

	// ── Chord gRPC server ──────────────────────────────────────────────────
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.DefaultPort))
	if err != nil {
		lgr.Fatal("listen", zap.Int("port", cfg.DefaultPort), zap.Error(err))
	}
	opts := []grpc.ServerOption{grpc.NumStreamWorkers(10)}
	if creds := chord.ServerCredentials(cfg, lgr); creds != nil {
		opts = append(opts, grpc.Creds(creds))
	}
	grpcServer := grpc.NewServer(opts...)
	chordpb.RegisterChordServiceServer(grpcServer,
		chord.NewService(node, replicator, timer, lgr))

	go func() {
		lgr.Info("chord service listening", zap.String("address", listener.Addr().String()))
		if err := grpcServer.Serve(listener); err != nil {
			lgr.Fatal("grpc serve", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go discoverer.Run(ctx)
	go stabilizer.Run(ctx)
	go replicator.Run(ctx)
	go timer.Run(ctx)

	// Periodic snapshot compacts the WAL.
	go func() {
		ticker := time.NewTicker(snapshotInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := st.Snapshot(); err != nil {
					lgr.Warn("snapshot failed", zap.Error(err))
				}
			}
		}
	}()

	// ── HTTP gateway ───────────────────────────────────────────────────────
	router := chord.NewRouter(node, lgr)
	authRepo := app.NewAuthRepository(router, lgr)
	authSvc := app.NewAuthService(authRepo, cfg.JWTSecret, lgr)
	posts := app.NewPostRepository(router, lgr)
	relations := app.NewRelationsRepository(router, lgr)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(api.Logger(lgr), api.Recovery(lgr))
	api.NewHandler(authSvc, posts, relations, node, router).Register(engine)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		lgr.Info("gateway listening", zap.Int("port", cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lgr.Fatal("gateway serve", zap.Error(err))
		}
	}()

	// ── Graceful shutdown ──────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lgr.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		lgr.Warn("gateway shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()

	// Hand the dataset to the successor so it outlives this node.
	if succ := node.Successor(); !succ.IsZero() && succ.Address != address {
		replicator.ReplicateAllData(succ)
	}

	if err := st.Close(); err != nil {
		lgr.Warn("store close", zap.Error(err))
	}
	pool.Close()
}

// resolveHost picks the advertised host: NODE_HOST when set, otherwise the
// first address the hostname resolves to, otherwise loopback.
func resolveHost(cfg *config.Config, lgr *zap.Logger) string {
	if cfg.NodeHost != "" {
		return cfg.NodeHost
	}
	hostname, err := os.Hostname()
	if err == nil {
		if addrs, err := net.LookupHost(hostname); err == nil && len(addrs) > 0 {
			return addrs[0]
		}
	}
	lgr.Warn("could not resolve own address, using loopback")
	return "127.0.0.1"
}

func newLogger(debug bool) *zap.Logger {
	var lgr *zap.Logger
	var err error
	if debug {
		lgr, err = zap.NewDevelopment()
	} else {
		lgr, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return lgr
}
