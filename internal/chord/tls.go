package chord

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc/credentials"

	"github.com/ErnestoAbreu/distributed-social-network/internal/config"
)

// ClientCredentials builds mutual-TLS transport credentials for dialing
// peers. Returns nil (plaintext) when TLS is disabled, or — with a warning
// — when the certificates cannot be loaded, so a misconfigured node still
// joins the ring instead of going dark.
func ClientCredentials(cfg *config.Config, lgr *zap.Logger) credentials.TransportCredentials {
	if !cfg.UseTLS {
		return nil
	}
	tlsCfg, err := mutualTLSConfig(cfg)
	if err != nil {
		lgr.Warn("TLS enabled but client credentials failed to load, using plaintext", zap.Error(err))
		return nil
	}
	return credentials.NewTLS(tlsCfg)
}

// ServerCredentials builds mutual-TLS credentials for the Chord gRPC
// server, requiring and verifying client certificates. Same degradation
// rule as ClientCredentials.
func ServerCredentials(cfg *config.Config, lgr *zap.Logger) credentials.TransportCredentials {
	if !cfg.UseTLS {
		return nil
	}
	tlsCfg, err := mutualTLSConfig(cfg)
	if err != nil {
		lgr.Warn("TLS enabled but server credentials failed to load, serving plaintext", zap.Error(err))
		return nil
	}
	tlsCfg.ClientAuth = tls.RequireAndVerifyClientCert
	return credentials.NewTLS(tlsCfg)
}

func mutualTLSConfig(cfg *config.Config) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CertPath, cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("load key pair: %w", err)
	}
	caPEM, err := os.ReadFile(cfg.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("read CA cert: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("no certificates parsed from %s", cfg.CACertPath)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		ClientCAs:    pool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
