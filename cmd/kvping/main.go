package main

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-kv-client/internal/config"
	"github.com/MKhiriev/go-kv-client/internal/logger"
	"github.com/MKhiriev/go-kv-client/kv"
)

const defaultProbeTimeout = 5 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("kvping")
	settings, err := config.GetSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting settings")
	}

	builder := kv.NewClientBuilder().
		WithEndpoints(settings.Client.Endpoints...).
		WithLazyInitialization(settings.Client.LazyInit)

	if settings.Client.User != "" {
		builder.WithUser([]byte(settings.Client.User))
	}
	if settings.Client.Password != "" {
		builder.WithPassword([]byte(settings.Client.Password))
	}

	client, err := builder.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("error building client")
	}

	log.Info().
		Str("client_id", client.ID()).
		Strs("endpoints", client.Endpoints()).
		Msg("client ready")

	probeErr := probe(client, settings)
	if closeErr := client.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("error closing client")
	}

	if probeErr != nil {
		log.Fatal().Err(probeErr).Msg("health probe failed")
	}

	log.Info().Msg("health probe ok")
}

// probe performs a single health check against the constructed client,
// bounded by the configured probe timeout.
func probe(client *kv.Client, settings *config.Settings) error {
	timeout := settings.Probe.Timeout
	if timeout <= 0 {
		timeout = settings.Client.DialTimeout
	}
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(client.Conn()).Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: settings.Probe.Service,
	})
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("server not serving: %s", resp.GetStatus())
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
