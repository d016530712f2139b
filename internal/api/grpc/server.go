// Package grpc exposes the standard gRPC health service for the API process.
// Serving status follows database reachability.
package grpc

import (
	"context"
	"time"

	"rentable-backend/internal/api/grpc/interceptor"
	"rentable-backend/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health-check service name reported next to the overall ("") status.
const ServiceName = "rentable.api"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer wraps a grpc.Server carrying only the health and reflection services.
type HealthServer struct {
	Server   *grpc.Server
	health   *health.Server
	pinger   Pinger
	interval time.Duration
}

func NewHealthServer(pinger Pinger, interval time.Duration) *HealthServer {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	s := grpc.NewServer(grpc.UnaryInterceptor(interceptor.Unary()))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	// Register reflection service for grpcurl
	reflection.Register(s)

	h := &HealthServer{Server: s, health: hs, pinger: pinger, interval: interval}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

func (h *HealthServer) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(ServiceName, st)
}

// Check pings once and publishes the result.
func (h *HealthServer) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.Ping(ctx); err != nil {
		logger.Warn("Health check failed", "error", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(st)
	return st
}

// Watch re-checks on every interval until ctx is done, then reports NOT_SERVING.
func (h *HealthServer) Watch(ctx context.Context) {
	h.Check(ctx)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
