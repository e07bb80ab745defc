// Package server exposes the gRPC side of the service. Only the standard health
// protocol is served: orchestrators probe it while browsers use websockets.
package server

import (
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name probed by grpc_health_probe -service.
const ServiceName = "sharemyshows.Presence"

type HealthServer struct {
	log    *slog.Logger
	health *health.Server
}

// NewHealthServer starts NOT_SERVING until the first successful probe.
func NewHealthServer(log *slog.Logger) *HealthServer {
	s := &HealthServer{log: log, health: health.NewServer()}
	s.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

func (s *HealthServer) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, s.health)
}

func (s *HealthServer) SetServing(serving bool) {
	if serving {
		s.set(healthpb.HealthCheckResponse_SERVING)
		return
	}
	s.set(healthpb.HealthCheckResponse_NOT_SERVING)
}

// Shutdown reports NOT_SERVING forever, even if a probe succeeds afterwards.
func (s *HealthServer) Shutdown() {
	s.log.Info("Health service shutting down")
	s.health.Shutdown()
}

func (s *HealthServer) set(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
