// Package health поднимает gRPC-сервер со стандартным сервисом grpc.health.v1.
//
// Статус обновляется периодической проверкой хранилища: SERVING, пока
// проверка проходит, и NOT_SERVING в противном случае.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
)

// ServiceName — имя сервиса, под которым публикуется статус.
const ServiceName = "vidhub"

// Checker проверяет зависимость, от которой зависит готовность.
type Checker interface {
	Ping(ctx context.Context) error
}

// Server — gRPC-сервер health-проверок.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	checker    Checker
	interval   time.Duration
	log        *slog.Logger
}

// New создает сервер и начинает слушать адрес.
func New(addr string, checker Checker, interval time.Duration, log *slog.Logger) (*Server, error) {
	const op = "grpc.health.New"

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hs := health.NewServer()
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	return &Server{
		grpcServer: gs,
		health:     hs,
		listener:   lis,
		checker:    checker,
		interval:   interval,
		log:        log,
	}, nil
}

// Addr возвращает фактический адрес прослушивания.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Run обслуживает запросы до отмены ctx.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("gRPC health server listening", slog.String("address", s.Addr()))
		errCh <- s.grpcServer.Serve(s.listener)
	}()

	s.probe(ctx)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.health.Shutdown()
			s.grpcServer.GracefulStop()
			return nil
		case err := <-errCh:
			return err
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

func (s *Server) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.checker.Ping(ctx); err != nil {
		s.log.Warn("health probe failed", sl.Err(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
