package di

import (
	"context"
	"time"

	"hostel/config"
	"hostel/infras/kafka"
	"hostel/infras/metrics"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	exportService "hostel/internal/domains/export/service"
	historyService "hostel/internal/domains/history/service"
	roomModel "hostel/internal/domains/room/model"
	"hostel/shared/cache"
	"hostel/transport/http"
	"hostel/transport/http/middleware"
	"hostel/transport/http/router"
)

// provideRoomList shares one snapshot between room reads and front desk writes so writes can invalidate it.
func provideRoomList(cfg *config.Config) cache.Snapshot[[]roomModel.Room] {
	return cache.NewMemorySnapshot[[]roomModel.Room](time.Duration(cfg.Cache.RoomListTTLSecs) * time.Second)
}

func provideEntrySource(history historyService.History) exportService.EntrySource {
	return history
}

func provideServer(
	cfg *config.Config,
	r router.Router,
	app middleware.AppMiddleware,
	authRole middleware.AuthRole,
	collectors metrics.Metrics,
	tracer otel.Otel,
	conn *postgres.Connection,
	client kafka.Client,
) *http.HTTP {
	server := http.New(cfg, r, app, authRole, collectors)

	server.OnShutdown(tracer.Shutdown)
	server.OnShutdown(func(context.Context) error { return client.Close() })
	server.OnShutdown(func(context.Context) error { return conn.Close() })

	return server
}
