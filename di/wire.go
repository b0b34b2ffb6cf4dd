//go:build wireinject
// +build wireinject

package di

import (
	"hostel/config"
	"hostel/infras/jwt"
	"hostel/infras/kafka"
	"hostel/infras/metrics"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/infras/redis"
	"hostel/infras/s3"
	"hostel/permissions"
	"hostel/shared/cache"
	"hostel/transport/http"
	"hostel/transport/http/middleware"
	"hostel/transport/http/router"

	authService "hostel/internal/domains/auth/service"
	exportService "hostel/internal/domains/export/service"
	"hostel/internal/domains/frontdesk/event"
	frontDeskService "hostel/internal/domains/frontdesk/service"
	historyRepository "hostel/internal/domains/history/repository"
	historyService "hostel/internal/domains/history/service"
	roomRepository "hostel/internal/domains/room/repository"
	roomService "hostel/internal/domains/room/service"
	userRepository "hostel/internal/domains/user/repository"
	userService "hostel/internal/domains/user/service"

	authHandler "hostel/internal/handlers/auth"
	exportHandler "hostel/internal/handlers/export"
	frontDeskHandler "hostel/internal/handlers/frontdesk"
	historyHandler "hostel/internal/handlers/history"
	roomHandler "hostel/internal/handlers/room"
	userHandler "hostel/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	jwt.NewDenylist,
	kafka.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	provideRoomList,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	historyRepository.New,
	roomService.New,
)

var frontDeskDomain = wire.NewSet(
	historyService.New,
	event.New,
	frontDeskService.New,
)

var exportDomain = wire.NewSet(
	provideEntrySource,
	exportService.New,
)

var domains = wire.NewSet(
	userDomain,
	roomDomain,
	frontDeskDomain,
	exportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	frontDeskHandler.New,
	historyHandler.New,
	exportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		provideServer,
	)

	return &http.HTTP{}
}

func InitializeUserService() userService.User {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		cache.NewRedisCache,
		userRepository.New,
		userService.New,
	)

	return nil
}

func InitializeRoomService() roomService.Room {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		postgres.NewTransactor,
		metrics.New,
		provideRoomList,
		roomRepository.New,
		historyRepository.New,
		roomService.New,
	)

	return nil
}
