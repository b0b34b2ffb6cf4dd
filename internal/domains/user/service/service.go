package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/internal/domains/user/model"
	"hostel/internal/domains/user/model/dto"
	"hostel/internal/domains/user/repository"
	"hostel/shared"
	"hostel/shared/cache"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix     = "user:"
	cacheGetUser    = cachePrefix + "get"
	cacheGetAllUser = cachePrefix + "gets"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListUsersRequest) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Me(ctx context.Context) (dto.UserResponse, error)
	UpdateRole(ctx context.Context, id string, req dto.UpdateRoleRequest) (dto.UserResponse, error)
	UpdateActive(ctx context.Context, id string, req dto.UpdateActiveRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(shared.Actor(ctx), hashedPassword)

	if err = s.repo.Insert(ctx, user); err != nil {
		if failure.Is(err, failure.KindDuplicateKey) {
			return res, failure.Duplicate("email already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListUsersRequest) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllUser,
		strconv.Itoa(params.Page), strconv.Itoa(params.Limit), params.SortBy, params.SortDir, req.Role, strings.ToLower(req.Search))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	filter := listFilter(req)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users, total, shared.CalculateTotalPage(total, params.Limit))

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context) (dto.UserResponse, error) {
	id := shared.Actor(ctx)
	if id == constant.ContextSystem {
		return dto.UserResponse{}, failure.Unauthorized("not signed in") //nolint:wrapcheck
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) UpdateRole(ctx context.Context, id string, req dto.UpdateRoleRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.ValidRole(req.Role) {
		return res, failure.BadRequestFromString("unknown role") //nolint:wrapcheck
	}

	if id == shared.Actor(ctx) {
		return res, failure.Conflict("you cannot change your own role") //nolint:wrapcheck
	}

	return s.update(ctx, id, shared.TransformFields(req, shared.Actor(ctx)))
}

func (s *serviceImpl) UpdateActive(ctx context.Context, id string, req dto.UpdateActiveRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Active == nil {
		return res, failure.BadRequestFromString("active is required") //nolint:wrapcheck
	}

	if id == shared.Actor(ctx) && !*req.Active {
		return res, failure.Conflict("you cannot deactivate yourself") //nolint:wrapcheck
	}

	return s.update(ctx, id, shared.TransformFields(req, shared.Actor(ctx)))
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == shared.Actor(ctx) {
		return failure.Conflict("you cannot delete yourself") //nolint:wrapcheck
	}

	if !shared.IsValidID(id) {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any) (res dto.UserResponse, err error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	s.invalidate(ctx)

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	if !shared.IsValidID(id) {
		return model.User{}, failure.NotFound("user not found") //nolint:wrapcheck
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user not found") //nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", key).Msg("failed to save users to cache")
	}
}

// invalidate drops every cached user read. A stale role must not outlive the write.
func (s *serviceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Clear(ctx, cachePrefix); err != nil {
		log.Warn().Err(err).Msg("failed to clear user cache")
	}
}

func listFilter(req dto.ListUsersRequest) gDto.FilterGroup {
	filter := gDto.FilterGroup{}

	if req.Role != "" {
		filter.Add(gDto.Filter{Field: model.FieldRole, Value: req.Role, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if search := strings.TrimSpace(req.Search); search != "" {
		filter.Add(gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_name", Field: model.FieldFullName, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	return filter
}
