// Package services содержит бизнес-логику трекера упражнений:
// регистрацию пользователей, журнал упражнений и выборку журнала.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/datenorm"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// Список пользователей кешируется под ключом текущего поколения.
// Register увеличивает поколение после вставки, поэтому снимок, прочитанный
// до вставки, попадает под старый ключ и больше не читается.
const (
	usersGenKey    = "users:gen"
	usersKeyPrefix = "users:all:"
)

func usersCacheKey(gen int64) string {
	return usersKeyPrefix + strconv.FormatInt(gen, 10)
}

// Repository описывает хранилище пользователей и их журналов.
type Repository interface {
	// CreateUser сохраняет пользователя с пустым журналом.
	CreateUser(ctx context.Context, username string) (*models.User, error)

	// ListUsers возвращает всех пользователей без журналов в порядке хранения.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// AppendExercise атомарно дописывает запись в журнал и возвращает username владельца.
	AppendExercise(ctx context.Context, userID string, e models.Exercise) (string, error)

	// GetLog возвращает журнал пользователя, отфильтрованный по датам.
	GetLog(ctx context.Context, userID string, filter models.LogFilter) (*models.UserLog, error)
}

type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) (int64, error)
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

type Metrics interface {
	RecordUserRegistered()
	RecordExerciseAdded()
}

// TrackerService реализует операции трекера поверх Repository.
// Кеш и события вспомогательные: их ошибки только логируются.
type TrackerService struct {
	repo     Repository
	cache    Cache
	events   Publisher
	metrics  Metrics
	validate *validation.Validator
	log      *slog.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// NewTrackerService создает новый экземпляр TrackerService.
func NewTrackerService(
	repo Repository,
	cache Cache,
	events Publisher,
	metrics Metrics,
	cacheTTL time.Duration,
	log *slog.Logger,
) *TrackerService {
	return &TrackerService{
		repo:     repo,
		cache:    cache,
		events:   events,
		metrics:  metrics,
		validate: validation.New(),
		log:      log,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Register создает пользователя с пустым журналом.
func (s *TrackerService) Register(ctx context.Context, username string) (*models.User, error) {
	const op = "services.tracker.Register"

	if err := s.validate.Struct(models.User{Username: username}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.CreateUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.RecordUserRegistered()
	s.log.Info("user registered", slog.String("user_id", user.ID), slog.String("username", user.Username))

	gen, err := s.cache.Incr(ctx, usersGenKey)
	if err != nil {
		s.log.Warn("failed to bump users cache generation", slog.String("key", usersGenKey), sl.Err(err))
	} else if err := s.cache.Invalidate(ctx, usersCacheKey(gen-1)); err != nil {
		s.log.Warn("failed to invalidate users cache", slog.String("key", usersCacheKey(gen-1)), sl.Err(err))
	}

	event := models.UserRegisteredEvent{UserID: user.ID, Username: user.Username, At: s.now().UTC()}
	if err := s.events.Publish(ctx, models.EventUserRegistered, event); err != nil {
		s.log.Warn("failed to publish event", slog.String("event", models.EventUserRegistered), sl.Err(err))
	}

	return user, nil
}

// ListUsers возвращает всех пользователей без журналов.
func (s *TrackerService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	const op = "services.tracker.ListUsers"

	var gen int64
	if _, err := s.cache.Get(ctx, usersGenKey, &gen); err != nil {
		s.log.Warn("failed to read users cache generation", slog.String("key", usersGenKey), sl.Err(err))
		users, err := s.listFromRepo(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return users, nil
	}
	key := usersCacheKey(gen)

	var users []models.UserSummary
	found, err := s.cache.Get(ctx, key, &users)
	if err != nil {
		s.log.Warn("failed to read users cache", slog.String("key", key), sl.Err(err))
	}
	if err == nil && found {
		return users, nil
	}

	users, err = s.listFromRepo(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, key, users, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
	return users, nil
}

func (s *TrackerService) listFromRepo(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.UserSummary{}
	}
	return users, nil
}

// AddExercise проверяет запись и дописывает её в журнал пользователя.
// Пустая дата заменяется текущим временем сервера. При любой ошибке
// журнал не меняется.
func (s *TrackerService) AddExercise(ctx context.Context, userID string, req models.ExerciseRequest) (*models.AddedExercise, error) {
	const op = "services.tracker.AddExercise"

	date := s.now()
	if req.Date != "" {
		d, ok := datenorm.Normalize(req.Date)
		if !ok {
			return nil, fmt.Errorf("%s: %w", op, &models.InvalidDateError{Param: "date"})
		}
		date = d
	}

	exercise := models.Exercise{
		Description: req.Description,
		Date:        date.UTC().Truncate(time.Millisecond),
	}
	duration, castErr := parseDuration(req.Duration)
	if castErr != nil {
		// описание проверяется раньше длительности
		exercise.Duration = 1
	} else {
		exercise.Duration = duration
	}
	if err := s.validate.Struct(exercise); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if castErr != nil {
		return nil, fmt.Errorf("%s: %w", op, castErr)
	}

	username, err := s.repo.AppendExercise(ctx, userID, exercise)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.RecordExerciseAdded()

	event := models.ExerciseAddedEvent{
		UserID:      userID,
		Username:    username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}
	if err := s.events.Publish(ctx, models.EventExerciseAdded, event); err != nil {
		s.log.Warn("failed to publish event", slog.String("event", models.EventExerciseAdded), sl.Err(err))
	}

	return &models.AddedExercise{
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
		ID:          userID,
		Username:    username,
	}, nil
}

// Log возвращает журнал пользователя с записями в диапазоне [from, to],
// обрезанный до первых limit записей.
func (s *TrackerService) Log(ctx context.Context, userID string, q models.LogQuery) (*models.UserLog, error) {
	const op = "services.tracker.Log"

	var filter models.LogFilter
	if q.From != "" {
		from, ok := datenorm.Normalize(q.From)
		if !ok {
			return nil, fmt.Errorf("%s: %w", op, &models.InvalidDateError{Param: "from"})
		}
		filter.From = &from
	}
	if q.To != "" {
		to, ok := datenorm.Normalize(q.To)
		if !ok {
			return nil, fmt.Errorf("%s: %w", op, &models.InvalidDateError{Param: "to"})
		}
		filter.To = &to
	}

	limit := parseLimit(q.Limit)

	userLog, err := s.repo.GetLog(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if userLog.Log == nil {
		userLog.Log = []models.Exercise{}
	}
	if limit > 0 && len(userLog.Log) > limit {
		userLog.Log = userLog.Log[:limit]
	}
	return userLog, nil
}

func parseDuration(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, validation.Required("duration")
	}
	d, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, validation.CastError("duration", raw)
	}
	return d, nil
}

// parseLimit берет целое число в начале строки: "2abc" и "2.5" дают 2.
// Строка без числа и неположительное значение означают отсутствие лимита.
func parseLimit(raw string) int {
	limit, ok := datenorm.LeadingInt(raw)
	if !ok || limit <= 0 {
		return 0
	}
	if limit > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(limit)
}
