package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// CreateUser сохраняет нового пользователя с пустым журналом.
func (s *Storage) CreateUser(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.postgresql.CreateUser"

	var id string
	query := `INSERT INTO users (username)
			  VALUES ($1)
			  RETURNING uid`
	if err := s.DB.QueryRowContext(ctx, query, username).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, models.ErrUsernameTaken)
		}
		return nil, &models.StorageError{Op: op, Err: err}
	}

	return &models.User{ID: id, Username: username, Log: []models.Exercise{}}, nil
}

// ListUsers возвращает всех пользователей без журналов.
func (s *Storage) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	const op = "storage.postgresql.ListUsers"

	rows, err := s.DB.QueryContext(ctx, `SELECT uid, username FROM users ORDER BY created_at, uid`)
	if err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err = rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, &models.StorageError{Op: op, Err: err}
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, &models.StorageError{Op: op, Err: err}
	}
	return result, nil
}
