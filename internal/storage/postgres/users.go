package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

func (s *Store) CreateUser(user models.User) (models.User, error) {
	err := s.db.QueryRow(`
		INSERT INTO users (username, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		user.Username, user.PasswordHash, nullString(user.FirstName), nullString(user.LastName),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *Store) GetUser(id int64) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, username, password_hash, first_name, last_name, created_at
		FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *Store) GetUserByUsername(username string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, username, password_hash, first_name, last_name, created_at
		FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var firstName, lastName sql.NullString

	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &firstName, &lastName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("scan user: %w", err)
	}

	u.FirstName = firstName.String
	u.LastName = lastName.String
	return u, nil
}
