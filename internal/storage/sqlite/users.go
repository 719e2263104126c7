package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

func (s *Store) CreateUser(user models.User) (models.User, error) {
	now := time.Now()
	res, err := s.db.Exec(`
		INSERT INTO users (username, password_hash, first_name, last_name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, nullString(user.FirstName), nullString(user.LastName), formatTime(now))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, storage.ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("read inserted user id: %w", err)
	}
	user.ID = id
	user.CreatedAt = now
	return user, nil
}

func (s *Store) GetUser(id int64) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, username, password_hash, first_name, last_name, created_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (s *Store) GetUserByUsername(username string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, username, password_hash, first_name, last_name, created_at
		FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var firstName, lastName sql.NullString
	var createdAt string

	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &firstName, &lastName, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("scan user: %w", err)
	}

	u.FirstName = firstName.String
	u.LastName = lastName.String
	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
