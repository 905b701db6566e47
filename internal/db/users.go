package db

import (
	"context"

	"github.com/recipe-book/backend/internal/model"
)

// CreateUser 는 새 회원을 넣고 DB 가 만든 id 를 돌려준다.
func (db *Postgres) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	query := `
		INSERT INTO "user" (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, username, email, passwordHash).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetUserByEmail 은 없으면 pgx.ErrNoRows 를 그대로 돌려준다.
func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, username, email, password, created_at, updated_at
		FROM "user"
		WHERE email = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
