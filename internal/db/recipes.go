package db

import (
	"context"

	"github.com/recipe-book/backend/internal/model"
)

const recipeColumns = `id, user_id, name, description, num_of_servings, cook_time, directions, is_publish, created_at, updated_at`

func (db *Postgres) CreateRecipe(ctx context.Context, userID int64, in model.RecipeInput) error {
	query := `
		INSERT INTO recipe (user_id, name, description, num_of_servings, cook_time, directions)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := db.Pool.Exec(ctx, query, userID, in.Name, in.Description, in.NumOfServings, in.CookTime, in.Directions)
	return err
}

func (db *Postgres) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipe ORDER BY id`
	return db.queryRecipes(ctx, query)
}

// GetRecipesByID 는 0개 이상의 행을 돌려준다. 빈 결과 처리는 호출자 몫.
func (db *Postgres) GetRecipesByID(ctx context.Context, id int64) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipe WHERE id = $1`
	return db.queryRecipes(ctx, query, id)
}

func (db *Postgres) ListRecipesByUser(ctx context.Context, userID int64) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipe WHERE user_id = $1 ORDER BY id`
	return db.queryRecipes(ctx, query, userID)
}

// UpdateRecipe 는 id 와 user_id 가 모두 맞는 행만 바꾼다. 바뀐 행 수를 돌려준다.
func (db *Postgres) UpdateRecipe(ctx context.Context, id, userID int64, in model.RecipeInput) (int64, error) {
	query := `
		UPDATE recipe
		SET
			name = $1,
			description = $2,
			num_of_servings = $3,
			cook_time = $4,
			directions = $5,
			updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`
	tag, err := db.Pool.Exec(ctx, query, in.Name, in.Description, in.NumOfServings, in.CookTime, in.Directions, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (db *Postgres) DeleteRecipe(ctx context.Context, id, userID int64) (int64, error) {
	query := `
		DELETE FROM recipe
		WHERE id = $1 AND user_id = $2
	`
	tag, err := db.Pool.Exec(ctx, query, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SetRecipePublish 는 소유자 확인 없이 공개 여부만 바꾼다.
func (db *Postgres) SetRecipePublish(ctx context.Context, id int64, publish bool) (int64, error) {
	query := `
		UPDATE recipe
		SET is_publish = $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := db.Pool.Exec(ctx, query, publish, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (db *Postgres) queryRecipes(ctx context.Context, query string, args ...any) ([]model.Recipe, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Recipe{}
	for rows.Next() {
		var r model.Recipe
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.Name,
			&r.Description,
			&r.NumOfServings,
			&r.CookTime,
			&r.Directions,
			&r.IsPublish,
			&r.CreatedAt,
			&r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
