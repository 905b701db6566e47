package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/recipe-book/backend/internal/model"
)

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	byMail map[string]*model.User

	createErr error
	getErr    error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byMail: map[string]*model.User{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, username, email, hash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return 0, f.createErr
	}
	if _, ok := f.byMail[email]; ok {
		return 0, &pgconn.PgError{Code: "23505"}
	}
	f.nextID++
	f.byMail[email] = &model.User{ID: f.nextID, Username: username, Email: email, Password: hash}
	return f.nextID, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byMail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byMail)
}

type fakeRecipes struct {
	mu     sync.Mutex
	nextID int64
	rows   []model.Recipe
	err    error
}

func (f *fakeRecipes) CreateRecipe(_ context.Context, userID int64, in model.RecipeInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	f.rows = append(f.rows, model.Recipe{
		ID:            f.nextID,
		UserID:        userID,
		Name:          in.Name,
		Description:   in.Description,
		NumOfServings: in.NumOfServings,
		CookTime:      in.CookTime,
		Directions:    in.Directions,
	})
	return nil
}

func (f *fakeRecipes) ListRecipes(_ context.Context) ([]model.Recipe, error) {
	return f.filter(func(model.Recipe) bool { return true })
}

func (f *fakeRecipes) GetRecipesByID(_ context.Context, id int64) ([]model.Recipe, error) {
	return f.filter(func(r model.Recipe) bool { return r.ID == id })
}

func (f *fakeRecipes) ListRecipesByUser(_ context.Context, userID int64) ([]model.Recipe, error) {
	return f.filter(func(r model.Recipe) bool { return r.UserID == userID })
}

func (f *fakeRecipes) UpdateRecipe(_ context.Context, id, userID int64, in model.RecipeInput) (int64, error) {
	return f.mutate(func(r *model.Recipe) bool { return r.ID == id && r.UserID == userID }, func(r *model.Recipe) {
		r.Name, r.Description, r.NumOfServings, r.CookTime, r.Directions = in.Name, in.Description, in.NumOfServings, in.CookTime, in.Directions
	})
}

func (f *fakeRecipes) DeleteRecipe(_ context.Context, id, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	kept := f.rows[:0]
	var n int64
	for _, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return n, nil
}

func (f *fakeRecipes) SetRecipePublish(_ context.Context, id int64, publish bool) (int64, error) {
	return f.mutate(func(r *model.Recipe) bool { return r.ID == id }, func(r *model.Recipe) { r.IsPublish = publish })
}

func (f *fakeRecipes) filter(keep func(model.Recipe) bool) ([]model.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Recipe{}
	for _, r := range f.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipes) mutate(match func(*model.Recipe) bool, apply func(*model.Recipe)) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for i := range f.rows {
		if match(&f.rows[i]) {
			apply(&f.rows[i])
			n++
		}
	}
	return n, nil
}
