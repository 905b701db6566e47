package handler

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/recipe-book/backend/internal/model"
)

// memStore 는 "user"/recipe 테이블을 흉내 내는 인메모리 저장소다.
type memStore struct {
	mu      sync.Mutex
	users   map[string]model.User
	recipes []model.Recipe
	userSeq int64
	recSeq  int64
	err     error
}

func newMemStore() *memStore {
	return &memStore{users: map[string]model.User{}}
}

func (m *memStore) CreateUser(_ context.Context, username, email, hash string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.users[email]; ok {
		return 0, &pgconn.PgError{Code: "23505"}
	}
	m.userSeq++
	m.users[email] = model.User{ID: m.userSeq, Username: username, Email: email, Password: hash}
	return m.userSeq, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (m *memStore) CreateRecipe(_ context.Context, userID int64, in model.RecipeInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.recSeq++
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.recipes = append(m.recipes, model.Recipe{
		ID: m.recSeq, UserID: userID,
		Name: in.Name, Description: in.Description, NumOfServings: in.NumOfServings,
		CookTime: in.CookTime, Directions: in.Directions,
		CreatedAt: now, UpdatedAt: now,
	})
	return nil
}

func (m *memStore) ListRecipes(_ context.Context) ([]model.Recipe, error) {
	return m.find(func(model.Recipe) bool { return true })
}

func (m *memStore) GetRecipesByID(_ context.Context, id int64) ([]model.Recipe, error) {
	return m.find(func(r model.Recipe) bool { return r.ID == id })
}

func (m *memStore) ListRecipesByUser(_ context.Context, userID int64) ([]model.Recipe, error) {
	return m.find(func(r model.Recipe) bool { return r.UserID == userID })
}

func (m *memStore) UpdateRecipe(_ context.Context, id, userID int64, in model.RecipeInput) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for i := range m.recipes {
		r := &m.recipes[i]
		if r.ID == id && r.UserID == userID {
			r.Name, r.Description, r.NumOfServings, r.CookTime, r.Directions = in.Name, in.Description, in.NumOfServings, in.CookTime, in.Directions
			n++
		}
	}
	return n, nil
}

func (m *memStore) DeleteRecipe(_ context.Context, id, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	kept := m.recipes[:0]
	var n int64
	for _, r := range m.recipes {
		if r.ID == id && r.UserID == userID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	m.recipes = kept
	return n, nil
}

func (m *memStore) SetRecipePublish(_ context.Context, id int64, publish bool) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for i := range m.recipes {
		if m.recipes[i].ID == id {
			m.recipes[i].IsPublish = publish
			n++
		}
	}
	return n, nil
}

func (m *memStore) find(keep func(model.Recipe) bool) ([]model.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Recipe{}
	for _, r := range m.recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) fail(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}
