package service

import (
	"context"

	"github.com/recipe-book/backend/internal/model"
	"go.uber.org/zap"
)

// timestampLayout 은 TIMESTAMPTZ 의 마이크로초까지 남긴다 (0 이면 생략).
const timestampLayout = "2006-01-02T15:04:05.999999Z07:00"

type RecipeRepo interface {
	CreateRecipe(ctx context.Context, userID int64, in model.RecipeInput) error
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	GetRecipesByID(ctx context.Context, id int64) ([]model.Recipe, error)
	ListRecipesByUser(ctx context.Context, userID int64) ([]model.Recipe, error)
	UpdateRecipe(ctx context.Context, id, userID int64, in model.RecipeInput) (int64, error)
	DeleteRecipe(ctx context.Context, id, userID int64) (int64, error)
	SetRecipePublish(ctx context.Context, id int64, publish bool) (int64, error)
}

type RecipeService struct {
	repo RecipeRepo
	log  *zap.Logger
}

func NewRecipeService(repo RecipeRepo, log *zap.Logger) *RecipeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecipeService{repo: repo, log: log}
}

func (s *RecipeService) Create(ctx context.Context, userID int64, in model.RecipeInput) error {
	if err := s.repo.CreateRecipe(ctx, userID, in); err != nil {
		s.log.Error("failed to create recipe", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *RecipeService) List(ctx context.Context) ([]model.RecipeResponse, error) {
	rows, err := s.repo.ListRecipes(ctx)
	if err != nil {
		s.log.Error("failed to list recipes", zap.Error(err))
		return nil, err
	}
	return ToRecipeResponses(rows), nil
}

// Get 은 결과가 비어 있으면 ErrRecipeNotFound 를 돌려준다.
func (s *RecipeService) Get(ctx context.Context, id int64) ([]model.RecipeResponse, error) {
	rows, err := s.repo.GetRecipesByID(ctx, id)
	if err != nil {
		s.log.Error("failed to get recipe", zap.Int64("recipe_id", id), zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrRecipeNotFound
	}
	return ToRecipeResponses(rows), nil
}

// ListMine 은 호출자가 작성한 레시피가 없으면 ErrRecipeNotFound 를 돌려준다.
func (s *RecipeService) ListMine(ctx context.Context, userID int64) ([]model.RecipeResponse, error) {
	rows, err := s.repo.ListRecipesByUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to list user recipes", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrRecipeNotFound
	}
	return ToRecipeResponses(rows), nil
}

// Update 는 소유자가 아니어서 0행이 바뀌어도 실패로 보지 않는다. 경고 로그만 남긴다.
func (s *RecipeService) Update(ctx context.Context, id, userID int64, in model.RecipeInput) error {
	n, err := s.repo.UpdateRecipe(ctx, id, userID, in)
	if err != nil {
		s.log.Error("failed to update recipe", zap.Int64("recipe_id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		s.log.Warn("recipe update matched no rows", zap.Int64("recipe_id", id), zap.Int64("user_id", userID))
	}
	return nil
}

func (s *RecipeService) Delete(ctx context.Context, id, userID int64) error {
	n, err := s.repo.DeleteRecipe(ctx, id, userID)
	if err != nil {
		s.log.Error("failed to delete recipe", zap.Int64("recipe_id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		s.log.Warn("recipe delete matched no rows", zap.Int64("recipe_id", id), zap.Int64("user_id", userID))
	}
	return nil
}

// Publish / Unpublish 는 인증과 소유자 확인 없이 공개 여부만 바꾼다.
func (s *RecipeService) Publish(ctx context.Context, id int64) error {
	return s.setPublish(ctx, id, true)
}

func (s *RecipeService) Unpublish(ctx context.Context, id int64) error {
	return s.setPublish(ctx, id, false)
}

func (s *RecipeService) setPublish(ctx context.Context, id int64, publish bool) error {
	n, err := s.repo.SetRecipePublish(ctx, id, publish)
	if err != nil {
		s.log.Error("failed to set recipe publish", zap.Int64("recipe_id", id), zap.Bool("publish", publish), zap.Error(err))
		return err
	}
	if n == 0 {
		s.log.Warn("recipe publish matched no rows", zap.Int64("recipe_id", id))
	}
	return nil
}

// ToRecipeResponses 는 시간 필드를 RFC 3339 문자열로 바꾼 응답 목록을 만든다.
func ToRecipeResponses(rows []model.Recipe) []model.RecipeResponse {
	list := make([]model.RecipeResponse, 0, len(rows))
	for _, r := range rows {
		list = append(list, model.RecipeResponse{
			ID:            r.ID,
			UserID:        r.UserID,
			Name:          r.Name,
			Description:   r.Description,
			NumOfServings: r.NumOfServings,
			CookTime:      r.CookTime,
			Directions:    r.Directions,
			IsPublish:     r.IsPublish,
			CreatedAt:     r.CreatedAt.Format(timestampLayout),
			UpdatedAt:     r.UpdatedAt.Format(timestampLayout),
		})
	}
	return list
}
