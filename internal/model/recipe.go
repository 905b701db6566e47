package model

import "time"

// Recipe - recipe 테이블 한 행
type Recipe struct {
	ID            int64
	UserID        int64
	Name          string
	Description   string
	NumOfServings int
	CookTime      int
	Directions    string
	IsPublish     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecipeRequest - 레시피 생성/수정 요청 본문. 모든 필드 필수.
// 인분/조리시간은 숫자 문자열도 받는다.
type RecipeRequest struct {
	Name          *string  `json:"name" binding:"required"`
	Description   *string  `json:"description" binding:"required"`
	NumOfServings *FlexInt `json:"num_of_servings" binding:"required" swaggertype:"integer"`
	CookTime      *FlexInt `json:"cook_time" binding:"required" swaggertype:"integer"`
	Directions    *string  `json:"directions" binding:"required"`
}

// RecipeInput - 검증이 끝난 레시피 입력값 (DB 저장용)
type RecipeInput struct {
	Name          string
	Description   string
	NumOfServings int
	CookTime      int
	Directions    string
}

func (r RecipeRequest) Input() RecipeInput {
	return RecipeInput{
		Name:          deref(r.Name),
		Description:   deref(r.Description),
		NumOfServings: int(deref(r.NumOfServings)),
		CookTime:      int(deref(r.CookTime)),
		Directions:    deref(r.Directions),
	}
}

// RecipeResponse - 응답용. 시간 필드는 ISO-8601 문자열로 내려준다.
type RecipeResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	NumOfServings int    `json:"num_of_servings"`
	CookTime      int    `json:"cook_time"`
	Directions    string `json:"directions"`
	IsPublish     bool   `json:"is_publish"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
