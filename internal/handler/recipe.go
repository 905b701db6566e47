package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/recipe-book/backend/internal/model"
	"github.com/recipe-book/backend/internal/service"
)

const (
	msgRecipeNotFound = "해당 데이터가 없습니다."
	msgNoMyRecipes    = "작성한 레시피가 없습니다."
)

type RecipeHandler struct {
	svc *service.RecipeService
}

func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// CreateRecipe godoc
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RecipeRequest true "Recipe payload"
// @Success 200 {object} model.ResultResponse
// @Failure 400 {object} model.FailResponse
// @Failure 401 {object} model.AuthErrorResponse
// @Failure 500 {object} model.FailResponse
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req model.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	user := GetAuthUser(c)
	if err := h.svc.Create(c.Request.Context(), user.ID, req.Input()); err != nil {
		writeFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, model.ResultResponse{Result: model.ResultSuccess})
}

// ListRecipes godoc
// @Summary List all recipes
// @Tags recipes
// @Produce json
// @Success 200 {object} model.RecipeListResponse
// @Failure 500 {object} model.FailResponse
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, model.RecipeListResponse{
		Result: model.ResultSuccess,
		Items:  items,
		Count:  len(items),
	})
}

// GetRecipe godoc
// @Summary Get recipe
// @Description An unknown id answers 400, not 404.
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} model.RecipeItemResponse
// @Failure 400 {object} model.MessageResponse
// @Failure 500 {object} model.FailResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	items, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusBadRequest, model.MessageResponse{
				Result:  model.ResultFail,
				Message: msgRecipeNotFound,
			})
			return
		}
		writeFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, model.RecipeItemResponse{
		Result: model.ResultSuccess,
		Item:   items,
	})
}

// UpdateRecipe godoc
// @Summary Update own recipe
// @Description Rows owned by another user are left untouched and the call still succeeds.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param request body model.RecipeRequest true "Recipe payload"
// @Success 200 {object} model.ResultResponse
// @Failure 400 {object} model.FailResponse
// @Failure 401 {object} model.AuthErrorResponse
// @Failure 500 {object} model.FailResponse
// @Router /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req model.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	user := GetAuthUser(c)
	if err := h.svc.Update(c.Request.Context(), id, user.ID, req.Input()); err != nil {
		writeFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, model.ResultResponse{Result: model.ResultSuccess})
}

// DeleteRecipe godoc
// @Summary Delete own recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} model.ResultResponse
// @Failure 401 {object} model.AuthErrorResponse
// @Failure 500 {object} model.FailResponse
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	user := GetAuthUser(c)
	if err := h.svc.Delete(c.Request.Context(), id, user.ID); err != nil {
		writeFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, model.ResultResponse{Result: model.ResultSuccess})
}

// PublishRecipe godoc
// @Summary Publish recipe
// @Description No authentication or ownership check.
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} model.ResultResponse
// @Failure 500 {object} model.FailResponse
// @Router /recipes/{id}/publish [put]
func (h *RecipeHandler) PublishRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.svc.Publish(c.Request.Context(), id); err != nil {
		writeFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, model.ResultResponse{Result: model.ResultSuccess})
}

// UnpublishRecipe godoc
// @Summary Unpublish recipe
// @Description No authentication or ownership check.
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} model.ResultResponse
// @Failure 500 {object} model.FailResponse
// @Router /recipes/{id}/publish [delete]
func (h *RecipeHandler) UnpublishRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.svc.Unpublish(c.Request.Context(), id); err != nil {
		writeFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, model.ResultResponse{Result: model.ResultSuccess})
}

// ListMyRecipes godoc
// @Summary List caller's recipes
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.RecipeListResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.AuthErrorResponse
// @Failure 500 {object} model.FailResponse
// @Router /recipes/me [get]
func (h *RecipeHandler) ListMyRecipes(c *gin.Context) {
	user := GetAuthUser(c)
	items, err := h.svc.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msgNoMyRecipes})
			return
		}
		writeFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, model.RecipeListResponse{
		Result: model.ResultSuccess,
		Items:  items,
		Count:  len(items),
	})
}

// recipeID 는 정수가 아닌 :id 를 라우트 불일치로 보고 404 를 쓴다.
func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeFail(c, http.StatusNotFound, "invalid recipe id")
		return 0, false
	}
	return id, true
}

func writeFail(c *gin.Context, status int, msg string) {
	c.JSON(status, model.FailResponse{Result: model.ResultFail, Error: msg})
}
