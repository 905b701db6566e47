package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipe-book/backend/internal/model"
	"github.com/recipe-book/backend/internal/service"
)

const (
	msgInvalidPasswordLength = "비밀번호 길이가 올바르지 않습니다."
	msgEmailTaken            = "이미 가입된 이메일입니다."
	msgNotMember             = "등록된 회원이 아닙니다."
	msgWrongPassword         = "비밀번호가 틀렸습니다."
)

type UserHandler struct {
	svc *service.AuthService
}

func NewUserHandler(svc *service.AuthService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary Register a new user
// @Description Email must be syntactically valid; password must be 4 to 14 characters.
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Username, email and password"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.FailResponse
// @Router /user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	token, err := h.svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{Result: model.ResultSuccess, AccessToken: token})
}

// Login godoc
// @Summary Login
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.FailResponse
// @Router /user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFail(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{Result: model.ResultSuccess, AccessToken: token})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented access token for the life of the process.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ResultResponse
// @Failure 401 {object} model.AuthErrorResponse
// @Router /user/logout [delete]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(GetAuthUser(c)); err != nil {
		abortUnauthorized(c, msgInvalidToken)
		return
	}
	c.JSON(http.StatusOK, model.ResultResponse{Result: model.ResultSuccess})
}

func writeUserError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: vErr.Message})
	case errors.Is(err, service.ErrInvalidPasswordLength):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msgInvalidPasswordLength})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msgEmailTaken})
	case errors.Is(err, service.ErrNotMember):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msgNotMember})
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msgWrongPassword})
	default:
		writeFail(c, http.StatusInternalServerError, err.Error())
	}
}
