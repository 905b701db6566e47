package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/recipe-book/backend/internal/config"
	"github.com/recipe-book/backend/internal/logger"
	"github.com/recipe-book/backend/internal/service"
	"go.uber.org/zap"
)

// NewRouter 는 전체 HTTP 라우트를 등록한다.
func NewRouter(authSvc *service.AuthService, recipeSvc *service.RecipeService, cors config.CORSConfig, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(logger.GinLogger(log), logger.GinRecovery(log))
	if len(cors.AllowedOrigins) > 0 {
		router.Use(CORSMiddleware(cors))
	}

	recipes := NewRecipeHandler(recipeSvc)
	users := NewUserHandler(authSvc)
	auth := AuthMiddleware(authSvc)

	router.GET("/", Root)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPIDoc)

	router.POST("/recipes", auth, recipes.CreateRecipe)
	router.GET("/recipes", recipes.ListRecipes)
	router.GET("/recipes/me", auth, recipes.ListMyRecipes)
	router.GET("/recipes/:id", recipes.GetRecipe)
	router.PUT("/recipes/:id", auth, recipes.UpdateRecipe)
	router.DELETE("/recipes/:id", auth, recipes.DeleteRecipe)
	// 공개 여부 변경은 인증 없이 열려 있다.
	router.PUT("/recipes/:id/publish", recipes.PublishRecipe)
	router.DELETE("/recipes/:id/publish", recipes.UnpublishRecipe)

	router.POST("/user/register", users.Register)
	router.POST("/user/login", users.Login)
	router.DELETE("/user/logout", auth, users.Logout)

	return router
}
