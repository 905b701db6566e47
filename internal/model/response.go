package model

const (
	ResultSuccess = "success"
	ResultFail    = "fail"
)

type ResultResponse struct {
	Result string `json:"result"`
}

type FailResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

type MessageResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthErrorResponse - 인증 미들웨어 거절 응답
type AuthErrorResponse struct {
	Msg string `json:"msg"`
}

type RecipeListResponse struct {
	Result string           `json:"result"`
	Items  []RecipeResponse `json:"items"`
	Count  int              `json:"count"`
}

type RecipeItemResponse struct {
	Result string           `json:"result"`
	Item   []RecipeResponse `json:"item"`
}

type TokenResponse struct {
	Result      string `json:"result"`
	AccessToken string `json:"access_token"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
