package controllers

import (
	"net/http"

	"carwash-backend/i18n"
	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthController struct {
	base
}

func NewAuthController(m *store.Manager) *AuthController {
	return &AuthController{base: base{Manager: m}}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LanguageInput struct {
	Language string `json:"language" binding:"required"`
}

// Register creates an account. It does not establish a session; the client
// logs in afterwards.
func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lang := i18n.DetectLanguage(c.GetHeader("Accept-Language"))
	st := a.Manager.SignUp(input.Email, input.Password)

	if note := st.LastNotification(); note != nil && note.Level == store.LevelError {
		utils.RespondWithError(c, http.StatusConflict, i18n.T(lang, note.Message))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(lang, i18n.KeySignupSuccess),
	})
}

// Login runs the store login flow; success is observed through the session
// becoming populated, failure through the notification it left behind.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	lang := i18n.DetectLanguage(c.GetHeader("Accept-Language"))
	st := a.Manager.Login(input.Email, input.Password)

	user := st.User()
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, i18n.T(lang, i18n.KeyLoginFailed))
		return
	}

	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	maxAge := 24 * 3600
	c.SetCookie("token", token, maxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"language": user.Language,
		},
	})
}

// Logout tears the session down. Always succeeds from the client's point of
// view; the remote sign-out is best effort.
func (a *AuthController) Logout(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	uid, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	a.Manager.Logout(uid)
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user.
func (a *AuthController) Me(c *gin.Context) {
	st, ok := a.storeFor(c)
	if !ok {
		return
	}
	user := st.User()
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"language": user.Language,
		},
	})
}

// Session is the auth-gate probe: it answers for unauthenticated callers
// too, so it is registered outside the middleware.
func (a *AuthController) Session(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusOK, gin.H{
			"isInitialized":   true,
			"isLoading":       false,
			"isAuthenticated": false,
		})
		return
	}

	uid, err := utils.UserIDFromToken(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"isInitialized":   true,
			"isLoading":       false,
			"isAuthenticated": false,
		})
		return
	}

	st, err := a.Manager.Ensure(uid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"isInitialized":   true,
			"isLoading":       false,
			"isAuthenticated": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isInitialized":   st.IsInitialized(),
		"isLoading":       st.IsLoading(),
		"isAuthenticated": st.IsAuthenticated(),
		"language":        st.Language(),
	})
}

// UpdateLanguage switches the session language.
func (a *AuthController) UpdateLanguage(c *gin.Context) {
	st, ok := a.storeFor(c)
	if !ok {
		return
	}

	var input LanguageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lang := i18n.Language(input.Language)
	if !i18n.Supported(lang) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unsupported language")
		return
	}

	st.SetLanguage(lang)
	c.JSON(http.StatusOK, gin.H{"language": st.Language()})
}
