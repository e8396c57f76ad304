package controllers

import (
	"net/http"

	"carwash-backend/i18n"
	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// base carries the per-user store registry into each controller.
type base struct {
	Manager *store.Manager
}

// storeFor resolves the authenticated user's store from the JWT claim set by
// the auth middleware, rebuilding the session if the server restarted since
// the token was issued.
func (b base) storeFor(c *gin.Context) (*store.Store, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, false
	}

	uid, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return nil, false
	}

	st, err := b.Manager.Ensure(uid)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return nil, false
	}
	return st, true
}

// language picks the response language: explicit ?lang= wins, then the
// session's language, then Accept-Language.
func (b base) language(c *gin.Context, st *store.Store) i18n.Language {
	if q := c.Query("lang"); q != "" {
		if lang := i18n.Language(q); i18n.Supported(lang) {
			return lang
		}
	}
	if st != nil {
		return st.Language()
	}
	return i18n.DetectLanguage(c.GetHeader("Accept-Language"))
}

// notification localizes the store's latest toast for the response body.
func notification(st *store.Store, lang i18n.Language) gin.H {
	note := st.LastNotification()
	if note == nil {
		return nil
	}
	return gin.H{
		"level":   note.Level,
		"message": i18n.T(lang, note.Message),
	}
}
