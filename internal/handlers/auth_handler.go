package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAccount "github.com/BruksfildServices01/barber-booking/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	tokens       *auth.Tokens
	provider     *auth.OAuthProvider
	cookieSecure bool

	oauthLogin    *ucAccount.OAuthLogin
	register      *ucAccount.Register
	passwordLogin *ucAccount.PasswordLogin
	updateProfile *ucAccount.UpdateProfile

	log *zap.Logger
}

type AuthDeps struct {
	Tokens       *auth.Tokens
	Provider     *auth.OAuthProvider // nil when no provider is configured
	CookieSecure bool

	OAuthLogin    *ucAccount.OAuthLogin
	Register      *ucAccount.Register
	PasswordLogin *ucAccount.PasswordLogin
	UpdateProfile *ucAccount.UpdateProfile

	Log *zap.Logger
}

func NewAuthHandler(d AuthDeps) *AuthHandler {
	return &AuthHandler{
		tokens:        d.Tokens,
		provider:      d.Provider,
		cookieSecure:  d.CookieSecure,
		oauthLogin:    d.OAuthLogin,
		register:      d.Register,
		passwordLogin: d.PasswordLogin,
		updateProfile: d.UpdateProfile,
		log:           d.Log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// ======================================================
// OAUTH
// ======================================================

func (h *AuthHandler) OAuthLogin(c *gin.Context) {
	if h.provider == nil {
		httperr.NotFound(c, "oauth_disabled", "External login is not configured.")
		return
	}

	url, state := h.provider.LoginURL()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.StateCookieName, state, 600, "/", "", h.cookieSecure, true)
	c.Redirect(http.StatusFound, url)
}

func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	if h.provider == nil {
		httperr.NotFound(c, "oauth_disabled", "External login is not configured.")
		return
	}

	// --------------------------------------------------
	// 1) State must match the cookie set on redirect
	// --------------------------------------------------

	state, err := c.Cookie(auth.StateCookieName)
	if err != nil || state == "" || state != c.Query("state") {
		httperr.BadRequest(c, "invalid_state", "Login state mismatch.")
		return
	}
	c.SetCookie(auth.StateCookieName, "", -1, "/", "", h.cookieSecure, true)

	code := c.Query("code")
	if code == "" {
		httperr.BadRequest(c, "missing_code", "Authorization code is required.")
		return
	}

	// --------------------------------------------------
	// 2) Exchange code and upsert the user
	// --------------------------------------------------

	profile, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		h.log.Warn("oauth exchange failed", zap.Error(err))
		httperr.Unauthorized(c, "oauth_failed", "External login failed.")
		return
	}

	user, err := h.oauthLogin.Execute(c.Request.Context(), *profile)
	if err != nil {
		httperr.FromError(c, err, "login_failed")
		return
	}

	// --------------------------------------------------
	// 3) Session cookie
	// --------------------------------------------------

	if _, err := h.startSession(c, user); err != nil {
		httperr.FromError(c, err, "login_failed")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ======================================================
// LOCAL ACCOUNTS
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and password are required.")
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err, "register_failed")
		return
	}

	token, err := h.startSession(c, user)
	if err != nil {
		httperr.FromError(c, err, "register_failed")
		return
	}

	httpresp.Created(c, dto.SessionDTO{Token: token, User: dto.NewUserDTO(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	user, err := h.passwordLogin.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err, "login_failed")
		return
	}

	token, err := h.startSession(c, user)
	if err != nil {
		httperr.FromError(c, err, "login_failed")
		return
	}

	httpresp.OK(c, dto.SessionDTO{Token: token, User: dto.NewUserDTO(user)})
}

// ======================================================
// SESSION
// ======================================================

// Me returns the signed-in user, or null for anonymous callers.
func (h *AuthHandler) Me(c *gin.Context) {
	httpresp.OK(c, dto.NewUserDTO(middleware.CurrentUser(c)))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.cookieSecure, true)
	httpresp.Success(c)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile.")
		return
	}

	user, err := h.updateProfile.Execute(c.Request.Context(), ucAccount.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
		Phone:  req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err, "profile_update_failed")
		return
	}

	httpresp.OK(c, dto.NewUserDTO(user))
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.User) (string, error) {
	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(h.tokens.TTL().Seconds()), "/", "", h.cookieSecure, true)
	return token, nil
}
