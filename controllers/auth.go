package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/logger"
	"github.com/krisdinakr/belle-catalog/middleware"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/services"
	"github.com/krisdinakr/belle-catalog/utils"
)

// verificationExpiresInDays is the lifetime of an email-verification token
const verificationExpiresInDays = 7

// AuthController handles sign-up, sign-in and sign-out
type AuthController struct {
	Users         *services.UserService
	Verifications *services.VerificationService
	Tokens        *services.TokenDenylist
	Tx            services.TxRunner
	Email         *utils.EmailService
}

func NewAuthController(users *services.UserService, verifications *services.VerificationService, tokens *services.TokenDenylist, tx services.TxRunner, email *utils.EmailService) *AuthController {
	return &AuthController{
		Users:         users,
		Verifications: verifications,
		Tokens:        tokens,
		Tx:            tx,
		Email:         email,
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account. The user and its verification token are
// created in one transaction; the verification email goes out after commit.
func (ac *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" || payload.Password == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	exists, err := ac.Users.ExistsByEmail(r.Context(), payload.Email)
	if err != nil {
		logger.Error("sign-up email lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}
	if exists {
		utils.RespondErrorMessage(w, http.StatusConflict, services.ErrEmailTaken.Error())
		return
	}

	hashed, err := utils.CreateHash(payload.Password)
	if err != nil {
		logger.Error("password hashing failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	user := &models.User{Email: payload.Email, Password: hashed}
	verification := &models.Verification{
		Email:       payload.Email,
		AccessToken: uuid.NewString(),
		ExpiresIn:   utils.CreateDateAddDaysFromNow(verificationExpiresInDays),
	}

	err = ac.Tx.RunTransaction(r.Context(), func(ctx context.Context) error {
		if err := ac.Users.Create(ctx, user); err != nil {
			return err
		}
		verification.User = user.ID
		if err := ac.Verifications.Create(ctx, verification); err != nil {
			return err
		}
		return ac.Users.AddVerification(ctx, user.ID, verification.ID)
	})
	if err != nil {
		logger.Error("sign-up transaction failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	if err := ac.Email.SendVerificationEmail(user.Email, verification.AccessToken); err != nil {
		logger.Warn("verification email failed", zap.Error(err), zap.String("email", user.Email))
	}

	accessToken, err := utils.JwtSign(user.ID)
	if err != nil {
		logger.Error("token signing failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]string{"accessToken": accessToken})
}

// SignIn exchanges valid credentials for an access token
func (ac *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" || payload.Password == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	user, err := ac.Users.GetByEmail(r.Context(), payload.Email)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			logger.Error("sign-in lookup failed", zap.Error(err))
		}
		utils.RespondError(w, http.StatusNotFound)
		return
	}
	if !user.ComparePassword(payload.Password) {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	accessToken, err := utils.JwtSign(user.ID)
	if err != nil {
		logger.Error("token signing failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]string{"accessToken": accessToken})
}

// SignOut denylists the caller's token for its remaining lifetime
func (ac *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	ttl := utils.JwtExpiration
	if claims, err := utils.JwtVerify(user.AccessToken); err == nil {
		ttl = time.Until(time.Unix(claims.ExpiresAt, 0))
	}

	if err := ac.Tokens.Revoke(r.Context(), user.AccessToken, ttl); err != nil {
		logger.Error("token revocation failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}

// VerifyEmail confirms an account from a verification token link
func (ac *AuthController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	verification, err := ac.Verifications.GetByToken(r.Context(), token)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound)
		return
	}
	if time.Now().After(verification.ExpiresIn) {
		utils.RespondErrorMessage(w, http.StatusBadRequest, "verification token expired")
		return
	}

	if err := ac.Users.MarkVerified(r.Context(), verification.User); err != nil {
		logger.Error("verification update failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}
