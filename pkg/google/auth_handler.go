package google

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type authRedirect struct {
	RedirectUrl string `json:"redirectUrl"`
}

// Auth implements Google sign-in. The exchanged token is only used to read
// the user's profile; no Google API access is retained afterwards.
type Auth struct {
	db          *pgxpool.Pool
	userService user.Service
	oauthConfig *oauth2.Config
}

func NewAuth(db *pgxpool.Pool, userService user.Service, cfg config.Application) *Auth {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Google.ClientId,
		ClientSecret: cfg.Google.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  cfg.Host + "/api/auth/google/callback",
		Scopes:       []string{oauth2api.UserinfoEmailScope, oauth2api.UserinfoProfileScope},
	}
	return &Auth{db: db, userService: userService, oauthConfig: oauthConfig}
}

// OAuthLogin hands the frontend a Google consent URL. The state carries the
// final redirect target plus a stored nonce so the callback can be matched
// to this login attempt.
func (a *Auth) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	stateNonce := uuid.New().String()
	finalUrl := r.URL.Query().Get("finalUrl")

	_, err := a.db.Exec(r.Context(), "INSERT INTO oauth_state (nonce) VALUES ($1)", stateNonce)
	if err != nil {
		log.Errorf("failed to store oauth nonce: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "internal", "Failed to handle Google authentication", "")
		return
	}

	log.Tracef("Redirecting to Google auth URL with nonce: %s", stateNonce)
	u := a.oauthConfig.AuthCodeURL(finalUrl + "|" + stateNonce)

	rest.WriteJSON(w, http.StatusOK, authRedirect{RedirectUrl: u})
}

func (a *Auth) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("code")
	state := r.FormValue("state")

	parts := strings.SplitN(state, "|", 2)
	if len(parts) != 2 {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "malformed state", "")
		return
	}
	finalUrl := parts[0]
	nonce := parts[1]

	tag, err := a.db.Exec(r.Context(), "DELETE FROM oauth_state WHERE nonce = $1", nonce)
	if err != nil || tag.RowsAffected() == 0 {
		log.Errorf("unknown or expired oauth nonce %s: %v", nonce, err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	token, err := a.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		log.Errorf("unable to exchange code for token: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	profile, err := a.fetchProfile(r.Context(), token)
	if err != nil {
		log.Errorf("unable to fetch Google profile: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	currentUser, err := a.userService.FindOrCreateByEmail(r.Context(), profile.Email, profile.Name)
	if err != nil {
		log.Errorf("unable to resolve user %s: %v", profile.Email, err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	log.Debugf("Google sign-in completed for user %s", currentUser.Uid)
	http.Redirect(w, r, finalUrl+"?success=true&uid="+currentUser.Uid, http.StatusFound)
}

func (a *Auth) fetchProfile(ctx context.Context, token *oauth2.Token) (*oauth2api.Userinfo, error) {
	client := a.oauthConfig.Client(ctx, token)
	service, err := oauth2api.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("could not create oauth2 service: %w", err)
	}
	profile, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("could not get userinfo: %w", err)
	}
	return profile, nil
}
