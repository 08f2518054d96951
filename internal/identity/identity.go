// ABOUTME: Identity resolution for the acting TeamUp user
// ABOUTME: Picks the user id from flag, environment, or config

package identity

import (
	"os"

	"github.com/Aditya-web3/hack-team-up-now/internal/config"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

// CurrentUserID returns the id of the user acting as "me".
// If override is provided, uses that. Otherwise uses $TEAMUP_USER, then the
// config file, then config.DefaultUser.
func CurrentUserID(override string, cfg *config.Config) string {
	if override != "" {
		return override
	}
	if id := os.Getenv("TEAMUP_USER"); id != "" {
		return id
	}
	if cfg != nil && cfg.CurrentUser != "" {
		return cfg.CurrentUser
	}
	return config.DefaultUser
}

// Label renders a user as "Name (#id)".
func Label(u models.User) string {
	return u.Name + " (#" + u.ID + ")"
}
