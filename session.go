package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DSU-DefSec/harmony-viewer/harmony"
)

const colorKey = "color"

// getUUID returns a randomly generated UUID
func getUUID() string {
	return uuid.New().String()
}

// initCookies uses gin-contrib/sessions{/cookie} to initialize a cookie store.
// Without a configured secret a random one is generated, so remembered colors
// do not survive a restart.
func initCookies(r *gin.Engine, secret string) {
	if secret == "" {
		secret = getUUID()
	}
	r.Use(sessions.Sessions("harmony-viewer", cookie.NewStore([]byte(secret))))
}

// getColorOptional returns the base color remembered for this visitor, or
// the configured default. An unparseable remembered color is forgotten.
func getColorOptional(c *gin.Context) string {
	session := sessions.Default(c)
	if color, ok := session.Get(colorKey).(string); ok && color != "" {
		if _, err := harmony.ParseHex(color); err == nil {
			return color
		}
		debugPrint("dropping invalid session color", color)
		session.Delete(colorKey)
		if err := session.Save(); err != nil {
			errorPrint("saving session:", err)
		}
	}
	return hvConf.DefaultColor
}

func saveColor(c *gin.Context, color string) error {
	session := sessions.Default(c)
	session.Set(colorKey, color)
	return session.Save()
}
