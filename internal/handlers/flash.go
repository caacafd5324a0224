package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash message kinds, surfaced on the next page the user lands on.
const (
	flashSuccess = "success"
	flashError   = "error"
)

func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	_ = session.Save()
}

// takeFlashes drains pending flash messages from the session.
func takeFlashes(c *gin.Context) map[string][]string {
	session := sessions.Default(c)
	messages := make(map[string][]string)
	for _, kind := range []string{flashSuccess, flashError} {
		for _, flash := range session.Flashes(kind) {
			if text, ok := flash.(string); ok {
				messages[kind] = append(messages[kind], text)
			}
		}
	}
	_ = session.Save()
	return messages
}
