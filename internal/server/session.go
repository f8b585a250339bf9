package server

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionLoggedInKey = "logged_in"

// authSession is the typed view of the cookie session. A missing flag reads
// as false, so "absent" and "explicitly false" behave identically.
type authSession struct {
	LoggedIn bool
}

func currentSession(c *gin.Context) authSession {
	v, ok := sessions.Default(c).Get(sessionLoggedInKey).(bool)
	return authSession{LoggedIn: ok && v}
}

func setLoggedIn(c *gin.Context) error {
	s := sessions.Default(c)
	s.Set(sessionLoggedInKey, true)
	return s.Save()
}

// clearSession destroys all session state. Safe to call on a session that
// was never authenticated.
func clearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}
