package middleware

import "github.com/gin-gonic/gin"

// sessionSubjectKey is the key used to store the unlocked session's subject
// in the request context. Using a custom type prevents collisions.
const sessionSubjectKey = contextKey("sessionSubject")

// GetSessionSubjectFromContext retrieves the unlocked session subject from
// the Gin context. It returns the subject and a boolean indicating if it was
// found.
func GetSessionSubjectFromContext(c *gin.Context) (string, bool) {
	subjectVal := c.Request.Context().Value(sessionSubjectKey)
	if subjectVal == nil {
		return "", false
	}

	subject, ok := subjectVal.(string)
	if !ok {
		// This should not happen if the auth middleware sets it correctly.
		return "", false
	}

	return subject, true
}
