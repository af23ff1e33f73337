package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carebridge-org/carebridge/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRoleRouter(role string, allowed ...models.RoleType) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
	})
	router.Use(RequireRole(allowed...))
	router.GET("/resource", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireRole_AdminAlwaysPasses(t *testing.T) {
	router := setupRoleRouter("admin", models.RoleVolunteer)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_AllowedRolePasses(t *testing.T) {
	router := setupRoleRouter("volunteer", models.RoleVolunteer)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_DisallowedRoleForbidden(t *testing.T) {
	router := setupRoleRouter("donor", models.RoleVolunteer)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AdminOnlyWhenNoRolesListed(t *testing.T) {
	router := setupRoleRouter("sponsor")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_MissingRoleUnauthorized(t *testing.T) {
	router := setupRoleRouter("")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_UnknownRoleForbidden(t *testing.T) {
	router := setupRoleRouter("superuser", models.RoleVolunteer)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
