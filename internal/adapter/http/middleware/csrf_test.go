package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func csrfRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CSRF())

	router.GET("/form", func(c *gin.Context) {
		c.String(http.StatusOK, CSRFToken(c))
	})
	router.POST("/submit", func(c *gin.Context) {
		c.String(http.StatusOK, "submitted")
	})

	return router
}

func TestCSRF_GetIssuesTokenCookie(t *testing.T) {
	RegisterTestingT(t)

	router := csrfRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/form", nil)
	router.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Body.String()).ToNot(BeEmpty())

	cookies := w.Result().Cookies()
	Expect(cookies).ToNot(BeEmpty())
	Expect(cookies[0].Name).To(Equal("csrf_token"))
	Expect(cookies[0].Value).To(Equal(w.Body.String()))
}

func TestCSRF_PostWithoutTokenForbidden(t *testing.T) {
	RegisterTestingT(t)

	router := csrfRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submit", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(http.StatusForbidden))
}

func TestCSRF_PostWithMismatchedTokenForbidden(t *testing.T) {
	RegisterTestingT(t)

	router := csrfRouter()

	// Pick up a real cookie first, then submit a different field value.
	get := httptest.NewRecorder()
	getReq, _ := http.NewRequest("GET", "/form", nil)
	router.ServeHTTP(get, getReq)
	cookie := get.Result().Cookies()[0]

	form := url.Values{"csrf_token": {"wrong-token"}}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(http.StatusForbidden))
}

func TestCSRF_PostWithMatchingTokenAllowed(t *testing.T) {
	RegisterTestingT(t)

	router := csrfRouter()

	get := httptest.NewRecorder()
	getReq, _ := http.NewRequest("GET", "/form", nil)
	router.ServeHTTP(get, getReq)

	cookie := get.Result().Cookies()[0]
	form := url.Values{"csrf_token": {cookie.Value}}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Body.String()).To(Equal("submitted"))
}
