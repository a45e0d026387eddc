package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Options returns a handler that answers OPTIONS requests with the
// allowed methods in the "allow" header.
func Options(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Render(http.StatusNoContent, render.JSON{})
	}
}

func OptionsGet(c *gin.Context) {
	Options(http.MethodGet)(c)
}

func OptionsGetPost(c *gin.Context) {
	Options(http.MethodGet, http.MethodPost)(c)
}

func OptionsGetPatchDelete(c *gin.Context) {
	Options(http.MethodGet, http.MethodPatch, http.MethodDelete)(c)
}

func OptionsPut(c *gin.Context) {
	Options(http.MethodPut)(c)
}

func OptionsDelete(c *gin.Context) {
	Options(http.MethodDelete)(c)
}
