package api

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
)

// MountFrontend serves unmatched paths from staticDir, or proxies them to
// devURL when no static dir is configured. With neither set it does nothing.
func MountFrontend(r *gin.Engine, staticDir, devURL string) error {
	switch {
	case staticDir != "":
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	case devURL != "":
		u, err := url.Parse(devURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid dev frontend url %q", devURL)
		}
		rp := httputil.NewSingleHostReverseProxy(u)
		// proxied responses must not be cached either
		rp.ModifyResponse = func(res *http.Response) error {
			res.Header.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			res.Header.Set("Pragma", "no-cache")
			res.Header.Set("Expires", "0")
			return nil
		}
		r.NoRoute(gin.WrapH(rp))
	}
	return nil
}
