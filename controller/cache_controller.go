// api/controller/cache_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EivorRrz/restro/api/util"
)

// CacheController exposes the coarse per-kind cache flush to admins.
type CacheController struct {
	cacheService *util.CacheService
}

func NewCacheController(cacheService *util.CacheService) *CacheController {
	return &CacheController{cacheService: cacheService}
}

func (cc *CacheController) RegisterRoutes(r *gin.RouterGroup, mw RouteMiddleware) {
	r.DELETE("/cache/:kind", mw.AdminOnly(cc.FlushKind)...)
}

func (cc *CacheController) FlushKind(c *gin.Context) {
	kind, err := util.ParseEntityKind(c.Param("kind"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to flush cache")
		return
	}
	deleted := cc.cacheService.InvalidateKind(c.Request.Context(), kind)
	util.RespondWithData(c, http.StatusOK, "Cache flushed", gin.H{"kind": kind, "deleted": deleted})
}
