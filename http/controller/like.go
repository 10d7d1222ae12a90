package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ola007-cpu/webApp/http/controller/dto"
	"github.com/ola007-cpu/webApp/infra"
	"github.com/ola007-cpu/webApp/utils"
)

// LikeVideo increments a video's like counter by exactly 1. The
// increment happens inside the document store, so concurrent likes
// from different viewers cannot lose updates. An id that resolves to
// no record is acknowledged anyway and only logged.
func (ctrl *Controller) LikeVideo(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VideoID == "" {
		utils.JSON400(c, utils.ReasonInvalidInput, "videoId is required")
		return
	}

	id, err := uuid.Parse(req.VideoID)
	if err != nil {
		utils.JSON400(c, utils.ReasonInvalidReference, "Invalid videoId")
		return
	}

	rows, err := ctrl.Videos.IncrementLikes(ctx, id)
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Like] Increment failed for video %s", req.VideoID)
		utils.JSON500(c, utils.ReasonInternal, "Failed to like video")
		return
	}
	if rows == 0 {
		ctrl.Logger.WarningWithContextf(ctx, "[Like] Increment for %s touched no rows", req.VideoID)
	}

	if ctrl.Cache != nil {
		if err := ctrl.Cache.Delete(ctx, infra.VideoCacheKey(req.VideoID)); err != nil {
			ctrl.Logger.WarningWithContextf(ctx, "[Like] Cache invalidation failed for %s: %v", req.VideoID, err)
		}
	}

	utils.JSON200(c, dto.LikeResponse{Success: true})
}
