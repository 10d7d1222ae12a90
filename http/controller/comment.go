package controller

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ola007-cpu/webApp/entity"
	"github.com/ola007-cpu/webApp/http/controller/dto"
	"github.com/ola007-cpu/webApp/utils"
)

// ListComments returns all comments for one video, newest first.
func (ctrl *Controller) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	videoIDStr := c.Query("videoId")
	if videoIDStr == "" {
		utils.JSON400(c, utils.ReasonInvalidInput, "videoId is required")
		return
	}

	videoID, err := uuid.Parse(videoIDStr)
	if err != nil {
		utils.JSON400(c, utils.ReasonInvalidReference, "Invalid videoId")
		return
	}

	comments, err := ctrl.Comments.ListByVideoID(ctx, videoID)
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to list comments for video %s", videoIDStr)
		utils.JSON500(c, utils.ReasonInternal, "Failed to fetch comments")
		return
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, dto.NewCommentResponse(&comments[i]))
	}
	utils.JSON200(c, out)
}

// CreateComment records a comment against an existing video. The
// reference is validated before anything is persisted; a bad videoId
// writes nothing.
func (ctrl *Controller) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VideoID == "" || strings.TrimSpace(req.Text) == "" {
		utils.JSON400(c, utils.ReasonInvalidInput, "videoId and text are required")
		return
	}

	videoID, err := uuid.Parse(req.VideoID)
	if err != nil {
		utils.JSON400(c, utils.ReasonInvalidReference, "Invalid videoId")
		return
	}

	exists, err := ctrl.Videos.Exists(ctx, videoID)
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Comment] Reference check failed for video %s", req.VideoID)
		utils.JSON500(c, utils.ReasonInternal, "Failed to create comment")
		return
	}
	if !exists {
		utils.JSON400(c, utils.ReasonInvalidReference, "videoId does not reference an existing video")
		return
	}

	comment := &entity.Comment{
		VideoID: videoID,
		UserID:  utils.ViewerFromContext(c, entity.AnonymousCommenter),
		Text:    req.Text,
	}
	if err := ctrl.Comments.Create(ctx, comment); err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Comment] Create failed for video %s", req.VideoID)
		utils.JSON500(c, utils.ReasonInternal, "Failed to create comment")
		return
	}

	utils.JSON201(c, dto.NewCommentResponse(comment))
}
