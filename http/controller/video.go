package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"gorm.io/datatypes"

	"github.com/ola007-cpu/webApp/entity"
	"github.com/ola007-cpu/webApp/http/controller/dto"
	"github.com/ola007-cpu/webApp/infra"
	"github.com/ola007-cpu/webApp/infra/produce"
	"github.com/ola007-cpu/webApp/utils"
)

// UploadVideo accepts a multipart video payload, writes it to the
// object store, then records the metadata. The object write completes
// before any record references it; a metadata failure after a
// successful write leaves the object orphaned (accepted, logged).
func (ctrl *Controller) UploadVideo(c *gin.Context) {
	ctx, span := otel.Tracer("webapp/http").Start(c.Request.Context(), "upload.pipeline")
	defer span.End()

	fileHeader, err := c.FormFile("video")
	if err != nil {
		utils.JSON400(c, utils.ReasonInvalidInput, "No video file provided")
		return
	}
	caption := c.PostForm("caption")

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}
	if !strings.HasPrefix(contentType, "video/") {
		utils.JSON400(c, utils.ReasonInvalidInput, "Unsupported content type: "+contentType)
		return
	}
	if maxSize := ctrl.Config.EnvConfig.Storage.MaxUploadSize; fileHeader.Size > maxSize {
		utils.JSON400(c, utils.ReasonInvalidInput, "Video file exceeds the upload size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Upload] Failed to open multipart file %q", fileHeader.Filename)
		utils.JSON400(c, utils.ReasonInvalidInput, "Failed to read video file")
		return
	}
	defer file.Close()

	key := infra.NewObjectKey(contentType)
	ctrl.Logger.InfoWithContextf(ctx, "[Upload] Storing %q (size: %d bytes, type: %s) as object %q",
		fileHeader.Filename, fileHeader.Size, contentType, key)

	location, err := ctrl.Objects.Put(ctx, key, file, fileHeader.Size, contentType)
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Upload] Object store write failed for %q", key)
		utils.JSON500(c, utils.ReasonUploadFailed, "Upload failed: "+err.Error())
		return
	}

	uploadInfo, _ := json.Marshal(entity.UploadInfo{
		Filename:    fileHeader.Filename,
		SizeBytes:   fileHeader.Size,
		ContentType: contentType,
	})
	video := &entity.Video{
		VideoURL:  location,
		Caption:   caption,
		UserID:    utils.ViewerFromContext(c, entity.AnonymousUploader),
		Upload:    datatypes.JSON(uploadInfo),
		CreatedAt: time.Now(),
	}
	if err := ctrl.Videos.Create(ctx, video); err != nil {
		// No compensating delete: the stored object stays orphaned.
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Upload] Metadata write failed, object %q is orphaned", key)
		utils.JSON500(c, utils.ReasonUploadFailed, "Upload failed: "+err.Error())
		return
	}

	if ctrl.uploads != nil {
		ctrl.uploads.Add(ctx, 1)
	}
	if ctrl.Events != nil {
		msg := produce.VideoUploadedMessage{
			VideoID:     video.ID.String(),
			Location:    location,
			ContentType: contentType,
			SizeBytes:   fileHeader.Size,
			UserID:      video.UserID,
		}
		if err := ctrl.Events.VideoUploaded(ctx, msg); err != nil {
			ctrl.Logger.WarningWithContextf(ctx, "[Upload] Failed to publish upload event for %s: %v", video.ID, err)
		}
	}

	utils.JSON201(c, dto.UploadResponse{
		Success: true,
		Video:   dto.NewVideoResponse(video, video.VideoURL),
	})
}

// ListVideos returns the full catalog newest-first, each record's
// storage location rewritten to a freshly signed URL.
func (ctrl *Controller) ListVideos(c *gin.Context) {
	ctx := c.Request.Context()

	videos, err := ctrl.Videos.ListNewestFirst(ctx)
	if err != nil {
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Feed] Failed to fetch video catalog")
		utils.JSON500(c, utils.ReasonInternal, "Failed to fetch videos")
		return
	}

	out := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		video := &videos[i]
		out = append(out, dto.NewVideoResponse(video, ctrl.signedOrCanonical(ctx, video)))
	}
	utils.JSON200(c, out)
}

// GetVideo returns a single record with a freshly signed URL, reading
// the stored record through the metadata cache when one is wired.
func (ctrl *Controller) GetVideo(c *gin.Context) {
	ctx := c.Request.Context()

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.JSON400(c, utils.ReasonInvalidReference, "Invalid video id")
		return
	}

	if ctrl.Cache != nil {
		var cached entity.Video
		cacheErr := ctrl.Cache.Get(ctx, infra.VideoCacheKey(idStr), &cached)
		if cacheErr == nil {
			utils.JSON200(c, dto.NewVideoResponse(&cached, ctrl.signedOrCanonical(ctx, &cached)))
			return
		}
		if !errors.Is(cacheErr, infra.ErrCacheMiss) {
			ctrl.Logger.WarningWithContextf(ctx, "[Video] Cache read failed for %s: %v", idStr, cacheErr)
		}
	}

	video, err := ctrl.Videos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.JSON404(c, utils.ReasonNotFound, "Video not found")
			return
		}
		ctrl.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to fetch video %s", idStr)
		utils.JSON500(c, utils.ReasonInternal, "Failed to fetch video")
		return
	}

	if ctrl.Cache != nil {
		if err := ctrl.Cache.Set(ctx, infra.VideoCacheKey(idStr), video, infra.VideoCacheTTL); err != nil {
			ctrl.Logger.WarningWithContextf(ctx, "[Video] Cache write failed for %s: %v", idStr, err)
		}
	}

	utils.JSON200(c, dto.NewVideoResponse(video, ctrl.signedOrCanonical(ctx, video)))
}
