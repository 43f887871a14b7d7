package controllers

import (
	"time"

	"eduequi/catalog"
	"eduequi/middleware"
	"eduequi/models"
	"eduequi/store"
	"eduequi/utils"
	mediaValidator "eduequi/validators/media"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the video listing, upload and delete endpoints.
type Controller struct {
	Cat       *catalog.Catalog
	UploadDir string
}

func New(cat *catalog.Catalog, uploadDir string) *Controller {
	return &Controller{Cat: cat, UploadDir: uploadDir}
}

// ListVideos filters by lessonId first, then courseId; without a filter it
// returns all videos. A lessonId filter yields at most one element.
func (ctl *Controller) ListVideos(c *fiber.Ctx) error {
	q := store.Query{}
	if lessonID := c.Query("lessonId"); lessonID != "" {
		q = store.Query{Field: "lessonId", Value: lessonID}
	} else if courseID := c.Query("courseId"); courseID != "" {
		q = store.Query{Field: "courseId", Value: courseID}
	}

	videos, err := ctl.Cat.Videos.List(c.Context(), q)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}
	return c.JSON(videos)
}

// UploadVideo stores the uploaded file under a collision-free name and
// records the resulting URL on a new video entity. The sign-language URL
// defaults to the main URL until a separate cut is registered.
func (ctl *Controller) UploadVideo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpload").(*mediaValidator.UploadVideoRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data")
	}

	storedName, err := utils.SaveUploadedVideo(reqData.File, ctl.UploadDir)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to store video file")
	}
	videoURL := utils.VideoFileURL(storedName)

	video := &models.Video{
		CourseID:    reqData.CourseID,
		LessonID:    reqData.LessonID,
		Title:       reqData.Title,
		VideoURL:    videoURL,
		ISLVideoURL: videoURL,
		Description: reqData.Description,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := ctl.Cat.Videos.Insert(c.Context(), video)
	if err != nil {
		utils.RemoveVideoFile(ctl.UploadDir, videoURL)
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to create video")
	}
	video.ID = id

	return c.Status(fiber.StatusCreated).JSON(video)
}

// DeleteVideo removes the video entity and the stored file behind its URL.
// A file that is already gone is tolerated.
func (ctl *Controller) DeleteVideo(c *fiber.Ctx) error {
	video, err := ctl.Cat.Videos.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Video not found")
	}

	if !ctl.Cat.Videos.DeleteByID(c.Context(), c.Params("id")) {
		return middleware.JsonError(c, fiber.StatusNotFound, "Video not found")
	}
	utils.RemoveVideoFile(ctl.UploadDir, video.VideoURL)

	return middleware.JsonMessage(c, fiber.StatusOK, "Video deleted successfully")
}
