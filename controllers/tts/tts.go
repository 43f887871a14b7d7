package controllers

import (
	"strings"

	"eduequi/middleware"
	"eduequi/utils"

	"github.com/gofiber/fiber/v2"
)

// TTSRequest is the body of POST /tts.
type TTSRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// TextToSpeech synthesizes the given text to MP3 audio through the external
// TTS provider and streams the bytes back.
func TextToSpeech(c *fiber.Ctx) error {
	reqData := new(TTSRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonError(c, fiber.StatusBadRequest, "No data provided")
	}
	if strings.TrimSpace(reqData.Text) == "" {
		return middleware.JsonError(c, fiber.StatusBadRequest, "No text provided")
	}

	audio, err := utils.SynthesizeSpeech(reqData.Text, utils.NormalizeLang(reqData.Lang))
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Send(audio)
}
