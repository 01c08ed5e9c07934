package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pKa1/loveSonia/internal/middleware"
	"github.com/pKa1/loveSonia/pkg/response"
)

// Parse godoc
// @Summary     Parse text into an intent preview
// @Description Runs the Russian date/time parser (and the LLM classifier when configured) and stores a preview to confirm.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller id"
// @Param       body body parseReq true "Text and IANA time zone"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Preview: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Voice godoc
// @Summary     Parse a voice note into an intent preview
// @Description Transcribes the uploaded audio and parses the transcript.
// @Tags        Intents
// @Accept      multipart/form-data
// @Produce     json
// @Param       X-User-ID header   string false "Caller id"
// @Param       audio     formData file   true  "Audio clip (webm, ogg, mp3, wav)"
// @Param       format    formData string false "Audio format, defaults to the file extension"
// @Param       time_zone formData string false "IANA time zone"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Transcription failed"
// @Failure     503 {object} response.Resp "Transcription not configured"
// @Router      /api/v1/intents/voice [POST]
func (h *handler) Voice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PreviewVoice(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.PreviewVoice: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Confirm godoc
// @Summary     Confirm a preview
// @Description Creates the calendar event or task for a stored preview. Title and assignee override the parsed values.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     false "Caller id"
// @Param       id        path   string     true  "Preview ID"
// @Param       body      body   confirmReq false "Overrides"
// @Success     200 {object} confirmResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Preview not found or expired"
// @Failure     502 {object} response.Resp "Calendar unavailable"
// @Router      /api/v1/intents/{id}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Confirm(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, h.newConfirmResp(output))
}

// Cancel godoc
// @Summary     Cancel a preview
// @Description Drops a stored preview without creating anything.
// @Tags        Intents
// @Produce     json
// @Param       X-User-ID header string false "Caller id"
// @Param       id        path   string true  "Preview ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Preview not found or expired"
// @Router      /api/v1/intents/{id} [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Cancel(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Cancel: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) abort(c *gin.Context, err error) {
	status, msg := h.mapError(err)
	response.ErrorWithStatus(c, status, status, msg)
}
