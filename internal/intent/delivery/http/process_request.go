package http

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxAudioBytes matches the Telegram Bot API download limit.
const maxAudioBytes = 20 << 20

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processVoiceReq reads the multipart audio upload. The format falls back to
// the uploaded file's extension.
func (h *handler) processVoiceReq(c *gin.Context) (voiceReq, error) {
	req := voiceReq{
		Format:   strings.TrimSpace(c.PostForm("format")),
		TimeZone: strings.TrimSpace(c.PostForm("time_zone")),
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		return req, errMissingAudio
	}
	if fh.Size > maxAudioBytes {
		return req, errAudioTooBig
	}
	f, err := fh.Open()
	if err != nil {
		return req, err
	}
	defer f.Close()

	req.Audio, err = io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		return req, err
	}
	if req.Format == "" {
		req.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	}
	return req, nil
}

// processConfirmReq binds the optional override body and the URI param.
func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.ID = strings.TrimSpace(c.Param("id"))
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}
