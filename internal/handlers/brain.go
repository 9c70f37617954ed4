package handlers

import (
	"errors"
	"net/http"

	"second_brain/internal/service"

	"github.com/gin-gonic/gin"
)

// ShareRequest toggles the public share link.
type ShareRequest struct {
	Share *bool `json:"share" binding:"required" example:"true"`
}

type shareResponse struct {
	Hash string `json:"hash" example:"aZ3kP9qLx2"`
}

// shareBrain godoc
// @Summary      Enable or disable the public share link
// @Description  share=true returns the (possibly existing) hash, share=false removes it.
// @Tags         brain
// @Accept       json
// @Produce      json
// @Param        body  body      ShareRequest  true  "Share flag"
// @Success      200   {object}  shareResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/v1/brain/share [post]
// @Security     BearerAuth
func (h *Handler) shareBrain(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req ShareRequest
	if ok := h.bindJSONOrBadRequest(c, &req, msgShareRequired); !ok {
		return
	}

	if !*req.Share {
		if err := h.services.Unshare(c.Request.Context(), userID); err != nil {
			h.internalError(c, "brain_unshare_failed", err, "user_id", userID)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msgLinkRemoved})
		return
	}

	hash, err := h.services.Share(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, "brain_share_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, shareResponse{Hash: hash})
}

// getSharedBrain godoc
// @Summary      Public read-only view of a shared collection
// @Tags         brain
// @Produce      json
// @Param        shareLink  path      string  true  "Share hash"
// @Success      200        {object}  models.SharedBrain
// @Failure      404        {object}  messageResponse
// @Failure      500        {object}  messageResponse
// @Router       /api/v1/brain/{shareLink} [get]
func (h *Handler) getSharedBrain(c *gin.Context) {
	hash := c.Param("shareLink")

	brain, err := h.services.Shared(c.Request.Context(), hash)
	if err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		h.internalError(c, "brain_shared_failed", err)
		return
	}
	c.JSON(http.StatusOK, brain)
}
