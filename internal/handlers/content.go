package handlers

import (
	"errors"
	"net/http"

	"second_brain/internal/models"
	"second_brain/internal/service"

	"github.com/gin-gonic/gin"
)

// AddContentRequest is the body of POST /api/v1/content.
type AddContentRequest struct {
	Link  string `json:"link" binding:"required" example:"https://youtu.be/dQw4w9WgXcQ"`
	Title string `json:"title" example:"Talk to revisit"`
	// Optional. Inferred from the link when empty.
	Type string `json:"type,omitempty" example:"youtube"`
}

type addContentResponse struct {
	Message string         `json:"message"`
	Content models.Content `json:"content"`
}

type listContentResponse struct {
	Content []models.Content `json:"content"`
}

// addContent godoc
// @Summary      Save a link
// @Description  The type is inferred from the link unless given explicitly.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      AddContentRequest  true  "Content"
// @Success      200   {object}  addContentResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/v1/content [post]
// @Security     BearerAuth
func (h *Handler) addContent(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req AddContentRequest
	if ok := h.bindJSONOrBadRequest(c, &req, msgInvalidBody+": link is required"); !ok {
		return
	}

	item, err := h.services.Add(c.Request.Context(), userID, service.ContentInput{
		Link:  req.Link,
		Title: req.Title,
		Type:  req.Type,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.internalError(c, "content_add_failed", err, "user_id", userID)
		return
	}

	c.JSON(http.StatusOK, addContentResponse{Message: msgContentAdded, Content: item})
}

// listContent godoc
// @Summary      List own content
// @Tags         content
// @Produce      json
// @Success      200  {object}  listContentResponse
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/v1/content [get]
// @Security     BearerAuth
func (h *Handler) listContent(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	items, err := h.services.List(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, "content_list_failed", err, "user_id", userID)
		return
	}
	if items == nil {
		items = []models.Content{}
	}
	c.JSON(http.StatusOK, listContentResponse{Content: items})
}

// deleteContent godoc
// @Summary      Delete own content
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Content id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/v1/content/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteContent(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.services.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		h.internalError(c, "content_delete_failed", err, "user_id", userID, "content_id", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgContentDeleted})
}

func (h *Handler) requireUser(c *gin.Context) (int, bool) {
	id, ok := currentUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
	}
	return id, ok
}
