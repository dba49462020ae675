package api

import (
	"strconv"
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *Controllers) createComment(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)

	var data struct {
		Text string `json:"text" validate:"max=4096"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.AddComment(c.UserContext(), v.Posts, c.Params("postId"), actor.ID, data.Text, time.Now())
	if err != nil {
		return exts.TranslateError(err)
	}
	if !services.IsBlankComment(data.Text) {
		services.AddEvent(v.Events, "posts.comment", item.ID, actor.ID)
	}

	return c.JSON(newPostView(item, actor))
}

func (v *Controllers) deleteComment(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)

	commentId, err := strconv.ParseInt(c.Params("commentId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	var data struct {
		AuthorKey string `json:"author_key"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.DeleteComment(c.UserContext(), v.Posts, c.Params("postId"), commentId, data.AuthorKey)
	if err != nil {
		return exts.TranslateError(err)
	}
	services.AddEvent(v.Events, "posts.comment.delete", item.ID, actor.ID)

	return c.JSON(newPostView(item, actor))
}
