package api

import (
	"io"
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type postView struct {
	models.Post
	Attribution string         `json:"attribution"`
	Media       services.Media `json:"media"`
	Owned       bool           `json:"owned"`
}

func newPostView(item models.Post, actor services.Actor) postView {
	return postView{
		Post:        item,
		Attribution: item.Attribution(),
		Media:       services.ResolveMedia(item.ImageURL),
		Owned:       services.IsPostOwner(item, actor.ID),
	}
}

type postRequest struct {
	Title     string   `json:"title" form:"title" validate:"max=1024"`
	ImageURL  string   `json:"image_url" form:"image_url"`
	Content   string   `json:"content" form:"content" validate:"max=8192"`
	Flags     []string `json:"flags" form:"flags" validate:"max=16"`
	AuthorKey string   `json:"author_key" form:"author_key" validate:"max=256"`
	RepostOf  string   `json:"repost_of" form:"repost_of" validate:"max=64"`
}

func (v postRequest) toDraft() services.PostDraft {
	return services.PostDraft{
		Title:     v.Title,
		ImageURL:  v.ImageURL,
		Content:   v.Content,
		Flags:     v.Flags,
		AuthorKey: v.AuthorKey,
		RepostOf:  v.RepostOf,
	}
}

func (v *Controllers) listPost(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)
	prefs := services.NewPreferenceService(exts.NewCookieStorage(c)).Load()

	items, err := v.Posts.ListPosts(c.UserContext())
	if err != nil {
		return exts.TranslateError(err)
	}

	items = services.ApplyPostListQuery(items, services.PostListQuery{
		Flag:   c.Query("flag"),
		Search: c.Query("search"),
		Sort:   services.ParsePostSortOrder(c.Query("sort")),
	})

	return c.JSON(fiber.Map{
		"count":  len(items),
		"layout": prefs.Layout,
		"data": lo.Map(items, func(item models.Post, _ int) postView {
			return newPostView(item, actor)
		}),
	})
}

func (v *Controllers) getPost(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)

	item, err := v.Posts.GetPost(c.UserContext(), c.Params("postId"))
	if err != nil {
		return exts.TranslateError(err)
	}

	return c.JSON(newPostView(item, actor))
}

func (v *Controllers) createPost(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)

	var data postRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(c.UserContext(), v.Posts, data.toDraft(), actor, time.Now())
	if err != nil {
		return exts.TranslateError(err)
	}
	services.AddEvent(v.Events, "posts.new", item.ID, actor.ID)

	return c.Status(fiber.StatusCreated).JSON(newPostView(item, actor))
}

// uploadPostImage converts a local file into the data URL the editor previews and submits.
func (v *Controllers) uploadPostImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing image file")
	}
	if v.MaxUploadSize > 0 && file.Size > int64(v.MaxUploadSize) {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "image is too large")
	}

	reader, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	url, err := services.EncodeImageDataURL(raw, v.MaxUploadSize)
	if err != nil {
		return exts.TranslateError(err)
	}

	return c.JSON(fiber.Map{
		"image_url": url,
		"media":     services.ResolveMedia(url),
	})
}

func (v *Controllers) getPostDraft(c *fiber.Ctx) error {
	draft, err := services.LoadPostDraft(c.UserContext(), v.Posts, c.Params("postId"))
	if err != nil {
		return exts.TranslateError(err)
	}
	return c.JSON(draft)
}

func (v *Controllers) editPost(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)

	var data postRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.EditPost(c.UserContext(), v.Posts, c.Params("postId"), data.toDraft())
	if err != nil {
		return exts.TranslateError(err)
	}
	services.AddEvent(v.Events, "posts.edit", item.ID, actor.ID)

	return c.JSON(newPostView(item, actor))
}

func (v *Controllers) verifyPostAuthorKey(c *fiber.Ctx) error {
	var data struct {
		AuthorKey string `json:"author_key"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	result, err := services.VerifyPostAuthorKey(c.UserContext(), v.Posts, c.Params("postId"), data.AuthorKey)
	if err != nil {
		return exts.TranslateError(err)
	}

	return c.JSON(fiber.Map{
		"result": result,
	})
}

func (v *Controllers) deletePost(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)

	var data struct {
		AuthorKey string `json:"author_key"`
		Confirmed bool   `json:"confirmed"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	id := c.Params("postId")
	if err := services.DeletePost(c.UserContext(), v.Posts, id, services.DeletePostRequest{
		AuthorKey: data.AuthorKey,
		Confirmed: data.Confirmed,
	}); err != nil {
		return exts.TranslateError(err)
	}
	services.AddEvent(v.Events, "posts.delete", id, actor.ID)

	return c.SendStatus(fiber.StatusOK)
}

func (v *Controllers) upvotePost(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)

	item, err := services.UpvotePost(c.UserContext(), v.Posts, c.Params("postId"))
	if err != nil {
		return exts.TranslateError(err)
	}
	services.AddEvent(v.Events, "posts.upvote", item.ID, actor.ID)

	return c.JSON(newPostView(item, actor))
}

func (v *Controllers) repostPost(c *fiber.Ctx) error {
	actor := exts.ResolveActor(c)

	item, err := services.RepostPost(c.UserContext(), v.Posts, c.Params("postId"), actor, time.Now())
	if err != nil {
		return exts.TranslateError(err)
	}
	services.AddEvent(v.Events, "posts.repost", item.ID, actor.ID)

	return c.Status(fiber.StatusCreated).JSON(newPostView(item, actor))
}
