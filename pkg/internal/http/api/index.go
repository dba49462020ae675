package api

import (
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type Controllers struct {
	Posts         services.ContentStore
	Accounts      *services.AccountManager
	Events        services.EventPublisher
	MaxUploadSize int
}

func (v *Controllers) MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		api.Get("/identity", v.getIdentity)

		preferences := api.Group("/preferences")
		{
			preferences.Get("/", v.getPreferences)
			preferences.Put("/", v.updatePreferences)
			preferences.Post("/theme/toggle", v.togglePreferenceTheme)
			preferences.Post("/layout/toggle", v.togglePreferenceLayout)
		}

		auth := api.Group("/auth")
		{
			auth.Get("/me", v.getMe)
			auth.Post("/register", v.register)
			auth.Post("/login", v.login)
			auth.Post("/logout", v.logout)
		}

		posts := api.Group("/posts")
		{
			posts.Get("/", v.listPost)
			posts.Post("/", v.createPost)
			posts.Post("/upload", v.uploadPostImage)
			posts.Get("/:postId", v.getPost)
			posts.Get("/:postId/draft", v.getPostDraft)
			posts.Put("/:postId", v.editPost)
			posts.Delete("/:postId", v.deletePost)
			posts.Post("/:postId/verify", v.verifyPostAuthorKey)
			posts.Post("/:postId/upvote", v.upvotePost)
			posts.Post("/:postId/repost", v.repostPost)

			posts.Post("/:postId/comments", v.createComment)
			posts.Delete("/:postId/comments/:commentId", v.deleteComment)
		}
	}
}
