package http

import (
	"strings"

	pkg "git.solsynth.dev/hypernet/hobbyhub/pkg/internal"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/admin"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/idempotency"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer(controllers *api.Controllers) *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "HobbyHub",
		AppName:               "HobbyHub v" + pkg.AppVersion,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             max(viper.GetInt("posts.max_upload_size")*2, 4*1024*1024),
		EnablePrintRoutes:     viper.GetBool("debug.print_routes"),
	})

	origins := viper.GetString("cors.allow_origins")

	app.Use(idempotency.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: false,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodOptions,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
		}, ","),
		AllowOrigins: lo.Ternary(len(origins) > 0, origins, "*"),
	}))

	app.Use(logger.New(logger.Config{
		Format: "${status} | ${latency} | ${method} ${path}\n",
		Output: log.Logger,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	var reader exts.SessionReader
	if controllers.Accounts != nil {
		reader = controllers.Accounts
	}
	app.Use(exts.ContextMiddleware(reader))

	admin.MapControllers(app, "/admin")
	controllers.MapAPIs(app, "/api")

	return &App{app}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

func (v *App) Shutdown() error {
	return v.app.Shutdown()
}
