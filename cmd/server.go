package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"recipebox/internal/assets"
	"recipebox/internal/config"
	"recipebox/internal/core"
	"recipebox/internal/db"
	"recipebox/internal/http/handler"
	"recipebox/internal/http/handler/middleware"
	"recipebox/internal/http/payload"
	"recipebox/internal/http/server"
	"recipebox/internal/repository"
	"recipebox/pkg/jwt"
	"recipebox/pkg/log"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("recipebox", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewRecipeRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// asset store
	var assetStore core.AssetStore
	if config.S3Enabled() {
		assetStore, err = assets.NewMinioStore(logger,
			config.S3Endpoint, config.S3AccessKey, config.S3SecretKey, config.S3Bucket, false)
	} else {
		assetStore, err = assets.NewDiskStore(logger, config.UploadDir)
	}
	if err != nil {
		logger.Errorw("failed to create asset store", "error", err)
		return err
	}

	// recipebox
	recipeBox := core.NewRecipeBox(
		logger,
		repo,
		jwtService,
		assetStore)

	// handler
	recipeHlr := handler.NewRecipeHandler(
		logger,
		payload.DecodeValidator{},
		recipeBox)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, recipeHlr.HandleRegister)
	mux.HandleFunc(handler.Login, recipeHlr.HandleLogin)
	mux.HandleFunc(handler.Me, recipeHlr.HandleMe)
	mux.HandleFunc(handler.GetRecipes, recipeHlr.HandleGetRecipes)
	mux.HandleFunc(handler.GetMyRecipes, recipeHlr.HandleGetMyRecipes)
	mux.HandleFunc(handler.CreateRecipe, recipeHlr.HandleCreateRecipe)
	mux.HandleFunc(handler.UpdateRecipe, recipeHlr.HandleUpdateRecipe)
	mux.HandleFunc(handler.DeleteRecipe, recipeHlr.HandleDeleteRecipe)
	mux.HandleFunc(handler.GetUpload, recipeHlr.HandleGetUpload)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
