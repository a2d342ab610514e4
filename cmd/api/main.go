package main

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/sqlite"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/sqlite/repository"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/http/handler"
	authmw "github.com/MauriicioRibotta/RuralJMSolution/internal/http/middleware"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/aws/storage"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/service"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/validators"
)

const envVarsPrefix = "/ruraljm/prod/"

// Fixed window of 20 requests per 60 seconds per client, applied before
// authorization on every route.
const (
	rateLimitRequests = 20
	rateLimitWindow   = 60.0
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	if err := sqlite.Seed(db); err != nil {
		panic(err)
	}

	verifier, err := newTokenVerifier()
	if err != nil {
		panic(err)
	}

	// Report archival is optional; without a bucket exports are only streamed.
	var reportStorage storage.S3Client
	if os.Getenv("REPORTS_BUCKET") != "" {
		reportStorage, err = storage.NewStorageClient()
		if err != nil {
			panic(err)
		}
	}

	// Getting repos
	animalRepo := repository.NewAnimalRepository(db)
	expositorRepo := repository.NewExpositorRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	registrationRepo := repository.NewRegistrationStateRepository(db)

	// Getting services
	animalService := service.NewAnimalService(animalRepo, expositorRepo, validate)
	expositorService := service.NewExpositorService(expositorRepo, validate)
	catalogoService := service.NewCatalogoService(catalogoRepo, validate)
	reportService := service.NewReportService(reportStorage)
	registrationService := service.NewRegistrationService(registrationRepo, expositorRepo, validate)

	// Getting handlers
	animalRoutes := handler.NewAnimalDefault(animalService, reportService)
	expositorRoutes := handler.NewExpositorDefault(expositorService)
	catalogoRoutes := handler.NewCatalogoDefault(catalogoService)
	registrationRoutes := handler.NewRegistrationDefault(registrationService)

	authRequired := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{Verifier: verifier})

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(rateLimitRequests / rateLimitWindow),
			Burst: rateLimitRequests,
		},
	)))

	// Animals
	animals := e.Group("/animals", authRequired)
	animals.POST("", animalRoutes.CreateAnimal)
	animals.GET("", animalRoutes.GetAnimals)
	animals.GET("/export", animalRoutes.ExportAnimals)
	animals.GET("/:id", animalRoutes.GetAnimal)
	animals.PATCH("/:id", animalRoutes.UpdateAnimal)
	animals.DELETE("/:id", animalRoutes.DeleteAnimal)

	// Catalogs: reads are open, management needs a token
	e.GET("/catalogos/especies", catalogoRoutes.GetEspecies)
	e.GET("/catalogos/razas", catalogoRoutes.GetRazas)
	e.GET("/catalogos/tipos-inscripcion", catalogoRoutes.GetTiposInscripcion)
	catalogos := e.Group("/catalogos", authRequired)
	catalogos.POST("/especies", catalogoRoutes.CreateEspecie)
	catalogos.PATCH("/especies/:id", catalogoRoutes.UpdateEspecie)
	catalogos.DELETE("/especies/:id", catalogoRoutes.DeleteEspecie)
	catalogos.POST("/razas", catalogoRoutes.CreateRaza)
	catalogos.PATCH("/razas/:id", catalogoRoutes.UpdateRaza)
	catalogos.DELETE("/razas/:id", catalogoRoutes.DeleteRaza)
	catalogos.POST("/tipos-inscripcion", catalogoRoutes.CreateTipoInscripcion)
	catalogos.PATCH("/tipos-inscripcion/:id", catalogoRoutes.UpdateTipoInscripcion)
	catalogos.DELETE("/tipos-inscripcion/:id", catalogoRoutes.DeleteTipoInscripcion)

	// Expositores
	e.POST("/expositores", expositorRoutes.CreateExpositor)
	e.GET("/expositores", expositorRoutes.GetExpositores)
	e.GET("/expositores/profile", expositorRoutes.GetProfile, authRequired)
	e.GET("/expositores/cuit/:cuit", expositorRoutes.GetExpositorByCuit)
	e.GET("/expositores/:id", expositorRoutes.GetExpositor)
	e.PATCH("/expositores/:id", expositorRoutes.UpdateExpositor)

	// Registration flow state
	registration := e.Group("/registration", authRequired)
	registration.POST("", registrationRoutes.BeginRegistration)
	registration.GET("", registrationRoutes.GetRegistration)
	registration.DELETE("", registrationRoutes.ClearRegistration)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "7070"
	}
	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("cuit", validators.Cuit)
	_ = validate.RegisterValidation("rp", validators.RP)
}

// newTokenVerifier picks the identity-provider integration: local JWKS
// signature checks by default, remote Cognito lookups when configured.
func newTokenVerifier() (idp.TokenVerifier, error) {
	if os.Getenv("IDP_PROVIDER") == "cognito" {
		return idp.NewCognitoVerifier(os.Getenv("AWS_COGNITO_REGION"))
	}
	return idp.NewJWKSVerifier(os.Getenv("IDP_JWKS_URL"))
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
