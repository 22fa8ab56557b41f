package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/itemrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/sessionrepo"
	"marketplace/internal/adapters/out/postgres/shoprepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultSessionTTL = 7 * 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	sessionRepo := sessionrepo.NewGormSessionRepository(gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cleanupJob := jobs.NewSessionCleanupJob(sessionRepo, logger)
	if err := cleanupJob.Start(); err != nil {
		log.Fatalf("Failed to start session cleanup job: %v", err)
	}
	defer cleanupJob.Stop()

	startWebServer(&app, sessionRepo, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		SessionTTL: defaultSessionTTL,
	}
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL: %v", err)
		}
		config.SessionTTL = parsed
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey, which the repositories rely on for conflict
	// detection.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.AddressDTO{},
		&shoprepo.ShopDTO{},
		&itemrepo.ItemDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&sessionrepo.SessionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, sessionRepo *sessionrepo.GormSessionRepository, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		httpin.Commands{
			RegisterUser:   app.CreateRegisterUserCommandHandler(),
			Login:          app.CreateLoginCommandHandler(),
			Logout:         app.CreateLogoutCommandHandler(),
			UpdateProfile:  app.CreateUpdateProfileCommandHandler(),
			AddAddress:     app.CreateAddAddressCommandHandler(),
			RemoveAddress:  app.CreateRemoveAddressCommandHandler(),
			AddToCart:      app.CreateAddToCartCommandHandler(),
			MergeCart:      app.CreateMergeCartCommandHandler(),
			RemoveFromCart: app.CreateRemoveFromCartCommandHandler(),
			ClearCart:      app.CreateClearCartCommandHandler(),
			PlaceOrder:     app.CreatePlaceOrderCommandHandler(),
			ConfirmOrder:   app.CreateConfirmOrderCommandHandler(),
			CancelOrder:    app.CreateCancelOrderCommandHandler(),
			AssignDelivery: app.CreateAssignDeliveryCommandHandler(),
			MarkDelivered:  app.CreateMarkDeliveredCommandHandler(),
			CreateShop:     app.CreateCreateShopCommandHandler(),
			UpdateShop:     app.CreateUpdateShopCommandHandler(),
			CreateItem:     app.CreateCreateItemCommandHandler(),
			UpdateItem:     app.CreateUpdateItemCommandHandler(),
			DeleteItem:     app.CreateDeleteItemCommandHandler(),
		},
		httpin.Queries{
			GetCart:              app.CreateGetCartQueryHandler(),
			GetMyOrders:          app.CreateGetMyOrdersQueryHandler(),
			GetOrder:             app.CreateGetOrderQueryHandler(),
			GetShopOrders:        app.CreateGetShopOrdersQueryHandler(),
			GetAssignments:       app.CreateGetDeliveryAssignmentsQueryHandler(),
			GetShops:             app.CreateGetShopsQueryHandler(),
			GetShop:              app.CreateGetShopQueryHandler(),
			GetMyShops:           app.CreateGetMyShopsQueryHandler(),
			GetShopItems:         app.CreateGetShopItemsQueryHandler(),
			GetLocations:         app.CreateGetLocationsQueryHandler(),
			GetProfile:           app.CreateGetProfileQueryHandler(),
			GetDeliveryPersonnel: app.CreateGetDeliveryPersonnelQueryHandler(),
		},
	)
	server.RegisterRoutes(e, httpin.NewAuthMiddleware(sessionRepo))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
