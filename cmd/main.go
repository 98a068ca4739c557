package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-compliance/internal/auth"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/handlers"
	"github.com/ukydev/fleet-compliance/internal/middleware"
)

func main() {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on environment")
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.Info("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "fleet_compliance"
	}
	database := client.Database(dbName)

	vehicles := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	employees := &db.MongoEmployeeCollection{Collection: database.Collection("employees")}
	maintenance := &db.MongoMaintenanceCollection{Collection: database.Collection("maintenance")}
	inspections := &db.MongoInspectionCollection{Collection: database.Collection("inspections")}
	fees := &db.MongoFeeCollection{Collection: database.Collection("fees")}
	assetEvents := &db.MongoAssetEventCollection{Collection: database.Collection("asset_events")}
	disposals := &db.MongoDisposalCollection{Collection: database.Collection("disposals")}
	attachments := &db.MongoAttachmentCollection{Collection: database.Collection("attachments")}
	users := &db.MongoUserCollection{Collection: database.Collection("users")}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	authHandler := handlers.NewAuthHandler(authService, users)
	vehicleHandler := handlers.NewVehicleHandler(vehicles)
	employeeHandler := handlers.NewEmployeeHandler(employees)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenance, fees)
	inspectionHandler := handlers.NewInspectionHandler(inspections, fees)
	feeHandler := handlers.NewFeeHandler(fees)
	assetHandler := handlers.NewAssetHandler(assetEvents, vehicles)
	disposalHandler := handlers.NewDisposalHandler(disposals, vehicles)
	reminderHandler := handlers.NewReminderHandler(vehicles, inspections, maintenance)
	attachmentHandler, err := handlers.NewAttachmentHandler(attachments)
	if err != nil {
		log.WithError(err).Fatal("Failed to create attachment handler")
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("PUT /api/auth/profile", authHandler.UpdateProfile)
	mux.HandleFunc("POST /api/auth/change-password", authHandler.ChangePassword)

	mux.HandleFunc("POST /api/vehicles", vehicleHandler.Create)
	mux.HandleFunc("GET /api/vehicles", vehicleHandler.List)
	mux.HandleFunc("GET /api/vehicles/{id}", vehicleHandler.Get)
	mux.HandleFunc("PUT /api/vehicles/{id}", vehicleHandler.Update)
	mux.HandleFunc("DELETE /api/vehicles/{id}", vehicleHandler.Delete)
	mux.HandleFunc("GET /api/vehicles/{id}/assets", assetHandler.VehicleAssets)

	mux.HandleFunc("POST /api/employees", employeeHandler.Create)
	mux.HandleFunc("GET /api/employees", employeeHandler.List)
	mux.HandleFunc("GET /api/employees/{id}", employeeHandler.Get)
	mux.HandleFunc("PUT /api/employees/{id}", employeeHandler.Update)
	mux.HandleFunc("DELETE /api/employees/{id}", employeeHandler.Delete)

	mux.HandleFunc("POST /api/maintenance", maintenanceHandler.Create)
	mux.HandleFunc("GET /api/maintenance", maintenanceHandler.List)
	mux.HandleFunc("GET /api/maintenance/{id}", maintenanceHandler.Get)
	mux.HandleFunc("PUT /api/maintenance/{id}", maintenanceHandler.Update)
	mux.HandleFunc("DELETE /api/maintenance/{id}", maintenanceHandler.Delete)

	mux.HandleFunc("POST /api/inspections", inspectionHandler.Create)
	mux.HandleFunc("GET /api/inspections", inspectionHandler.List)
	mux.HandleFunc("GET /api/inspections/{id}", inspectionHandler.Get)
	mux.HandleFunc("PUT /api/inspections/{id}", inspectionHandler.Update)
	mux.HandleFunc("DELETE /api/inspections/{id}", inspectionHandler.Delete)

	mux.HandleFunc("POST /api/fees", feeHandler.Create)
	mux.HandleFunc("GET /api/fees", feeHandler.List)
	mux.HandleFunc("GET /api/fees/{id}", feeHandler.Get)
	mux.HandleFunc("PUT /api/fees/{id}", feeHandler.Update)
	mux.HandleFunc("DELETE /api/fees/{id}", feeHandler.Delete)

	mux.HandleFunc("POST /api/asset-events", assetHandler.CreateEvent)

	mux.HandleFunc("POST /api/disposals", disposalHandler.Create)
	mux.HandleFunc("GET /api/disposals", disposalHandler.List)

	mux.HandleFunc("GET /api/dashboard/reminders", reminderHandler.Dashboard)

	mux.HandleFunc("POST /api/attachments/upload", attachmentHandler.Upload)
	mux.HandleFunc("GET /api/attachments", attachmentHandler.ListByEntity)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()
	handler := middleware.RequestLogger(rateLimiter.RateLimit(100, 60)(authMiddleware.Authenticate(mux)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
