package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/imadhurgupta/bio-keeper/internal/metrics"
	"github.com/imadhurgupta/bio-keeper/internal/models"
	"github.com/imadhurgupta/bio-keeper/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	Registry   *prometheus.Registry
	Metrics    *metrics.Collector

	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	AccountService *services.AccountService
	BiodataService *services.BiodataService
	MediaService   *services.MediaService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey string,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongo := models.MongodbNewRepo(mongoDBClient)

	accountService := services.NewAccountService(supa)
	biodataService := services.NewBiodataService(mongo)
	mediaService := services.NewMediaService(cloudinary, supa)

	registry := prometheus.NewRegistry()

	return &Container{
		Logger:         logger,
		Cloudinary:     cloudinary,
		Registry:       registry,
		Metrics:        metrics.NewCollector(registry),
		SupabaseClient: supabaseClient,
		MongoDBClient:  mongoDBClient,
		AccountService: accountService,
		BiodataService: biodataService,
		MediaService:   mediaService,
	}
}
