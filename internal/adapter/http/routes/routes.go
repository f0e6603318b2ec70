package routes

import (
	"context"
	"log"
	"time"

	_ "gestao_igreja/docs" // generated by swag init
	"gestao_igreja/internal/adapter/http/handlers"
	"gestao_igreja/internal/adapter/http/middleware"
	"gestao_igreja/internal/adapter/persistence/memory"
	"gestao_igreja/internal/infrastructure/advisory"
	"gestao_igreja/internal/infrastructure/config"
	"gestao_igreja/internal/infrastructure/markdown"
	"gestao_igreja/internal/infrastructure/notify"
	"gestao_igreja/internal/usecase"
	"gestao_igreja/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	router, err := NewRouter(context.Background(), cfg, time.Now)
	if err != nil {
		log.Fatalf("Failed to build the application: %v", err)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires the seeded in-memory stores, the use cases and the handlers.
func NewRouter(ctx context.Context, cfg config.Config, now func() time.Time) (*gin.Engine, error) {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h, err := buildHandlers(ctx, cfg, now)
	if err != nil {
		return nil, err
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPeopleRoutes(v1, h)
	addFinanceRoutes(v1, h)
	addAgendaRoutes(v1, h)
	addEBDRoutes(v1, h.ebd)
	addSocialRoutes(v1, h.social)
	addAdvisoryRoutes(v1, h.advisory)
	return router, nil
}

type handlerSet struct {
	members       *handlers.MemberHandler
	finance       *handlers.FinanceHandler
	events        *handlers.EventHandler
	rosters       *handlers.RosterHandler
	groups        *handlers.GroupHandler
	ebd           *handlers.EBDHandler
	congregations *handlers.CongregationHandler
	assets        *handlers.AssetHandler
	social        *handlers.SocialHandler
	dashboard     *handlers.DashboardHandler
	advisory      *handlers.AdvisoryHandler
}

func buildHandlers(ctx context.Context, cfg config.Config, now func() time.Time) (*handlerSet, error) {
	seed, err := memory.LoadSeed(now())
	if err != nil {
		return nil, err
	}
	stores := memory.NewStores(seed, now)

	var advisoryGateway interfaces.IAdvisoryGateway
	gemini, err := advisory.NewGeminiGateway(ctx, advisory.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.AdvisoryTimeout,
		Mock:    cfg.AdvisoryMock,
	})
	if err != nil {
		log.Printf("Gemini gateway not configured, advisories will use fallback text: %v", err)
	} else {
		advisoryGateway = gemini
	}

	members := usecase.NewMemberUseCase(stores.Members, now, cfg.MembersPerPage)
	finance := usecase.NewFinanceUseCase(stores.Transactions)
	events := usecase.NewEventUseCase(stores.Events, stores.Blocks, now)
	rosters := usecase.NewRosterUseCase(stores.Rosters, stores.Members, notify.New(cfg.ResendAPIKey, cfg.NotifyFrom))
	groups := usecase.NewGroupUseCase(stores.Groups)
	ebd := usecase.NewEBDUseCase(stores.Classes, stores.Lessons, stores.Students)
	congregations := usecase.NewCongregationUseCase(stores.Congregations, now)
	assets := usecase.NewAssetUseCase(stores.Assets)
	social := usecase.NewSocialUseCase(stores.Beneficiaries, stores.Resources)
	dashboard := usecase.NewDashboardUseCase(usecase.DashboardDeps{
		Members:       stores.Members,
		Transactions:  stores.Transactions,
		Events:        events,
		Rosters:       rosters,
		Groups:        groups,
		EBD:           ebd,
		Congregations: congregations,
		Assets:        assets,
		Social:        social,
	})
	advisoryUseCase := usecase.NewAdvisoryUseCase(advisoryGateway, dashboard, now)

	return &handlerSet{
		members:       handlers.NewMemberHandler(members),
		finance:       handlers.NewFinanceHandler(finance),
		events:        handlers.NewEventHandler(events),
		rosters:       handlers.NewRosterHandler(rosters),
		groups:        handlers.NewGroupHandler(groups),
		ebd:           handlers.NewEBDHandler(ebd),
		congregations: handlers.NewCongregationHandler(congregations),
		assets:        handlers.NewAssetHandler(assets),
		social:        handlers.NewSocialHandler(social),
		dashboard:     handlers.NewDashboardHandler(dashboard),
		advisory:      handlers.NewAdvisoryHandler(advisoryUseCase, markdown.NewRenderer()),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: request_id=%s err=%v", middleware.GetRequestID(c), recovered)
		c.AbortWithStatus(500)
	}))
}
