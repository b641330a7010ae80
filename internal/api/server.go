package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/dreamsbydutch/pgc-tour-sub008/docs"
	v1 "github.com/dreamsbydutch/pgc-tour-sub008/internal/api/handler/v1"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/api/middleware"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/config"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/email"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/push"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/repository/dao"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	standingsSvc *service.StandingsService
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	emailClient := email.NewClient(conf.Resend)
	pushSender := push.NewSender(conf.Push)

	memberSvc := s.initMemberService(db)
	seasonSvc := s.initSeasonService(db)
	pushSvc := s.initPushService(db, pushSender)
	transactionSvc := s.initTransactionService(db, seasonSvc, emailClient)
	tourSvc := s.initTourService(db, seasonSvc, transactionSvc)
	s.standingsSvc = s.initStandingsService(db, seasonSvc, pushSvc)

	authHandler := s.initAuthHandler(db, emailClient)
	memberHandler := v1.NewMemberHandler(memberSvc)
	seasonHandler := v1.NewSeasonHandler(seasonSvc)
	tourHandler := v1.NewTourHandler(tourSvc, memberSvc)
	teamHandler := s.initTeamHandler(db, tourSvc, memberSvc)
	tournamentHandler := s.initTournamentHandler(db, seasonSvc)
	transactionHandler := v1.NewTransactionHandler(transactionSvc, memberSvc)
	pushHandler := v1.NewPushHandler(pushSvc, memberSvc)
	standingsHandler := v1.NewStandingsHandler(s.standingsSvc, memberSvc)

	s.MountHandlers(
		authHandler,
		memberHandler,
		seasonHandler,
		tourHandler,
		teamHandler,
		tournamentHandler,
		transactionHandler,
		pushHandler,
		standingsHandler,
	)

	return s
}

// StandingsService exposes the standings routine so the scheduler can
// run it outside HTTP.
func (s *Server) StandingsService() *service.StandingsService {
	return s.standingsSvc
}

func (s *Server) initAuthHandler(db *gorm.DB, emailClient *email.Client) *v1.AuthHandler {
	memberDAO := dao.NewMemberDAO(db)
	repo := repository.NewMemberRepository(memberDAO)
	svc := service.NewAuthService(repo, emailClient)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initMemberService(db *gorm.DB) *service.MemberService {
	memberDAO := dao.NewMemberDAO(db)
	repo := repository.NewMemberRepository(memberDAO)

	return service.NewMemberService(repo)
}

func (s *Server) initSeasonService(db *gorm.DB) *service.SeasonService {
	seasonDAO := dao.NewSeasonDAO(db)
	repo := repository.NewSeasonRepository(seasonDAO)

	return service.NewSeasonService(repo)
}

func (s *Server) initPushService(db *gorm.DB, sender *push.Sender) *service.PushService {
	pushDAO := dao.NewPushSubscriptionDAO(db)
	repo := repository.NewPushSubscriptionRepository(pushDAO)

	return service.NewPushService(repo, sender)
}

func (s *Server) initTransactionService(
	db *gorm.DB,
	seasonSvc *service.SeasonService,
	emailClient *email.Client,
) *service.TransactionService {
	transactionDAO := dao.NewTransactionDAO(db)
	repo := repository.NewTransactionRepository(transactionDAO)
	memberRepo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	payments := service.NewStripeProvider(s.Config.Stripe)

	return service.NewTransactionService(repo, memberRepo, seasonSvc, payments, emailClient)
}

func (s *Server) initTourService(
	db *gorm.DB,
	seasonSvc *service.SeasonService,
	transactionSvc *service.TransactionService,
) *service.TourService {
	tourDAO := dao.NewTourDAO(db)
	repo := repository.NewTourRepository(tourDAO)

	return service.NewTourService(repo, seasonSvc, transactionSvc)
}

func (s *Server) initStandingsService(
	db *gorm.DB,
	seasonSvc *service.SeasonService,
	pushSvc *service.PushService,
) *service.StandingsService {
	tourRepo := repository.NewTourRepository(dao.NewTourDAO(db))
	teamRepo := repository.NewTeamRepository(dao.NewTeamDAO(db))

	return service.NewStandingsService(tourRepo, teamRepo, seasonSvc, pushSvc)
}

func (s *Server) initTeamHandler(db *gorm.DB, tourSvc *service.TourService, memberSvc *service.MemberService) *v1.TeamHandler {
	teamRepo := repository.NewTeamRepository(dao.NewTeamDAO(db))
	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(db))
	svc := service.NewTeamService(teamRepo, tournamentRepo)
	handler := v1.NewTeamHandler(svc, tourSvc, memberSvc)

	return handler
}

func (s *Server) initTournamentHandler(db *gorm.DB, seasonSvc *service.SeasonService) *v1.TournamentHandler {
	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(db))
	svc := service.NewTournamentService(tournamentRepo, seasonSvc)
	handler := v1.NewTournamentHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	memberHandler *v1.MemberHandler,
	seasonHandler *v1.SeasonHandler,
	tourHandler *v1.TourHandler,
	teamHandler *v1.TeamHandler,
	tournamentHandler *v1.TournamentHandler,
	transactionHandler *v1.TransactionHandler,
	pushHandler *v1.PushHandler,
	standingsHandler *v1.StandingsHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/seasons/current", seasonHandler.HandleGetCurrentSeason)
		public.GET("/seasons", seasonHandler.HandleGetSeasons)

		public.GET("/tours/all", tourHandler.HandleGetTours)
		public.GET("/tours/:tourID/standings", tourHandler.HandleGetStandings)

		public.GET("/tournaments/schedule", tournamentHandler.HandleGetSchedule)
		public.GET("/tournaments/:tournamentID", tournamentHandler.HandleGetTournament)
		public.GET("/tournaments/:tournamentID/teams", teamHandler.HandleGetLeaderboard)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/members/current", memberHandler.HandleGetCurrentMember)
		authed.PUT("/members/current", memberHandler.HandleUpdateCurrentMember)
		authed.GET("/members", memberHandler.HandleGetMembers)

		authed.POST("/tour-cards", tourHandler.HandleRegisterTourCard)
		authed.GET("/tour-cards/current", tourHandler.HandleGetCurrentTourCard)

		authed.POST("/tournaments/:tournamentID/teams", teamHandler.HandleSubmitPicks)
		authed.GET("/tournaments/:tournamentID/teams/current", teamHandler.HandleGetCurrentTeam)

		authed.GET("/transactions", transactionHandler.HandleGetTransactions)
		authed.POST("/payments/intent", transactionHandler.HandleCreateDepositIntent)
		authed.POST("/payments/confirm", transactionHandler.HandleConfirmDeposit)

		authed.POST("/push/subscribe", pushHandler.HandleSubscribe)
		authed.POST("/push/unsubscribe", pushHandler.HandleUnsubscribe)

		authed.POST("/cron/standings", standingsHandler.HandleUpdateStandings)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "PGC Tour API"
	docs.SwaggerInfo.Description = "Fantasy golf league API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
