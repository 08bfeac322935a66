package borutoserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/Danik911/Boruto-server/internal/config"
	"github.com/Danik911/Boruto-server/internal/logging"
	"github.com/Danik911/Boruto-server/internal/metrics"
	"github.com/Danik911/Boruto-server/internal/models"
	"github.com/Danik911/Boruto-server/internal/myerrors"
	"github.com/Danik911/Boruto-server/internal/queryparams"
	"github.com/Danik911/Boruto-server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const WelcomeMessage = "Welcome to Boruto server!"

var Endpoints = struct {
	Root       string
	Heroes     string
	HeroSearch string
	Images     string
	Metrics    string
}{
	Root:       "/",
	Heroes:     "/boruto/heroes",
	HeroSearch: "/boruto/heroes/search",
	Images:     "/images",
	Metrics:    "/metrics",
}

type Server struct {
	router      *gin.Engine
	httpServer  *http.Server
	heroService services.HeroService
	cfg         config.Config
	logger      zerolog.Logger
}

func NewServer(heroService services.HeroService, cfg config.Config) *Server {
	router := gin.New()
	logger := logging.NewLogger("server")

	server := &Server{
		router:      router,
		heroService: heroService,
		cfg:         cfg,
		logger:      logger,
		httpServer: &http.Server{
			Addr:    cfg.Server.Address,
			Handler: router,
		},
	}

	router.Use(gin.Recovery(), logging.GinLogger(logger))
	if cfg.Metrics.Enabled {
		router.Use(metrics.GinMiddleware())
	}
	if cfg.Server.CacheControl != "" {
		router.Use(server.defaultHeaders)
	}

	router.GET(Endpoints.Root, server.handleRoot)
	router.GET(Endpoints.Heroes, server.handleGetHeroes)
	router.GET(Endpoints.HeroSearch, server.handleSearchHeroes)
	if cfg.Server.ImagesDir != "" {
		router.Static(Endpoints.Images, cfg.Server.ImagesDir)
	}
	if cfg.Metrics.Enabled {
		router.GET(Endpoints.Metrics, gin.WrapH(promhttp.Handler()))
	}
	router.NoRoute(server.handleNotFound)
	return server
}

func (s *Server) defaultHeaders(ctx *gin.Context) {
	ctx.Header("Cache-Control", s.cfg.Server.CacheControl)
	ctx.Next()
}

func (s *Server) handleRoot(ctx *gin.Context) {
	ctx.String(http.StatusOK, WelcomeMessage)
}

func (s *Server) handleNotFound(ctx *gin.Context) {
	ctx.String(http.StatusNotFound, myerrors.MessageNotFound)
}

func (s *Server) handleGetHeroes(ctx *gin.Context) {
	rawPage, hasPage := ctx.GetQuery("page")
	page, err := queryparams.ParseInt(rawPage, hasPage, models.FirstPage)
	if err != nil {
		metrics.PageRequests.WithLabelValues(metrics.OutcomeInvalid).Inc()
		s.respondError(ctx, err)
		return
	}

	var response models.ApiResponse
	if s.cfg.Heroes.PaginationMode == models.PaginationLimit {
		rawLimit, hasLimit := ctx.GetQuery("limit")
		limit, err := queryparams.ParseInt(rawLimit, hasLimit, s.cfg.Heroes.DefaultLimit)
		if err != nil {
			metrics.PageRequests.WithLabelValues(metrics.OutcomeInvalid).Inc()
			s.respondError(ctx, err)
			return
		}
		response, err = s.heroService.GetPageWithLimit(ctx, page, limit)
		if err != nil {
			s.respondError(ctx, err)
			return
		}
	} else {
		response, err = s.heroService.GetPage(ctx, page)
		if err != nil {
			s.respondError(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, response)
}

func (s *Server) handleSearchHeroes(ctx *gin.Context) {
	response, err := s.heroService.Search(ctx, ctx.Query("name"))
	if err != nil {
		s.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// respondError maps an error onto a failed envelope: invalid input is a
// 400, an out of range page a 404, anything else a 500.
func (s *Server) respondError(ctx *gin.Context, err error) {
	now := s.heroService.Now()

	var reqErr *myerrors.RequestError
	if errors.As(err, &reqErr) {
		status := http.StatusBadRequest
		if errors.Is(reqErr, myerrors.ErrOutOfRange) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, models.NewErrorResponse(reqErr.Message, now))
		return
	}

	s.logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("request failed")
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(http.StatusText(http.StatusInternalServerError), now))
}

func (s *Server) Run() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener until Shutdown is called.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info().Str("address", listener.Addr().String()).Msg("starting server")
	return s.httpServer.Serve(listener)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
