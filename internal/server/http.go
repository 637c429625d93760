package server

import (
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/tolko/rp-reports/internal/conf"
	"github.com/tolko/rp-reports/internal/service"
)

// NewHTTPServer wires the dashboard routes onto a kratos HTTP server.
func NewHTTPServer(c *conf.Server, s *service.DashboardService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
		http.Filter(WriteRateLimit(newWriteLimiter(c.Concurrency))),
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	if c.Http.Timeout != "" {
		if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
			opts = append(opts, http.Timeout(d))
		}
	}

	srv := http.NewServer(opts...)
	registerRoutes(srv, s)
	return srv
}

func registerRoutes(srv *http.Server, s *service.DashboardService) {
	api := srv.Route("/api")

	api.GET("/report", func(ctx http.Context) error {
		var req service.GetReportRequest
		if err := ctx.BindQuery(&req); err != nil {
			return err
		}
		reply, err := s.GetReport(ctx, &req)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	api.PUT("/report/{id}", func(ctx http.Context) error {
		id, err := pathID(ctx)
		if err != nil {
			return err
		}
		var req service.UpdateReportMetaRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}
		reply, err := s.UpdateReportMeta(ctx, id, &req)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	api.GET("/news", func(ctx http.Context) error {
		reply, err := s.ListNews(ctx)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	api.POST("/news", func(ctx http.Context) error {
		var req service.MentionRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}
		reply, err := s.CreateNews(ctx, &req)
		if err != nil {
			return err
		}
		return ctx.Result(201, reply)
	})

	api.PUT("/news/{id}", func(ctx http.Context) error {
		id, err := pathID(ctx)
		if err != nil {
			return err
		}
		var req service.MentionRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}
		reply, err := s.UpdateNews(ctx, id, &req)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	api.DELETE("/news/{id}", func(ctx http.Context) error {
		id, err := pathID(ctx)
		if err != nil {
			return err
		}
		reply, err := s.DeleteNews(ctx, id)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	api.GET("/clients", func(ctx http.Context) error {
		reply, err := s.ListClients(ctx)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	api.POST("/clients", func(ctx http.Context) error {
		var req service.CreateClientRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}
		reply, err := s.CreateClient(ctx, &req)
		if err != nil {
			return err
		}
		return ctx.Result(201, reply)
	})

	api.DELETE("/clients/{id}", func(ctx http.Context) error {
		id, err := pathID(ctx)
		if err != nil {
			return err
		}
		reply, err := s.DeleteClient(ctx, id)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})
}

func pathID(ctx http.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Vars().Get("id"))
	if err != nil || id <= 0 {
		return 0, errors.BadRequest("VALIDATION_FAILED", "id must be a positive integer")
	}
	return id, nil
}
