package main

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/alert"
	"TMS_LoadBalancer_Service/internal/load-balancer/api/handler"
	"TMS_LoadBalancer_Service/internal/load-balancer/api/routes"
	"TMS_LoadBalancer_Service/internal/load-balancer/balancer"
	"TMS_LoadBalancer_Service/internal/load-balancer/config"
	"TMS_LoadBalancer_Service/internal/load-balancer/events"
	"TMS_LoadBalancer_Service/internal/load-balancer/health"
	"TMS_LoadBalancer_Service/internal/load-balancer/metrics"
	"TMS_LoadBalancer_Service/internal/load-balancer/ratelimit"
	"TMS_LoadBalancer_Service/internal/load-balancer/registry"
	"TMS_LoadBalancer_Service/internal/load-balancer/scaling"
	"TMS_LoadBalancer_Service/internal/load-balancer/selector"
	"TMS_LoadBalancer_Service/internal/load-balancer/session"
	"TMS_LoadBalancer_Service/pkg/infra"
	"TMS_LoadBalancer_Service/pkg/logger"
	"TMS_LoadBalancer_Service/pkg/mail"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/load-balancer.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("create log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "load-balancer"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up health transition listeners
	var listeners []health.TransitionListener
	if appConfig.Kafka.Enabled {
		kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.HealthEventTopic)
		defer kafkaWriter.Close()
		listeners = append(listeners, events.NewKafkaPublisher(kafkaWriter, zapLogger))
	}
	if appConfig.Mail.Enabled {
		mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
		listeners = append(listeners, alert.NewMailAlerter(mailSender, appConfig.Mail.AdminMailAddress, zapLogger))
	}

	// set up dependencies
	serverRegistry := registry.NewRegistry()
	collector := metrics.NewAggregator()
	probeClient := health.NewProbeClient(appConfig.HealthCheck)
	prober := health.NewProber(appConfig.HealthCheck, probeClient, serverRegistry, collector, listeners, zapLogger)
	limiter := ratelimit.NewLimiter(appConfig.RateLimit)
	stickyMap := session.NewStickyMap(appConfig.StickySession)
	strategySelector, err := selector.NewSelector(appConfig.Server.Strategy)
	if err != nil {
		zapLogger.Fatal("failed to create selector", zap.Error(err))
	}
	loadBalancer := balancer.NewLoadBalancer(serverRegistry, prober, limiter, stickyMap, strategySelector, collector, zapLogger)
	defer loadBalancer.Close()
	scalingManager := scaling.NewManager(appConfig.Scaling, loadBalancer, zapLogger)

	lbHandler := handler.NewLoadBalancerHandler(zapLogger, loadBalancer, scalingManager)

	// Create cronjob for periodic scaling evaluation
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Scaling.EvaluateSpec, func() {
		decision := scalingManager.Evaluate()
		zapLogger.Info("scheduled scaling evaluation",
			zap.String("action", decision.Action),
			zap.String("reason", decision.Reason))
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for scaling evaluation", zap.Error(err))
	}
	cronJob.Start()
	defer cronJob.Stop()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddLoadBalancerRoutes(r, lbHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
