package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/dependencies"
	"github.com/Xushengqwer/mp_hub/initialization"
	"github.com/Xushengqwer/mp_hub/router"
)

// @title           MP Hub API
// @version         1.0
// @description     公众号 JS-SDK 签名、卡券与模板消息服务 API 文档

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @host      localhost:8082
// @schemes http https
func main() {
	var (
		configFile  string
		issueCaller string
	)
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.StringVar(&issueCaller, "issue-token", "", "为指定调用方签发服务令牌后退出")
	flag.Parse()

	// .env 仅用于本地开发，不存在时忽略
	_ = godotenv.Load()

	// 1. 加载配置
	var cfg config.MpHubConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}
	applyEnvOverrides(&cfg)

	// 签发令牌模式：不启动服务
	if issueCaller != "" {
		token, err := dependencies.NewJWTUtility(&cfg.JWTConfig).GenerateServiceToken(issueCaller)
		if err != nil {
			log.Fatalf("FATAL: 签发服务令牌失败: %v", err)
		}
		fmt.Println(token)
		return
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider (如果启用)
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(
			constants.ServiceName,
			constants.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// 4. 初始化基础依赖 (缓存, 服务令牌, 微信客户端)
	appDeps, err := initialization.SetupDependencies(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化基础依赖失败", zap.Error(err))
	}
	defer appDeps.Close()
	logger.Info("基础依赖初始化成功")

	// 5. 初始化服务层实例
	appServices := initialization.SetupServices(appDeps)
	logger.Info("服务层初始化成功")

	// 6. 设置路由和中间件
	setupRouter := router.SetupRouter(logger, &cfg, appDeps, appServices)
	logger.Info("Gin 路由器设置完成")

	// 7. 配置并启动 HTTP 服务器
	serverAddress := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	srv := &http.Server{
		Addr:    serverAddress,
		Handler: otelhttp.NewHandler(setupRouter, "HTTPServer"),
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// 8. 等待中断信号以实现优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	recSignal := <-quit
	logger.Info("接收到关停信号", zap.String("signal", recSignal.String()))

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	logger.Info("开始优雅关停 HTTP 服务器...")
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP 服务器优雅关停失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	logger.Info("服务已完全关闭")
}

// applyEnvOverrides 用环境变量覆盖文件配置，密钥类配置只记录是否被覆盖
func applyEnvOverrides(cfg *config.MpHubConfig) {
	log.Println("检查环境变量以覆盖 MP Hub 的文件配置...")

	if level := os.Getenv("ZAPCONFIG_LEVEL"); level != "" {
		cfg.ZapConfig.Level = level
		log.Printf("通过环境变量覆盖了 ZapConfig.Level: %s\n", level)
	}
	if port := os.Getenv("SERVERCONFIG_PORT"); port != "" {
		cfg.ServerConfig.Port = port
		log.Printf("通过环境变量覆盖了 ServerConfig.Port: %s\n", port)
	}
	if enabled, err := strconv.ParseBool(os.Getenv("TRACERCONFIG_ENABLED")); err == nil {
		cfg.TracerConfig.Enabled = enabled
		log.Printf("通过环境变量覆盖了 TracerConfig.Enabled: %t\n", enabled)
	}
	// JWT
	if key := os.Getenv("JWTCONFIG_SECRET_KEY"); key != "" {
		cfg.JWTConfig.SecretKey = key
		log.Printf("通过环境变量覆盖了 JWTConfig.SecretKey")
	}
	// Wechat
	if appID := os.Getenv("WECHATCONFIG_APPID"); appID != "" {
		cfg.WechatConfig.AppID = appID
		log.Printf("通过环境变量覆盖了 WechatConfig.AppID: %s\n", appID)
	}
	if secret := os.Getenv("WECHATCONFIG_SECRET"); secret != "" {
		cfg.WechatConfig.Secret = secret
		log.Printf("通过环境变量覆盖了 WechatConfig.Secret")
	}
	if pageURL := os.Getenv("WECHATCONFIG_DEFAULT_PAGE_URL"); pageURL != "" {
		cfg.WechatConfig.DefaultPageURL = pageURL
		log.Printf("通过环境变量覆盖了 WechatConfig.DefaultPageURL: %s\n", pageURL)
	}
	// Cache & Redis
	if driver := os.Getenv("CACHECONFIG_DRIVER"); driver != "" {
		cfg.CacheConfig.Driver = driver
		log.Printf("通过环境变量覆盖了 CacheConfig.Driver: %s\n", driver)
	}
	if path := os.Getenv("CACHECONFIG_LOCAL_PATH"); path != "" {
		cfg.CacheConfig.LocalPath = path
		log.Printf("通过环境变量覆盖了 CacheConfig.LocalPath: %s\n", path)
	}
	if addr := os.Getenv("REDISCONFIG_ADDRESS"); addr != "" {
		cfg.RedisConfig.Address = addr
		log.Printf("通过环境变量覆盖了 RedisConfig.Address: %s\n", addr)
	}
	if port, err := strconv.Atoi(os.Getenv("REDISCONFIG_PORT")); err == nil {
		cfg.RedisConfig.Port = port
		log.Printf("通过环境变量覆盖了 RedisConfig.Port: %d\n", port)
	}
	if pass := os.Getenv("REDISCONFIG_PASSWORD"); pass != "" {
		cfg.RedisConfig.Password = pass
		log.Printf("通过环境变量覆盖了 RedisConfig.Password")
	}
}
