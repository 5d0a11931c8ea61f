package initialization

import (
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/dependencies"
	"github.com/Xushengqwer/mp_hub/repository"
	"github.com/Xushengqwer/mp_hub/repository/local"
	"github.com/Xushengqwer/mp_hub/repository/memory"
	redisRepo "github.com/Xushengqwer/mp_hub/repository/redis"
	"github.com/Xushengqwer/mp_hub/utils"
)

// AppDependencies 封装了应用运行所需的所有基础依赖项。
type AppDependencies struct {
	Config       *config.MpHubConfig                // Config: 应用的全局配置。
	Logger       *core.ZapLogger                    // Logger: Zap 日志记录器实例。
	RedisClient  *redis.Client                      // RedisClient: 仅在缓存驱动为 redis 时非空。
	TicketCache  repository.TicketCache             // TicketCache: ticket 与 access_token 共用的缓存。
	ServiceToken dependencies.ServiceTokenInterface // ServiceToken: 管理接口使用的服务令牌工具。
	WechatClient dependencies.WechatClient          // WechatClient: 微信 API 客户端实例。

	closers []func() error
}

// SetupDependencies 初始化应用所需的所有基础依赖项。
// 参数:
//   - cfg: *config.MpHubConfig，应用的全局配置。
//   - logger: *core.ZapLogger，已初始化的日志记录器实例。
//
// 返回:
//   - *AppDependencies: 包含所有成功初始化的依赖项的结构体指针。
//   - error: 如果任何关键依赖项初始化失败，则返回相应的错误。
func SetupDependencies(cfg *config.MpHubConfig, logger *core.ZapLogger) (*AppDependencies, error) {
	deps := &AppDependencies{
		Config: cfg,
		Logger: logger,
	}

	// 1. 注册自定义验证器
	if err := utils.RegisterCustomValidators(); err != nil {
		return nil, fmt.Errorf("注册自定义验证器失败: %w", err)
	}
	logger.Info("自定义验证器注册成功")

	// 2. 初始化 ticket 缓存
	if err := deps.setupTicketCache(); err != nil {
		return nil, err
	}

	// 3. 初始化服务令牌工具
	deps.ServiceToken = dependencies.NewJWTUtility(&cfg.JWTConfig)
	logger.Info("服务令牌工具初始化成功")

	// 4. 初始化微信客户端，access_token 与 ticket 共用同一个缓存
	if cfg.WechatConfig.AppID == "" || cfg.WechatConfig.Secret == "" {
		logger.Warn("未配置公众号 AppID / Secret，所有微信接口调用都会失败")
	}
	deps.WechatClient = dependencies.NewWechatClient(&cfg.WechatConfig, deps.TicketCache, logger.Logger())
	logger.Info("微信客户端初始化成功", zap.String("appID", cfg.WechatConfig.AppID))

	logger.Info("所有基础依赖项初始化完成")
	return deps, nil
}

// setupTicketCache 按 CacheConfig.Driver 选择缓存实现
func (d *AppDependencies) setupTicketCache() error {
	cfg := d.Config
	driver := cfg.CacheConfig.Driver
	if driver == "" {
		driver = config.CacheDriverRedis
	}

	switch driver {
	case config.CacheDriverRedis:
		redisClient, err := dependencies.InitRedis(&cfg.RedisConfig, d.Logger)
		if err != nil {
			return fmt.Errorf("初始化 Redis 失败: %w", err)
		}
		d.RedisClient = redisClient
		d.TicketCache = redisRepo.NewTicketCache(redisClient)
		d.closers = append(d.closers, redisClient.Close)

	case config.CacheDriverLocal:
		fileCache, err := local.NewTicketCache(cfg.CacheConfig.LocalPath)
		if err != nil {
			return fmt.Errorf("初始化本地文件缓存失败: %w", err)
		}
		d.TicketCache = fileCache
		d.closers = append(d.closers, fileCache.Close)

	case config.CacheDriverMemory:
		d.Logger.Warn("使用进程内缓存，多实例部署时各实例会分别刷新 ticket")
		d.TicketCache = memory.NewTicketCache()

	default:
		return fmt.Errorf("不支持的缓存驱动: %q", driver)
	}

	d.Logger.Info("ticket 缓存初始化成功", zap.String("driver", driver))
	return nil
}

// Close 释放缓存连接
func (d *AppDependencies) Close() {
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			d.Logger.Error("关闭依赖失败", zap.Error(err))
		}
	}
}
