package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/config"
)

type Config struct {
	Server   config.ServerConfig   `yaml:"server"`
	Redis    config.RedisConfig    `yaml:"redis"`
	DB       config.DBConfig       `yaml:"db"`
	MQ       config.MQConfig       `yaml:"mq"`
	Upstream config.UpstreamConfig `yaml:"upstream"`
}

func Load() *Config {
	// 使用统一配置中心
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 转换为 Config 结构
	var cfg Config
	cfgData, err := yaml.Marshal(cfgMap)
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	// 环境变量覆盖（优先级最高）
	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideDBFromEnv(&cfg.DB)
	config.OverrideMQFromEnv(&cfg.MQ)
	config.OverrideUpstreamFromEnv(&cfg.Upstream)

	if cfg.Server.Port == "" {
		cfg.Server.Port = "3000"
	}

	return &cfg
}
