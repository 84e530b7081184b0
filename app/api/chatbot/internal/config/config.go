// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	Mysql struct {
		DataSource string
	}
	CacheRedis cache.CacheConf
	BizRedis   redis.RedisConf `json:",optional"`

	ChatModel  ModelConf `json:",optional"`
	ImageModel ModelConf `json:",optional"`

	Classifier ClassifierConf `json:",optional"`
	RateLimit  RateLimitConf  `json:",optional"`
	KafkaConf  KafkaConf      `json:",optional"`
	Cors       CorsConf       `json:",optional"`

	LogConf logx.LogConf
}

type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

// ClassifierConf tunes the keyword classifier. EscalateBelow is the
// normalized score under which a message goes to the AI fallback;
// ShortCircuitConfidence is reported for prefiltered messages;
// MaxOutputLength caps the tokens the chat model may generate per reply.
type ClassifierConf struct {
	EnableAI               bool    `json:",default=true"`
	EscalateBelow          float64 `json:",default=0.3"`
	ShortCircuitConfidence float64 `json:",default=0.9"`
	MaxOutputLength        int     `json:",default=512"`
}

type RateLimitConf struct {
	PeriodSeconds int `json:",default=60"`
	Quota         int `json:",default=30"`
}

type KafkaConf struct {
	Broker         []string `json:",optional"`
	ChatEventTopic string   `json:",optional"`
}

type CorsConf struct {
	AllowOrigins string `json:",default=*"`
}
