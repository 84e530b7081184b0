// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"time"

	"DulceAI/app/api/chatbot/internal/classifier"
	"DulceAI/app/api/chatbot/internal/config"
	"DulceAI/app/api/chatbot/internal/llm"
	"DulceAI/app/dal/payment"
	"DulceAI/app/dal/product"
	"DulceAI/app/dal/shipping"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// MessageClassifier is what the chat logic needs from the classifier.
type MessageClassifier interface {
	Classify(ctx context.Context, message string) classifier.Result
}

type ServiceContext struct {
	Config config.Config

	ProductosModel    product.ProductosModel
	ZonasEntregaModel shipping.ZonasEntregaModel
	MediosPagoModel   payment.MediosPagoModel

	Classifier MessageClassifier
	TextGen    llm.TextGenerator
	ImageGen   llm.ImageGenerator

	KafkaWriter *kafka.Writer
	RateLimiter *limit.PeriodLimit
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	conn := sqlx.NewMysql(c.Mysql.DataSource)
	sc := &ServiceContext{
		Config:            c,
		ProductosModel:    product.NewProductosModel(conn, c.CacheRedis),
		ZonasEntregaModel: shipping.NewZonasEntregaModel(conn, c.CacheRedis),
		MediosPagoModel:   payment.NewMediosPagoModel(conn, c.CacheRedis),
	}

	var fallback *classifier.Fallback
	if c.Classifier.EnableAI && c.ChatModel.APIKey != "" {
		ctx := context.Background()
		mc := &ark.ChatModelConfig{
			BaseURL: c.ChatModel.BaseUrl,
			APIKey:  c.ChatModel.APIKey,
			Model:   c.ChatModel.Model,
		}
		if n := c.Classifier.MaxOutputLength; n > 0 {
			mc.MaxTokens = &n
		}
		cm, err := ark.NewChatModel(ctx, mc)
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else {
			gen, err := llm.NewGenerator(ctx, logx.WithContext(ctx), cm)
			if err != nil {
				logx.Errorw("init text generator failed", logx.Field("err", err))
			} else {
				sc.TextGen = gen
				fallback = classifier.NewFallback(logx.WithContext(ctx), gen)
				logx.Infow("ark chat model initialized")
			}
		}
	}

	if c.ImageModel.APIKey != "" {
		img, err := llm.NewDalleGenerator(logx.WithContext(context.Background()),
			c.ImageModel.APIKey, c.ImageModel.BaseUrl, c.ImageModel.Model, "")
		if err != nil {
			logx.Errorw("init image generator failed", logx.Field("err", err))
		} else {
			sc.ImageGen = img
		}
	}

	sc.Classifier = classifier.New(classifier.Config{
		EscalateBelow:          c.Classifier.EscalateBelow,
		ShortCircuitConfidence: c.Classifier.ShortCircuitConfidence,
	}, fallback)

	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.ChatEventTopic != "" {
		sc.KafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(c.KafkaConf.Broker...),
			Topic:                  c.KafkaConf.ChatEventTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
	}

	if c.BizRedis.Host != "" {
		sc.RateLimiter = limit.NewPeriodLimit(c.RateLimit.PeriodSeconds, c.RateLimit.Quota,
			redis.MustNewRedis(c.BizRedis), "chatbot:ratelimit:")
	}

	return sc
}
