package mq

import (
	"context"
	"encoding/json"
	"time"

	"DulceAI/app/api/chatbot/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishChatEvent sends a chat event to Kafka. Uses the shared writer in
// ServiceContext when available, else creates a short-lived writer to
// publish one message. A missing broker config disables publishing.
func PublishChatEvent(sc *svc.ServiceContext, evt ChatEvent) error {
	if len(sc.Config.KafkaConf.Broker) == 0 || sc.Config.KafkaConf.ChatEventTopic == "" {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	w := sc.KafkaWriter
	if w == nil {
		ww := &kafka.Writer{
			Addr:                   kafka.TCP(sc.Config.KafkaConf.Broker...),
			Topic:                  sc.Config.KafkaConf.ChatEventTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer ww.Close()
		w = ww
	}
	return w.WriteMessages(context.Background(), kafka.Message{Value: body})
}
