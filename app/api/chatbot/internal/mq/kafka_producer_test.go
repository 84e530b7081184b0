package mq

import (
	"testing"

	"DulceAI/app/api/chatbot/internal/config"
	"DulceAI/app/api/chatbot/internal/svc"

	"github.com/stretchr/testify/assert"
)

func TestPublishChatEventNoBrokerConfigured(t *testing.T) {
	sc := &svc.ServiceContext{}
	assert.NoError(t, PublishChatEvent(sc, ChatEvent{Category: "productos"}))
}

func TestPublishChatEventEphemeralWriterFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("dials an unreachable broker")
	}
	sc := &svc.ServiceContext{Config: config.Config{
		KafkaConf: config.KafkaConf{
			Broker:         []string{"127.0.0.1:1"},
			ChatEventTopic: "chatbot.events",
		},
	}}

	// takes the short-lived writer path and must surface the write error
	// after releasing the writer
	assert.Error(t, PublishChatEvent(sc, ChatEvent{Category: "productos"}))
}
