package ioc

import (
	"log"

	"github.com/IBM/sarama"
	"github.com/spf13/viper"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/config"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/event"
)

func InitSaramaClient() sarama.Client {
	var cfg config.KafkaConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal kafka config failed: %v", err)
	}
	scfg := sarama.NewConfig()
	scfg.Producer.Return.Successes = true
	client, err := sarama.NewClient(cfg.Addrs, scfg)
	if err != nil {
		log.Panicf("create kafka client failed: %v", err)
	}
	return client
}

func InitSyncProducer(client sarama.Client) event.Producer {
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		log.Panicf("create kafka sync producer failed: %v", err)
	}
	return event.NewSaramaSyncProducer(producer)
}

func InitConsumerGroup(client sarama.Client) sarama.ConsumerGroup {
	var cfg config.KafkaConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal kafka config failed: %v", err)
	}
	group, err := sarama.NewConsumerGroupFromClient(cfg.GroupID, client)
	if err != nil {
		log.Panicf("create kafka consumer group failed: %v", err)
	}
	return group
}
