package config

import (
	"strings"

	"github.com/IBM/sarama"
	tlsutils "github.com/RedHatInsights/insights-operator-utils/tls"
	"github.com/cloudevents/sdk-go/protocol/kafka_sarama/v2"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/content-services/domain-sync-backend/pkg/kafka"
	"github.com/rs/zerolog/log"
)

// SetupNotifications builds the cloudevents client used to publish sync
// events. A nil client disables notifications.
func SetupNotifications(kafkaServers []string, cfg Configuration) cloudevents.Client {
	saramaConfig, err := newSaramaConfig(cfg.Kafka)
	if err != nil {
		log.Error().Err(err).Msgf("Unable to load TLS config for %s cert", cfg.Kafka.Capath)
		return nil
	}

	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = DefaultNotificationsTopic
	}
	protocol, err := kafka_sarama.NewSender(kafkaServers, saramaConfig, topic)
	if err != nil {
		log.Error().Err(err).Msg("failed to create kafka_sarama protocol")
		return nil
	}

	c, err := cloudevents.NewClient(protocol, cloudevents.WithTimeNow(), cloudevents.WithUUIDs())
	if err != nil {
		log.Error().Err(err).Msg("failed to create cloudevents client")
		return nil
	}
	return c
}

func newSaramaConfig(kafkaConfig Kafka) (*sarama.Config, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V2_0_0_0
	saramaConfig.Producer.Return.Successes = true

	if strings.Contains(kafkaConfig.Sasl.Protocol, "SSL") {
		log.Warn().Msgf("Configuring SSL authentication: %s", kafkaConfig.Sasl.Protocol)
		saramaConfig.Net.TLS.Enable = true
	}

	if kafkaConfig.Capath != "" {
		tlsConfig, err := tlsutils.NewTLSConfig(kafkaConfig.Capath)
		if err != nil {
			return nil, err
		}
		saramaConfig.Net.TLS.Enable = true
		saramaConfig.Net.TLS.Config = tlsConfig
	}

	if strings.HasPrefix(kafkaConfig.Sasl.Protocol, "SASL_") {
		log.Warn().Msgf("Configuring SASL authentication: %s", kafkaConfig.Sasl.Protocol)
		saramaConfig.Net.SASL.Enable = true
		saramaConfig.Net.SASL.User = kafkaConfig.Sasl.Username
		saramaConfig.Net.SASL.Password = kafkaConfig.Sasl.Password
		saramaConfig.Net.SASL.Mechanism = sarama.SASLMechanism(kafkaConfig.Sasl.Mechanism)

		switch saramaConfig.Net.SASL.Mechanism {
		case sarama.SASLTypeSCRAMSHA512:
			saramaConfig.Net.SASL.SCRAMClientGeneratorFunc = kafka.NewSHA512Client
		case sarama.SASLTypeSCRAMSHA256:
			saramaConfig.Net.SASL.SCRAMClientGeneratorFunc = kafka.NewSHA256Client
		}
	}
	return saramaConfig, nil
}
