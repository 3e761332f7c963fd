package kafka

import (
	"fmt"
	"sync"

	"companion-srv/config"
	"companion-srv/pkg/kafka"
)

var (
	instance kafka.IProducer
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes and connects to Kafka using singleton pattern.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		clientCfg := kafka.Config{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
		}

		client, e := kafka.NewProducer(clientCfg)
		if e != nil {
			err = fmt.Errorf("failed to initialize Kafka producer: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// GetClient returns the singleton Kafka producer instance.
func GetClient() kafka.IProducer {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Kafka producer not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the Kafka producer and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return err
		}
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
