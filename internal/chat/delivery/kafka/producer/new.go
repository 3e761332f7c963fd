package producer

import (
	"companion-srv/internal/chat"
	pkgKafka "companion-srv/pkg/kafka"
	"companion-srv/pkg/log"
)

// Producer interface for the chat domain
type Producer interface {
	chat.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new chat producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
