package rabbitmq

import "context"

type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data interface{}) error
}

var _ PublisherInterface = (*Publisher)(nil)
