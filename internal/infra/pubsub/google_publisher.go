package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"proximity/internal/domain/service"
	"proximity/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	ordered   bool
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher.
// With orderByUser the subscription must have message ordering enabled.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, orderByUser bool, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = orderByUser

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
		slog.Bool("order_by_user", orderByUser),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		ordered:   orderByUser,
		logger:    logger,
	}, nil
}

// PublishGeofenceEvent publishes an event to Google Pub/Sub and waits for the server ack
func (p *googlePubSubPublisher) PublishGeofenceEvent(ctx context.Context, msg *service.GeofenceEventMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	message := &pubsub.Message{
		Data:       data,
		Attributes: messageAttributes(msg),
	}
	if p.ordered {
		message.OrderingKey = orderingKey(msg)
	}

	result := p.publisher.Publish(ctx, message)

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed
		if message.OrderingKey != "" {
			p.publisher.ResumePublish(message.OrderingKey)
		}

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("event_id", msg.Event.ID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
