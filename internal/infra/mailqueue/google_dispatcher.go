package mailqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"gatekeeper/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubDispatcher implements MailDispatcher using Google Cloud Pub/Sub
type googlePubSubDispatcher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubDispatcher creates a new Google Pub/Sub mail dispatcher
func NewGooglePubSubDispatcher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.MailDispatcher, error) {
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

	logger.Info("Google Pub/Sub mail dispatcher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubDispatcher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Enqueue publishes an email job to Google Pub/Sub
func (d *googlePubSubDispatcher) Enqueue(ctx context.Context, job *service.EmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	// Attributes let the worker filter by job name without decoding the payload
	msg := &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"job":      job.Name,
			"attempts": strconv.Itoa(job.Attempts),
		},
	}

	d.logger.Info("[GooglePubSub] Publishing email job",
		slog.String("job", job.Name),
	)

	result := d.publisher.Publish(ctx, msg)

	// Wait for publish result
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	d.logger.Info("[GooglePubSub] Email job published successfully",
		slog.String("job", job.Name),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (d *googlePubSubDispatcher) Close() error {
	if d.publisher != nil {
		d.publisher.Stop()
	}
	if d.client != nil {
		return errors.WithStack(d.client.Close())
	}

	return nil
}
