// Package mailqueue publishes email jobs onto the notification queue consumed
// by the mail worker.
package mailqueue

import (
	"context"
	"log/slog"

	"gatekeeper/config"
	"gatekeeper/internal/domain/constants"
	"gatekeeper/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopDispatcher is a no-op implementation when the queue is disabled.
type noopDispatcher struct {
	logger *slog.Logger
}

func (d *noopDispatcher) Enqueue(_ context.Context, job *service.EmailJob) error {
	d.logger.Debug("[NoopMailQueue] Queue disabled, dropping email job",
		slog.String("job", job.Name),
	)

	return nil
}

func (d *noopDispatcher) Close() error {
	return nil
}

// DispatcherParams holds dependencies for MailDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailDispatcher creates a MailDispatcher based on configuration
func NewMailDispatcher(params DispatcherParams) (service.MailDispatcher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If the queue is not configured, return a no-op dispatcher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Mail queue not configured, using no-op dispatcher")

		return &noopDispatcher{logger: logger}, nil
	}

	var dispatcher service.MailDispatcher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP dispatcher for mail queue",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		dispatcher = NewLocalHTTPDispatcher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub dispatcher for mail queue",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		dispatcher, err = NewGooglePubSubDispatcher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown mail queue provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close dispatcher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing MailDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the mail queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailDispatcher),
)
