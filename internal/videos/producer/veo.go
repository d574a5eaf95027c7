package producer

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/videos"
	"github.com/scripturecast/scripture-backend/pkg/logger"
)

type veoProducer struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewVeoProducer builds the Veo-backed producer. A missing API key yields a
// producer whose Submit reports ErrProducerNotConfigured instead of a
// constructor error, so the server still boots and jobs record the
// configuration problem per chapter.
func NewVeoProducer(ctx context.Context, cfg *config.Config, log logger.Logger) (videos.Producer, error) {
	p := &veoProducer{
		model:  cfg.Veo.Model,
		logger: log,
	}
	if cfg.Veo.APIKey == "" {
		log.Warn("veo API key not configured, video production disabled")
		return p, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Veo.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "veo: failed to create genai client")
	}
	p.client = client
	return p, nil
}

func (p *veoProducer) Submit(ctx context.Context, prompt string) (string, error) {
	if p.client == nil {
		return "", videos.ErrProducerNotConfigured
	}
	operation, err := p.client.Models.GenerateVideos(ctx, p.model, prompt, nil, nil)
	if err != nil {
		// Provider rejections and transport failures must stay
		// distinguishable in the stored error message.
		var apiErr genai.APIError
		if stderrors.As(err, &apiErr) {
			return "", errors.Wrapf(err, "veo: provider rejected the request (status %d)", apiErr.Code)
		}
		return "", errors.Wrap(err, "veo: provider unreachable")
	}
	p.logger.Infof("veo operation started: %s", operation.Name)
	return operation.Name, nil
}

func (p *veoProducer) FetchStatus(ctx context.Context, taskID string) (*videos.OperationStatus, error) {
	if p.client == nil {
		return nil, videos.ErrProducerNotConfigured
	}
	operation := &genai.GenerateVideosOperation{Name: taskID}
	operation, err := p.client.Operations.GetVideosOperation(ctx, operation, nil)
	if err != nil {
		return nil, errors.Wrap(err, "veo: failed to fetch operation status")
	}
	if !operation.Done {
		return &videos.OperationStatus{}, nil
	}
	if operation.Response != nil && len(operation.Response.GeneratedVideos) > 0 &&
		operation.Response.GeneratedVideos[0].Video != nil {
		return &videos.OperationStatus{
			Done:     true,
			VideoURL: operation.Response.GeneratedVideos[0].Video.URI,
		}, nil
	}
	return &videos.OperationStatus{
		Done:       true,
		ErrMessage: operationError(operation),
	}, nil
}

func operationError(operation *genai.GenerateVideosOperation) string {
	if operation.Error != nil {
		if msg, ok := operation.Error["message"].(string); ok && msg != "" {
			return msg
		}
		return fmt.Sprintf("video generation failed: %v", operation.Error)
	}
	return "video generation finished without output"
}
