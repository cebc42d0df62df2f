// Package advisor generates personalized action plans for goals with a
// chat completion endpoint and falls back to the step templates.
package advisor

import (
	"context"
	"errors"
	"time"

	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/steps"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Completer sends a conversation to a chat completion endpoint.
type Completer interface {
	Complete(ctx context.Context, apiKey string, messages []models.ChatMessage) (string, error)
}

// Outcomes of a step request, used as metric label.
const (
	OutcomeGenerated      = "generated"
	OutcomeNoCredential   = "no_credential"
	OutcomeTransportError = "transport_error"
	OutcomeParseError     = "parse_error"
)

// StepRequests counts step requests by outcome.
var StepRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "advisor_step_requests_total",
		Help: "How many action plans were requested, partitioned by outcome.",
	},
	[]string{"outcome"},
)

type Advisor struct {
	client Completer
	now    func() time.Time
}

// New returns an Advisor using client. now is used to compute the time
// left until goal deadlines.
func New(client Completer, now func() time.Time) *Advisor {
	if now == nil {
		now = time.Now
	}

	return &Advisor{client: client, now: now}
}

// Steps returns the action plan for goal. It never fails and never returns
// an empty plan: without apiKey, on request failures and for replies without
// steps the template for the goal's category is returned.
func (a *Advisor) Steps(ctx context.Context, apiKey string, goal models.Goal, uc UserContext) []string {
	if apiKey == "" {
		StepRequests.WithLabelValues(OutcomeNoCredential).Inc()
		return steps.For(goal.Category)
	}

	generated, err := a.Generate(ctx, apiKey, goal, uc)
	if err != nil {
		outcome := OutcomeTransportError
		if errors.Is(err, ErrParse) {
			outcome = OutcomeParseError
		}
		StepRequests.WithLabelValues(outcome).Inc()

		log.Warn().Err(err).Str("goal", goal.Name).Str("category", string(goal.Category)).Msg("falling back to step template")
		return steps.For(goal.Category)
	}

	StepRequests.WithLabelValues(OutcomeGenerated).Inc()
	return generated
}

// Generate requests an action plan for goal and parses it. Errors wrap
// ErrTransport or ErrParse.
func (a *Advisor) Generate(ctx context.Context, apiKey string, goal models.Goal, uc UserContext) ([]string, error) {
	reply, err := a.client.Complete(ctx, apiKey, []models.ChatMessage{
		{Role: models.RoleSystem, Content: stepSystemPrompt},
		{Role: models.RoleUser, Content: BuildPrompt(goal, uc, a.now())},
	})
	if err != nil {
		return nil, err
	}

	parsed := ParseSteps(reply)
	if len(parsed) == 0 {
		return nil, ErrParse
	}

	return parsed, nil
}
