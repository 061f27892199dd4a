// Package commentary turns structured draft recommendations into a
// short natural-language note via the Anthropic API. It is a
// collaborator of the HTTP layer; the draft core never depends on it.
package commentary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/nexusdraft/hots-draft-backend/internal/draft"
)

var ErrDisabled = errors.New("commentary disabled: no API key configured")

const systemPrompt = "You are a Heroes of the Storm draft coach. " +
	"Given the draft state and scored suggestions, write 2-3 sentences of " +
	"plain-language advice for the team's next action. Mention at most two " +
	"heroes. No markdown, no lists."

// How many scored suggestions make it into the prompt.
const promptTopN = 5

type Generator struct {
	client  anthropic.Client
	model   string
	enabled bool
}

func New(apiKey, model string) *Generator {
	if apiKey == "" {
		return &Generator{}
	}
	return &Generator{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		enabled: true,
	}
}

// Generate produces one draft note for the current turn.
func (g *Generator) Generate(ctx context.Context, battleground string, st draft.State, recs []draft.Recommendation) (string, error) {
	if !g.enabled {
		return "", ErrDisabled
	}

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 512,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(battleground, st, recs))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

// BuildPrompt renders the draft state and top suggestions as plain
// text. Exported for tests; the wording is part of no contract.
func BuildPrompt(battleground string, st draft.State, recs []draft.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Battleground: %s\n", battleground)

	if step, done := st.CurrentStep(); done {
		b.WriteString("Draft complete.\n")
	} else {
		fmt.Fprintf(&b, "Turn %d: %s %s\n", step.Index, step.Team, step.Action)
	}

	for _, team := range []draft.Team{draft.TeamBlue, draft.TeamRed} {
		label := "enemy"
		if team == st.OurTeam {
			label = "ours"
		}
		fmt.Fprintf(&b, "%s (%s) picks: %s; bans: %s\n",
			team, label,
			joinOrNone(st.TeamPicks(team)),
			joinOrNone(st.BansForTeam(team)))
	}

	if len(recs) > 0 {
		b.WriteString("Top suggestions:\n")
		for i, r := range recs {
			if i >= promptTopN {
				break
			}
			fmt.Fprintf(&b, "- %s (%+.1f)", r.Hero, r.NetDelta)
			if len(r.Reasons) > 0 {
				fmt.Fprintf(&b, ": %s", r.Reasons[0].Label)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func joinOrNone(heroes []string) string {
	if len(heroes) == 0 {
		return "none"
	}
	return strings.Join(heroes, ", ")
}
