package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/bytedance/sonic"
	"github.com/charmbracelet/glamour"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pable/go-faceit-insights/internal/aggregator"
	"github.com/pable/go-faceit-insights/internal/report"
)

const analyzeSystemPrompt = `You are a Counter-Strike 2 performance analyst. You are given structured data
derived from a FACEIT match and a question from the player.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable. Focus on what the player can actually improve.
- Avoid generic CS2 advice unless it directly explains a pattern in the data.

Metrics glossary:
- ADR: Avg Damage per Round. Typical range 60-90. <60 is low.
- K/D: Kills / deaths. 1.0 is break-even.
- K/R: Kills per round.
- Survival: 1 - deaths / rounds. Share of rounds the player lived through.
- Impact: kills / rounds, the Y axis of the impact matrix.
- Quadrant: MVP (high survival, high impact), Aggressive (low survival, high
  impact), Passive (high survival, low impact), Struggling (low, low). Split at
  the midpoint of the observed range in this match.
- Entry aggression: K/R x (1 - survival). High = trades life for early kills.
- Entry: opening duels taken, with success rate and first kills.
- Badges: superlatives awarded to the single best player in each category.
- Team profile: per-team averages (ADR, HS%, entry success, utility damage),
  flash efficiency (enemies flashed per flash thrown, x100) and K/D x100.`

var (
	analyzeModel    string
	analyzeAPIKey   string
	analyzeMarkdown bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
}

var analyzeMatchCmd = &cobra.Command{
	Use:   "match <match-id> <question>",
	Short: "Ask a question about a single FACEIT match",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzeMatch,
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeModel, "model", "", "Anthropic model to use (default from config)")
	analyzeCmd.PersistentFlags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
	analyzeCmd.PersistentFlags().BoolVar(&analyzeMarkdown, "markdown", false, "render the full answer as markdown instead of streaming it")

	analyzeCmd.AddCommand(analyzeMatchCmd)
}

func runAnalyzeMatch(cmd *cobra.Command, args []string) error {
	client, closeFn, err := newClient()
	if err != nil {
		return err
	}
	defer closeFn()

	m, err := fetchMatch(cmd.Context(), client, args[0])
	if err != nil {
		return err
	}
	contextJSON, err := buildMatchContext(deriveReport(m))
	if err != nil {
		return errors.Wrap(err, "build context")
	}

	modelID := analyzeModel
	if modelID == "" {
		modelID = cfg.AnthropicModel
	}
	if !analyzeMarkdown {
		return callAnthropic(cmd.Context(), os.Stdout, analyzeAPIKey, modelID, contextJSON, args[1])
	}

	var answer strings.Builder
	if err := callAnthropic(cmd.Context(), &answer, analyzeAPIKey, modelID, contextJSON, args[1]); err != nil {
		return err
	}
	out, err := renderMarkdown(answer.String())
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}

// renderMarkdown styles text for the terminal.
func renderMarkdown(text string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return "", errors.Wrap(err, "markdown renderer")
	}
	out, err := r.Render(text)
	if err != nil {
		return "", errors.Wrap(err, "render markdown")
	}
	return out, nil
}

type analyzePlayer struct {
	Name            string   `json:"name"`
	Team            string   `json:"team"`
	Level           int      `json:"level,omitempty"`
	Kills           int      `json:"kills"`
	Deaths          int      `json:"deaths"`
	Assists         int      `json:"assists"`
	KD              float64  `json:"kd"`
	KR              float64  `json:"kr"`
	ADR             float64  `json:"adr"`
	HSPct           int      `json:"hs_pct"`
	Survival        *float64 `json:"survival,omitempty"`
	EntryAggression float64  `json:"entry_aggression"`
	Entries         int      `json:"entries"`
	EntryWins       int      `json:"entry_wins"`
	FirstKills      int      `json:"first_kills"`
	UtilityDamage   int      `json:"utility_damage"`
	EnemiesFlashed  int      `json:"enemies_flashed"`
	Badges          []string `json:"badges,omitempty"`
	Quadrant        string   `json:"quadrant,omitempty"`
}

type analyzeTeam struct {
	Name    string                   `json:"name"`
	Score   int                      `json:"score"`
	Profile *aggregator.RadarProfile `json:"profile,omitempty"`
}

// buildMatchContext serialises the derived match report into compact JSON.
func buildMatchContext(rep matchReport) (string, error) {
	m := rep.Match

	quadrants := make(map[string]string, len(m.Players))
	for _, p := range aggregator.ImpactMatrix(m.Players, m.TotalRounds) {
		quadrants[p.Nickname] = p.Quadrant
	}

	players := make([]analyzePlayer, 0, len(m.Players))
	for _, p := range m.Players {
		s := p.Stats
		ap := analyzePlayer{
			Name:            p.Nickname,
			Team:            p.Team(),
			Level:           p.SkillLevel,
			Kills:           s.Kills(),
			Deaths:          s.Deaths(),
			Assists:         s.Assists(),
			KD:              s.KDRatio(),
			KR:              s.KRRatio(),
			ADR:             s.ADR(),
			HSPct:           s.HeadshotPct(),
			EntryAggression: aggregator.Truncate2(aggregator.EntryAggression(p, m.TotalRounds)),
			Entries:         s.EntryCount(),
			EntryWins:       s.EntryWins(),
			FirstKills:      s.FirstKills(),
			UtilityDamage:   s.UtilityDamage(),
			EnemiesFlashed:  s.EnemiesFlashed(),
			Quadrant:        quadrants[p.Nickname],
		}
		if v, ok := aggregator.SurvivalRate(p, m.TotalRounds); ok {
			v = aggregator.Truncate2(v)
			ap.Survival = &v
		}
		for _, b := range rep.Badges.For(p.PlayerID) {
			ap.Badges = append(ap.Badges, b.Label)
		}
		players = append(players, ap)
	}

	teams := make([]analyzeTeam, 0, len(rep.Rosters))
	for _, r := range rep.Rosters {
		t := analyzeTeam{Name: r.Name}
		switch r.Name {
		case m.TeamA.Name:
			t.Score = m.ScoreA
		case m.TeamB.Name:
			t.Score = m.ScoreB
		}
		if prof, ok := aggregator.TeamProfile(r); ok {
			t.Profile = &prof
		}
		teams = append(teams, t)
	}

	doc := map[string]any{
		"subject":        "match",
		"match_id":       m.MatchID,
		"map":            m.Map.Name,
		"location":       m.Location.Name,
		"rounds":         m.TotalRounds,
		"score":          fmt.Sprintf("%d-%d", m.ScoreA, m.ScoreB),
		"winner":         m.Winner,
		"teams":          teams,
		"players":        players,
		"clutch_leaders": aggregator.ClutchLeaders(m.Players, report.ClutchLeaderLimit),
	}
	if len(rep.Rosters) == 2 {
		doc["comparison"] = aggregator.CompareTeams(rep.Rosters[0], rep.Rosters[1])
	}

	b, err := sonic.Marshal(doc)
	return string(b), err
}

// callAnthropic streams a response from the Anthropic API into out.
func callAnthropic(ctx context.Context, out io.Writer, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return errors.New("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)
	log.Debug("calling anthropic", "model", modelID, "context_bytes", len(dataJSON))

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(out, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return errors.New("API authentication failed, check your API key")
		}
		return errors.Wrap(err, "streaming error")
	}
	return nil
}
