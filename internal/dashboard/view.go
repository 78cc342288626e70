package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
)

// AIAssignee is the sentinel assignee marking tasks owned by automation.
const AIAssignee = "AI"

// Campaigns below either threshold are flagged for attention. Both
// comparisons are strict: a campaign sitting exactly on a threshold is
// healthy.
const (
	ctrAttentionFloor  = 1.5
	roasAttentionFloor = 2.5
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders a dollar amount rounded to whole dollars with
// comma grouping, e.g. 124568.4 -> "$124,568".
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%d", int64(math.Round(amount)))
}

// FormatPercent renders a percentage with one decimal, e.g. 3.25 -> "3.2%".
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// TrendView describes a period-over-period change. Zero counts as up.
type TrendView struct {
	Change    float64 `json:"change"`
	Direction string  `json:"direction"`
	Display   string  `json:"display"`
}

// Trend classifies a change percentage. Non-negative changes trend up and
// carry an explicit plus sign.
func Trend(change float64) TrendView {
	if change >= 0 {
		return TrendView{Change: change, Direction: "up", Display: "+" + FormatPercent(change)}
	}
	return TrendView{Change: change, Direction: "down", Display: FormatPercent(change)}
}

// MoneyView pairs a raw amount with its display string.
type MoneyView struct {
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

func money(amount float64) MoneyView {
	return MoneyView{Amount: amount, Display: FormatCurrency(amount)}
}

// PLView is the profit and loss panel.
type PLView struct {
	Revenue  MoneyView `json:"revenue"`
	Expenses MoneyView `json:"expenses"`
	Profit   MoneyView `json:"profit"`
	ROAS     float64   `json:"roas"`
}

// PLTotals derives the P&L panel from the financial history. The first row
// is the latest snapshot; with no history every figure is zero. Expenses
// roll up ad spend, COGS, and other expenses.
func PLTotals(financials []models.Financial) PLView {
	if len(financials) == 0 {
		return PLView{Revenue: money(0), Expenses: money(0), Profit: money(0)}
	}
	latest := financials[0]
	expenses := latest.AdSpend + latest.COGS + latest.OtherExpenses
	return PLView{
		Revenue:  money(latest.Revenue),
		Expenses: money(expenses),
		Profit:   money(latest.Profit),
		ROAS:     latest.ROAS,
	}
}

// ChartPoint is one month on the revenue chart.
type ChartPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// ChartSeries converts financial rows into chart points ordered oldest
// first, labeled by month name.
func ChartSeries(financials []models.Financial) []ChartPoint {
	rows := make([]models.Financial, len(financials))
	copy(rows, financials)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ChartPoint{
			Label:   row.Date.Month().String(),
			Revenue: row.Revenue,
			Profit:  row.Profit,
		})
	}
	return points
}

// CampaignView is one row on the campaign panel.
type CampaignView struct {
	models.AdCampaign
	SpendDisplay   string `json:"spendDisplay"`
	CTRDisplay     string `json:"ctrDisplay"`
	ROASDisplay    string `json:"roasDisplay"`
	NeedsAttention bool   `json:"needsAttention"`
}

// NeedsAttention flags campaigns whose click-through rate or return on ad
// spend fall below the floors.
func NeedsAttention(campaign models.AdCampaign) bool {
	return campaign.CTR < ctrAttentionFloor || campaign.ROAS < roasAttentionFloor
}

// AgentView is one row on the AI agent panel. MetricDisplay renders the
// agent's indicator; an unset value shows as 0.0%.
type AgentView struct {
	models.AiAgent
	MetricDisplay string `json:"metricDisplay"`
	CostDisplay   string `json:"costDisplay"`
}

func agentView(agent models.AiAgent) AgentView {
	if agent.MetricName == "" {
		agent.MetricName = agent.Type.MetricName()
	}
	return AgentView{
		AiAgent:       agent,
		MetricDisplay: FormatPercent(agent.MetricValue),
		CostDisplay:   FormatCurrency(agent.Cost),
	}
}

// PMFView is the product-market-fit panel; Available is false when the
// brand has never been measured.
type PMFView struct {
	Available         bool                     `json:"available"`
	Snapshot          *models.ProductMarketFit `json:"snapshot,omitempty"`
	PMFScoreDisplay   string                   `json:"pmfScoreDisplay,omitempty"`
	ReturnRateDisplay string                   `json:"returnRateDisplay,omitempty"`
	SentimentDisplay  string                   `json:"sentimentDisplay,omitempty"`
	RepeatRateDisplay string                   `json:"repeatRateDisplay,omitempty"`
}

func pmfView(snapshot *models.ProductMarketFit) PMFView {
	if snapshot == nil {
		return PMFView{Available: false}
	}
	return PMFView{
		Available:         true,
		Snapshot:          snapshot,
		PMFScoreDisplay:   FormatPercent(snapshot.PMFScore),
		ReturnRateDisplay: FormatPercent(snapshot.ReturnRate),
		SentimentDisplay:  FormatPercent(snapshot.ReviewSentiment),
		RepeatRateDisplay: FormatPercent(snapshot.RepeatPurchaseRate),
	}
}

// Task filter keys accepted by FilterTasks.
const (
	TaskFilterAll  = "all"
	TaskFilterMine = "mine"
	TaskFilterTeam = "team"
	TaskFilterAI   = "ai"
)

// TaskGroups partitions the board by owner.
type TaskGroups struct {
	All  []models.Task `json:"all"`
	Mine []models.Task `json:"mine"`
	Team []models.Task `json:"team"`
	AI   []models.Task `json:"ai"`
}

// MeetingView is one row on the schedule panel.
type MeetingView struct {
	models.Meeting
	DayLabel  string `json:"dayLabel"`
	TimeLabel string `json:"timeLabel"`
}

// ViewModel is the composed, display-ready dashboard.
type ViewModel struct {
	Brand            models.Brand   `json:"brand"`
	ProfitLoss       PLView         `json:"profitLoss"`
	RevenueTrend     *TrendView     `json:"revenueTrend,omitempty"`
	Chart            []ChartPoint   `json:"chart"`
	Campaigns        []CampaignView `json:"campaigns"`
	Agents           []AgentView    `json:"agents"`
	ProductMarketFit PMFView        `json:"productMarketFit"`
	Tasks            TaskGroups     `json:"tasks"`
	Meetings         []MeetingView  `json:"meetings"`
}

// Composer derives display values from snapshots. Pure and deterministic:
// no I/O and no errors, so the same snapshot and clock always compose the
// same view.
type Composer struct {
	OperatorInitials string
	Now              func() time.Time
}

// NewComposer builds a composer for the given operator initials.
func NewComposer(operatorInitials string) *Composer {
	return &Composer{OperatorInitials: operatorInitials, Now: time.Now}
}

// Compose builds the full view model from a snapshot.
func (c *Composer) Compose(snapshot *Snapshot) *ViewModel {
	now := c.Now()

	campaigns := make([]CampaignView, 0, len(snapshot.AdCampaigns))
	for _, campaign := range snapshot.AdCampaigns {
		campaigns = append(campaigns, CampaignView{
			AdCampaign:     campaign,
			SpendDisplay:   FormatCurrency(campaign.Spend),
			CTRDisplay:     FormatPercent(campaign.CTR),
			ROASDisplay:    fmt.Sprintf("%.1fx", campaign.ROAS),
			NeedsAttention: NeedsAttention(campaign),
		})
	}

	agents := make([]AgentView, 0, len(snapshot.AiAgents))
	for _, agent := range snapshot.AiAgents {
		agents = append(agents, agentView(agent))
	}

	meetings := make([]MeetingView, 0, len(snapshot.Meetings))
	for _, meeting := range snapshot.Meetings {
		meetings = append(meetings, MeetingView{
			Meeting:   meeting,
			DayLabel:  DayLabel(meeting.StartTime, now),
			TimeLabel: meeting.StartTime.Format("3:04 PM"),
		})
	}

	return &ViewModel{
		Brand:            snapshot.Brand,
		ProfitLoss:       PLTotals(snapshot.Financials),
		RevenueTrend:     c.revenueTrend(snapshot.Financials),
		Chart:            ChartSeries(snapshot.Financials),
		Campaigns:        campaigns,
		Agents:           agents,
		ProductMarketFit: pmfView(snapshot.ProductMarketFit),
		Tasks: TaskGroups{
			All:  c.FilterTasks(snapshot.Tasks, TaskFilterAll),
			Mine: c.FilterTasks(snapshot.Tasks, TaskFilterMine),
			Team: c.FilterTasks(snapshot.Tasks, TaskFilterTeam),
			AI:   c.FilterTasks(snapshot.Tasks, TaskFilterAI),
		},
		Meetings: meetings,
	}
}

// revenueTrend compares the latest snapshot against the previous one.
// Fewer than two rows, or a zero baseline, yields no trend.
func (c *Composer) revenueTrend(financials []models.Financial) *TrendView {
	if len(financials) < 2 {
		return nil
	}
	latest, previous := financials[0], financials[1]
	if previous.Revenue == 0 {
		return nil
	}
	change := (latest.Revenue - previous.Revenue) / previous.Revenue * 100
	trend := Trend(change)
	return &trend
}

// FilterTasks selects tasks by owner group. Unknown filters fall back to
// the full list. Team is everything not owned by the operator or by
// automation.
func (c *Composer) FilterTasks(tasks []models.Task, filter string) []models.Task {
	selected := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		assignee := ""
		if task.AssignedTo != nil {
			assignee = *task.AssignedTo
		}
		switch filter {
		case TaskFilterMine:
			if assignee != c.OperatorInitials {
				continue
			}
		case TaskFilterTeam:
			if assignee == c.OperatorInitials || assignee == AIAssignee {
				continue
			}
		case TaskFilterAI:
			if assignee != AIAssignee {
				continue
			}
		}
		selected = append(selected, task)
	}
	return selected
}

// DayLabel renders a meeting date relative to now: Today, Tomorrow, or the
// weekday name. Comparison is by calendar date in now's location.
func DayLabel(start, now time.Time) string {
	startDay := start.In(now.Location())
	today := civilDate(now)
	switch civilDate(startDay) {
	case today:
		return "Today"
	case today.AddDate(0, 0, 1):
		return "Tomorrow"
	default:
		return startDay.Weekday().String()
	}
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
