package cli

import (
	"fmt"
	"strings"

	"debt-planner/domain"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. The first column is left aligned,
// the rest right aligned. A row holding only "---" draws a separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], false) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(" " + pad(cell, widths[i], i > 0) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// pad fills s to width visible cells, ignoring ANSI styling.
func pad(s string, width int, right bool) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// RenderProjection renders the totals of a single-debt projection and, when
// requested, its month-by-month schedule.
func RenderProjection(p domain.ProjectionResponse, withSchedule bool) string {
	rows := [][]string{
		{"Status", projectionStatus(p.PayoffResult)},
		{"Months", FormatMonths(p.Months)},
		{"Payoff date", FormatDate(p.PayoffDate)},
		{"Total interest", FormatMoney(p.TotalInterest)},
		{"Total paid", FormatMoney(p.TotalPaid)},
	}
	if p.SuggestedPayment != nil {
		rows = append(rows, []string{"Suggested payment", FormatMoney(*p.SuggestedPayment)})
	}

	var b strings.Builder
	b.WriteString(RenderTable(Table{Title: "Projection", Rows: rows}))

	if withSchedule && len(p.Schedule) > 0 {
		schedule := Table{
			Title:   "Schedule",
			Headers: []string{"Month", "Type", "Payment", "Interest", "Principal", "Balance"},
		}
		for _, e := range p.Schedule {
			schedule.Rows = append(schedule.Rows, []string{
				fmt.Sprintf("%d", e.Month),
				string(e.Type),
				FormatMoney(e.Payment),
				FormatMoney(e.Interest),
				FormatMoney(e.Principal),
				FormatMoney(e.RemainingBalance),
			})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable(schedule))
	}
	return b.String()
}

func projectionStatus(r domain.PayoffResult) string {
	if r.IsComplete {
		return goodStyle.Render("paid off")
	}
	return warnStyle.Render(FormatFailure(r.FailureReason))
}

// RenderStrategy renders one strategy run with its payoff order.
func RenderStrategy(r domain.StrategyResult) string {
	status := goodStyle.Render("debt free")
	if !r.IsSuccessful {
		status = warnStyle.Render(FormatFailure(r.FailureReason))
	}

	var b strings.Builder
	b.WriteString(RenderTable(Table{
		Title: strings.ToUpper(string(r.Strategy)),
		Rows: [][]string{
			{"Status", status},
			{"Months", formatMonthsPtr(r.Months)},
			{"Debt-free date", FormatDate(r.PayoffDate)},
			{"Total interest", FormatMoney(r.TotalInterest)},
		},
	}))

	if len(r.PayoffOrder) > 0 {
		order := Table{Headers: []string{"Debt", "Paid off in month"}}
		for _, p := range r.PayoffOrder {
			order.Rows = append(order.Rows, []string{p.DebtID, fmt.Sprintf("%d", p.Month)})
		}
		b.WriteString(RenderTable(order))
	}
	return b.String()
}

// RenderComparison renders both strategies side by side with the
// recommendation underneath.
func RenderComparison(c domain.StrategyComparison) string {
	row := func(label string, f func(domain.StrategyResult) string) []string {
		return []string{label, f(c.Snowball), f(c.Avalanche)}
	}

	table := Table{
		Title:   "Snowball vs Avalanche",
		Headers: []string{"", "Snowball", "Avalanche"},
		Rows: [][]string{
			row("Months", func(r domain.StrategyResult) string { return formatMonthsPtr(r.Months) }),
			row("Debt-free date", func(r domain.StrategyResult) string { return FormatDate(r.PayoffDate) }),
			row("Total interest", func(r domain.StrategyResult) string { return FormatMoney(r.TotalInterest) }),
			row("Failure", func(r domain.StrategyResult) string { return FormatFailure(r.FailureReason) }),
		},
	}

	var b strings.Builder
	b.WriteString(RenderTable(table))
	b.WriteString("\n  ")
	b.WriteString(RecommendationLine(c))
	b.WriteString("\n")
	return b.String()
}

// RecommendationLine summarizes the comparator's verdict in one sentence.
func RecommendationLine(c domain.StrategyComparison) string {
	if c.Recommendation == "" {
		return mutedStyle.Render("No recommendation: both strategies perform the same or neither finishes.")
	}

	line := fmt.Sprintf("Recommended: %s", c.Recommendation)
	switch c.Reason {
	case domain.ReasonTime:
		if c.MonthsSaved != nil {
			line += fmt.Sprintf(" (debt free %s sooner", FormatMonths(*c.MonthsSaved))
			if c.InterestSaved > 0 {
				line += fmt.Sprintf(", %s less interest", FormatMoney(c.InterestSaved))
			}
			line += ")"
		} else {
			line += " (the other strategy never finishes)"
		}
	case domain.ReasonInterest:
		line += fmt.Sprintf(" (same payoff time, %s less interest)", FormatMoney(c.InterestSaved))
	}
	return goodStyle.Render(line)
}

// RenderHistory lists saved comparisons, newest first.
func RenderHistory(plans []domain.PlanSnapshot) string {
	table := Table{
		Title:   "Saved plans",
		Headers: []string{"Created", "Debts", "Budget", "Recommendation", "Interest saved"},
	}
	for _, p := range plans {
		rec := string(p.Comparison.Recommendation)
		if rec == "" {
			rec = "-"
		}
		table.Rows = append(table.Rows, []string{
			p.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", len(p.Input.Debts)),
			FormatMoney(p.Input.MonthlyBudget),
			rec,
			FormatMoney(p.Comparison.InterestSaved),
		})
	}
	return RenderTable(table)
}

// RenderTerms lists ranked payoff terms.
func RenderTerms(recs []domain.TermRecommendation) string {
	table := Table{
		Title:   "Ranked terms",
		Headers: []string{"Term", "Payment", "Interest", "Score"},
	}
	for _, r := range recs {
		table.Rows = append(table.Rows, []string{
			FormatMonths(r.TermMonths),
			FormatMoney(r.MonthlyPayment),
			FormatMoney(r.TotalInterest),
			fmt.Sprintf("%.2f", r.Score),
		})
	}
	return RenderTable(table)
}
