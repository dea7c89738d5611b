package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonsense/internal/habits"
	"github.com/rshade/carbonsense/internal/navigation"
	"github.com/rshade/carbonsense/internal/report"
)

// Layout constants.
const (
	appTitle      = "CarbonSense"
	appTagline    = "Understand Your Charging Impact"
	footerText    = "Made for HCI Project · Carbon Awareness"
	stepConnector = "────"

	// barLabelWidth is the width reserved for the comparison bar labels.
	barLabelWidth = 16
	minBarWidth   = 10
	cardGap       = 1
	metricCards   = 3
)

// renderFrame wraps a screen body with the title, step indicator and help.
func renderFrame(screen navigation.Screen, body, helpView string, width int) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(IconLeaf + " " + appTitle))
	sb.WriteString("  ")
	sb.WriteString(SubtleStyle.Render(appTagline))
	sb.WriteString("\n\n")

	if screen != navigation.ScreenHome {
		sb.WriteString(renderSteps(screen))
		sb.WriteString("\n\n")
	}

	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(helpView)
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Width(width).Render(footerText))

	return sb.String()
}

// renderSteps renders the three-step progress indicator. Steps before the
// current one are marked done.
func renderSteps(current navigation.Screen) string {
	parts := make([]string, 0, len(navigation.Screens)*2) //nolint:mnd // Step plus connector.
	for i, s := range navigation.Screens {
		if i > 0 {
			connector := SubtleStyle
			if s.Step() <= current.Step() {
				connector = OKStyle
			}
			parts = append(parts, connector.Render(stepConnector))
		}

		label := fmt.Sprintf("(%d) %s", s.Step(), s.StepLabel())
		switch {
		case s == current:
			parts = append(parts, SelectedStyle.Render(label))
		case s.Step() < current.Step():
			parts = append(parts, OKStyle.Render(IconCheck+" "+s.StepLabel()))
		default:
			parts = append(parts, SubtleStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// renderIllustration renders the placeholder shown instead of an image.
func renderIllustration(ill report.Illustration) string {
	return SubtleStyle.Italic(true).Render("[" + IconImage + " " + ill.Alt + "]")
}

func renderHome(width int) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("How Smartphone Charging Affects Our Planet"))
	sb.WriteString("\n")

	intro := "Every time you charge your smartphone, energy is drawn from the grid, and that energy " +
		"often comes from power plants that emit carbon dioxide. While a single charge may seem " +
		"insignificant, billions of smartphones worldwide create a substantial environmental impact.\n\n" +
		"Understanding your charging habits is the first step toward making more sustainable choices. " +
		"Small changes in how we charge can reduce emissions and extend the life of our devices."
	sb.WriteString(lipgloss.NewStyle().Width(width).Render(intro))
	sb.WriteString("\n\n")
	sb.WriteString(renderIllustration(report.HomeIllustration))
	sb.WriteString("\n\n")

	facts := report.Facts()
	cards := make([]string, 0, len(facts))
	cardWidth := cardInnerWidth(width, len(facts))
	for _, f := range facts {
		content := ValueStyle.Render(f.Title) + "\n" +
			OKStyle.Render(f.Figure) + "\n" +
			LabelStyle.Render(f.Detail)
		cards = append(cards, CardStyle.Width(cardWidth).Render(content))
	}
	sb.WriteString(joinCards(cards))
	sb.WriteString("\n\n")

	button := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(ColorAccent).
		Padding(0, 2). //nolint:mnd // Button padding.
		Render("Calculate My Carbon Impact")
	sb.WriteString(button)
	sb.WriteString("  ")
	sb.WriteString(SubtleStyle.Render("press enter"))

	return sb.String()
}

func renderInput(draft habits.Draft, focus habits.Field, width int) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("Tell us about your charging habits"))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Width(width).Render(
		"This helps us calculate your personal carbon footprint and provide tailored recommendations"))
	sb.WriteString("\n\n")

	for _, field := range habits.Fields {
		sb.WriteString(renderField(draft, field, field == focus, width))
		sb.WriteString("\n")
	}

	sb.WriteString(SubtleStyle.Render("Press enter to generate my report"))
	return sb.String()
}

func renderField(draft habits.Draft, field habits.Field, focused bool, width int) string {
	pointer := "  "
	questionStyle := LabelStyle
	valueStyle := ValueStyle
	if focused {
		pointer = SelectedStyle.Render(IconPointer) + " "
		questionStyle = SelectedStyle
		valueStyle = SelectedStyle
	}

	var value string
	if field.IsSlider() {
		value = renderSlider(draft, field)
	} else {
		value = SubtleStyle.Render(IconArrowLeft) + " " + valueStyle.Render(draft.Value(field)) + " " +
			SubtleStyle.Render(IconArrowRight)
	}

	line := pointer + questionStyle.Render(field.Question()) + "\n    " + value
	if hint := field.Hint(); hint != "" {
		line += "\n    " + SubtleStyle.Render(hint)
	}

	style := CardStyle
	if focused {
		style = FocusedCardStyle
	}
	return style.Width(max(width-borderWidth, minBarWidth)).Render(line)
}

// borderWidth is the horizontal space taken by a card border.
const borderWidth = 2

// renderSlider draws a text slider for a percentage field.
func renderSlider(draft habits.Draft, field habits.Field) string {
	h := draft.Habits()
	lo, hi, v := habits.MinPlugInPercent, habits.MaxPlugInPercent, h.PlugInPercent
	if field == habits.FieldUnplugPercent {
		lo, hi, v = habits.MinUnplugPercent, habits.MaxUnplugPercent, h.UnplugPercent
	}

	steps := (hi - lo) / habits.PercentStep
	pos := (v - lo) / habits.PercentStep

	var sb strings.Builder
	sb.WriteString(SubtleStyle.Render(strconv.Itoa(lo) + "% "))
	for i := 0; i <= steps; i++ {
		switch {
		case i == pos:
			sb.WriteString(SelectedStyle.Render("●"))
		case i < pos:
			sb.WriteString(OKStyle.Render("━"))
		default:
			sb.WriteString(SubtleStyle.Render("─"))
		}
	}
	sb.WriteString(SubtleStyle.Render(" " + strconv.Itoa(hi) + "%"))
	sb.WriteString("  ")
	sb.WriteString(OKStyle.Bold(true).Render(draft.Value(field)))
	return sb.String()
}

func renderResults(r report.Report, width int) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(IconLeaf + " Your Charging Carbon Report"))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("Based on your charging habits, here's your environmental impact"))
	sb.WriteString("\n\n")

	sb.WriteString(renderMetricCards(r, width))
	sb.WriteString("\n\n")

	sb.WriteString(HeaderStyle.Render("How You Compare"))
	sb.WriteString("\n")
	sb.WriteString(renderComparison(r, width))
	sb.WriteString("\n\n")

	sb.WriteString(HeaderStyle.Render("What This Means"))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Width(width).Render(r.Narrative()))
	sb.WriteString("\n")
	for _, a := range r.Advisories() {
		style := InfoStyle
		switch a.Kind {
		case report.AdvisoryOvercharging:
			style = WarningStyle
		case report.AdvisoryRangePraise:
			style = OKStyle
		case report.AdvisoryRangeSuggestion:
		}
		sb.WriteString("\n")
		sb.WriteString(style.Width(width).Render(a.Icon + " " + a.Message))
	}
	sb.WriteString("\n\n")

	sb.WriteString(HeaderStyle.Render("Improve Your Charging Habits"))
	sb.WriteString("\n")
	for _, rec := range report.Recommendations() {
		sb.WriteString(OKStyle.Render(IconBullet) + " " + ValueStyle.Render(rec.Title) + "\n")
		sb.WriteString(LabelStyle.Width(width).PaddingLeft(2).Render(rec.Description)) //nolint:mnd // Indent.
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(renderIllustration(report.ResultsIllustration))

	return sb.String()
}

func renderMetricCards(r report.Report, width int) string {
	cardWidth := cardInnerWidth(width, metricCards)
	metric := func(icon, value, label string) string {
		content := icon + " " + ValueStyle.Render(value) + "\n" + LabelStyle.Render(label)
		return CardStyle.Width(cardWidth).Align(lipgloss.Center).Render(content)
	}

	return joinCards([]string{
		metric(IconBolt, report.FormatGrams(r.DailyEmissionGrams)+"g CO₂", "Daily Emissions"),
		metric(IconPhone, report.FormatGrams(r.MonthlyEmissionGrams)+"g CO₂", "Monthly Emissions"),
		metric(IconGlobe, report.FormatKg(r.YearlyEmissionKg)+"kg CO₂", "Yearly Emissions"),
	})
}

// renderComparison draws the average and the user's daily figure as two
// bars scaled to the larger value, followed by the comparison sentence.
func renderComparison(r report.Report, width int) string {
	barWidth := max(width-barLabelWidth*2, minBarWidth) //nolint:mnd // Label on both sides.
	scale := max(r.DailyEmissionGrams, r.AverageDailyEmissionGrams)

	userFill, sentenceStyle, prefix := barBelow, OKStyle, "Great! You emit "
	if r.AboveAverage() {
		userFill, sentenceStyle, prefix = barAbove, lipgloss.NewStyle().Foreground(ColorCritical), "You emit "
	}

	row := func(label string, grams float64, fill string) string {
		bar := progress.New(progress.WithSolidFill(fill), progress.WithoutPercentage())
		bar.Width = barWidth
		frac := 0.0
		if scale > 0 {
			frac = grams / scale
		}
		return LabelStyle.Width(barLabelWidth).Render(label) +
			bar.ViewAs(frac) + " " +
			ValueStyle.Render(report.FormatGrams(grams)+"g/day")
	}

	var sb strings.Builder
	sb.WriteString(row("Average User", r.AverageDailyEmissionGrams, barAverage))
	sb.WriteString("\n")
	sb.WriteString(row("You", r.DailyEmissionGrams, userFill))
	sb.WriteString("\n\n")
	sb.WriteString(prefix + sentenceStyle.Render(report.ComparisonText(r)))
	return sb.String()
}

// cardInnerWidth splits width between n bordered cards.
func cardInnerWidth(width, n int) int {
	if n <= 0 {
		return width
	}
	w := (width-(n-1)*cardGap)/n - borderWidth - 2 //nolint:mnd // Card horizontal padding.
	return max(w, minBarWidth)
}

func joinCards(cards []string) string {
	spaced := make([]string, 0, len(cards)*2) //nolint:mnd // Card plus gap.
	for i, c := range cards {
		if i > 0 {
			spaced = append(spaced, strings.Repeat(" ", cardGap))
		}
		spaced = append(spaced, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// RenderReportSummary renders a styled, static report for terminals that
// cannot run the interactive calculator.
func RenderReportSummary(r report.Report, width int) string {
	width = min(width, maxContentWidth)
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(IconLeaf + " " + appTitle))
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render(report.Summary(r.Habits)))
	sb.WriteString("\n\n")
	sb.WriteString(renderResults(r, width))
	sb.WriteString("\n")
	return sb.String()
}
