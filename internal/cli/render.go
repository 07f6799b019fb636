package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shuuden/shuuden/internal/search"
	"github.com/shuuden/shuuden/internal/station"
)

// DemoBanner is printed above results that did not come from Google Maps.
const DemoBanner = "デモモード（Google Maps APIキー未設定）"

var yen = message.NewPrinter(language.Japanese)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1)
	savingsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	costStyle    = lipgloss.NewStyle().Bold(true)
	badgeStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("255"))
	bestStyle    = badgeStyle.Background(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
	bestCardStyle = cardStyle.BorderForeground(accentColor)

	kindColors = map[search.Kind]lipgloss.Color{
		search.KindTrainOnly:    lipgloss.Color("33"),
		search.KindTrainAndTaxi: lipgloss.Color("99"),
		search.KindTaxiOnly:     lipgloss.Color("178"),
	}
)

// FormatYen renders n with digit grouping, e.g. ¥3,980.
func FormatYen(n int) string {
	return yen.Sprintf("¥%d", n)
}

// FormatSavings renders a positive saving, e.g. ¥3,980 おトク.
func FormatSavings(n int) string {
	return FormatYen(n) + " おトク"
}

// FormatTaxiTrip renders a taxi leg's distance and duration, e.g. 約9.5km・25分.
func FormatTaxiTrip(distanceKm float64, durationMin int) string {
	return fmt.Sprintf("約%.1fkm・%d分", distanceKm, durationMin)
}

// KindLabel returns the badge text for an option kind.
func KindLabel(k search.Kind) string {
	switch k {
	case search.KindTrainOnly:
		return "電車のみ"
	case search.KindTrainAndTaxi:
		return "電車+タクシー"
	case search.KindTaxiOnly:
		return "タクシーのみ"
	default:
		return string(k)
	}
}

// isRecommended reports whether the option at rank (1-based) gets the おすすめ badge.
func isRecommended(rank int, opt search.RouteOption) bool {
	return rank == 1 && opt.Savings > 0
}

// RenderResult writes the header and one card per option.
func RenderResult(w io.Writer, r *search.Result) {
	if r.IsDemo {
		fmt.Fprintln(w, bannerStyle.Render(DemoBanner))
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s → %s", r.CurrentLocation, r.Destination)))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("タクシー全行程 %s（約%.1fkm）", FormatYen(r.FullTaxiFare), r.FullTaxiDistanceKm)))
	if r.SearchedAt != "" {
		fmt.Fprintln(w, mutedStyle.Render("検索日時 "+r.SearchedAt))
	}

	if len(r.Options) == 0 {
		fmt.Fprintln(w, errorStyle.Render("ルートが見つかりませんでした"))
		return
	}

	for i, opt := range r.Options {
		fmt.Fprintln(w, renderOption(i+1, opt))
	}
}

func renderOption(rank int, opt search.RouteOption) string {
	badges := []string{badgeStyle.Background(kindColors[opt.Kind]).Render(KindLabel(opt.Kind))}
	if isRecommended(rank, opt) {
		badges = append(badges, bestStyle.Render("おすすめ"))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, badges...))
	b.WriteString("\n")
	b.WriteString(opt.Summary)
	b.WriteString("\n")

	cost := costStyle.Render(FormatYen(opt.TotalCost))
	if opt.Savings > 0 {
		cost += "  " + savingsStyle.Render(FormatSavings(opt.Savings))
	}
	b.WriteString(cost)

	if t := opt.Train; t != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("🚃 %s  %s %s → %s %s  %s",
			t.Line, t.From, t.DepartureTime, t.To, t.ArrivalTime, FormatYen(t.Fare)))
	}
	if t := opt.Taxi; t != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("🚕 %s → %s  %s  %s",
			t.From, t.To, FormatTaxiTrip(t.DistanceKm, t.DurationMin), FormatYen(t.Fare)))
	}

	style := cardStyle
	if isRecommended(rank, opt) {
		style = bestCardStyle
	}
	return style.Render(b.String())
}

// RenderStations writes one line per station with the lines it serves.
func RenderStations(w io.Writer, stations []station.Station) {
	if len(stations) == 0 {
		fmt.Fprintln(w, errorStyle.Render("該当する駅がありません"))
		return
	}
	for _, s := range stations {
		fmt.Fprintf(w, "%s  %s\n", titleStyle.Render(s.Name), mutedStyle.Render(strings.Join(s.Lines, "・")))
	}
}
