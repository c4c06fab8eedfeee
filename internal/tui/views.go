package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	"github.com/Tomas-vilte/VidCommit/internal/pipeline"
	"github.com/Tomas-vilte/VidCommit/internal/stats"
)

// ChannelView asks for the channel URL.
type ChannelView struct {
	root  *tview.Flex
	input *tview.InputField
	info  *tview.TextView
}

func NewChannelView(onFetch func(channelURL string)) *ChannelView {
	v := &ChannelView{}

	v.input = tview.NewInputField().
		SetLabel("Channel URL: ").
		SetFieldWidth(60)
	v.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			onFetch(v.input.GetText())
		}
	})

	v.info = tview.NewTextView().
		SetDynamicColors(true).
		SetText("Paste a channel URL like [green]https://www.youtube.com/@fireship[-]\nand press Enter to load its latest videos.")

	form := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.input, 1, 0, true).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(v.info, 0, 1, false)
	form.SetBorder(true).SetTitle(" Channel ")

	v.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(form, 8, 0, true).
		AddItem(tview.NewBox(), 0, 2, false)

	return v
}

func (v *ChannelView) Refresh(state pipeline.State) {
	if state.HasError() {
		v.info.SetText(fmt.Sprintf("[red]%s[-]", state.Error))
		return
	}
	v.info.SetText("Paste a channel URL like [green]https://www.youtube.com/@fireship[-]\nand press Enter to load its latest videos.")
}

func (v *ChannelView) Root() tview.Primitive         { return v.root }
func (v *ChannelView) GetFocusable() tview.Primitive { return v.input }

// VideosView lists the fetched videos with their stats and how many
// commit-like lines were detected in each description.
type VideosView struct {
	root   *tview.Flex
	table  *tview.Table
	videos []models.Video
}

func NewVideosView(onSelect func(video models.Video)) *VideosView {
	v := &VideosView{}

	v.table = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	v.table.SetBorder(true).SetTitle(" Videos ")
	v.table.SetSelectedFunc(func(row, _ int) {
		idx := row - 1
		if idx >= 0 && idx < len(v.videos) {
			onSelect(v.videos[idx])
		}
	})

	v.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true)

	return v
}

func (v *VideosView) Refresh(state pipeline.State) {
	v.videos = state.Videos
	v.table.Clear()

	headers := []string{"Title", "Published", "Views", "Likes", "Commits"}
	for col, h := range headers {
		cell := tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold)
		v.table.SetCell(0, col, cell)
	}

	for i, video := range state.Videos {
		row := i + 1
		v.table.SetCell(row, 0, tview.NewTableCell(truncate(video.Title, 60)).SetExpansion(1))
		v.table.SetCell(row, 1, tview.NewTableCell(video.PublishedAt))
		v.table.SetCell(row, 2, tview.NewTableCell(fmt.Sprintf("%d", video.ViewCount)).SetAlign(tview.AlignRight))
		v.table.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%d", video.LikeCount)).SetAlign(tview.AlignRight))

		commits := commitCount(video)
		commitsCell := tview.NewTableCell(fmt.Sprintf("%d", commits)).SetAlign(tview.AlignRight)
		if commits > 0 {
			commitsCell.SetTextColor(tcell.ColorGreen)
		}
		v.table.SetCell(row, 4, commitsCell)
	}

	if len(state.Videos) > 0 {
		v.table.Select(1, 0)
	}
}

func (v *VideosView) Root() tview.Primitive         { return v.root }
func (v *VideosView) GetFocusable() tview.Primitive { return v.table }

// CommitsView shows the lines extracted from the selected description.
type CommitsView struct {
	root   *tview.Flex
	header *tview.TextView
	list   *tview.List
}

func NewCommitsView(onAnalyze func()) *CommitsView {
	v := &CommitsView{}

	v.header = tview.NewTextView().SetDynamicColors(true)

	v.list = tview.NewList().ShowSecondaryText(false)
	v.list.SetBorder(true).SetTitle(" Extracted commits ")
	v.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'a' || event.Rune() == 'A' {
			onAnalyze()
			return nil
		}
		return event
	})

	v.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.header, 2, 0, false).
		AddItem(v.list, 0, 1, true)

	return v
}

func (v *CommitsView) Refresh(state pipeline.State) {
	title := ""
	if state.SelectedVideo != nil {
		title = state.SelectedVideo.Title
	}
	v.header.SetText(fmt.Sprintf(" [::b]%s[-:-:-]\n [darkcyan]%d commit-like lines[-]", title, len(state.Commits)))

	v.list.Clear()
	if len(state.Commits) == 0 {
		v.list.AddItem("No commit-like lines found in this description", "", 0, nil)
		return
	}
	for _, commit := range state.Commits {
		v.list.AddItem(commit, "", 0, nil)
	}
}

func (v *CommitsView) Root() tview.Primitive         { return v.root }
func (v *CommitsView) GetFocusable() tview.Primitive { return v.list }

// AnalysisView renders the per-commit classifications and the batch summary.
type AnalysisView struct {
	root    *tview.Flex
	table   *tview.Table
	summary *tview.TextView
}

func NewAnalysisView() *AnalysisView {
	v := &AnalysisView{}

	v.table = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	v.table.SetBorder(true).SetTitle(" Classified commits ")

	v.summary = tview.NewTextView().SetDynamicColors(true)
	v.summary.SetBorder(true).SetTitle(" Summary ")

	v.root = tview.NewFlex().
		AddItem(v.table, 0, 2, true).
		AddItem(v.summary, 0, 1, false)

	return v
}

func (v *AnalysisView) Refresh(state pipeline.State) {
	v.table.Clear()

	headers := []string{"Commit", "Sentiment", "Type", "Quality"}
	for col, h := range headers {
		cell := tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold)
		v.table.SetCell(0, col, cell)
	}

	for i, result := range state.AnalysisResults {
		row := i + 1
		v.table.SetCell(row, 0, tview.NewTableCell(truncate(result.Message, 50)).SetExpansion(1))

		sentimentCell := tview.NewTableCell(string(result.Sentiment.Label))
		switch result.Sentiment.Label {
		case models.SentimentPositive:
			sentimentCell.SetTextColor(tcell.ColorGreen)
		case models.SentimentNegative:
			sentimentCell.SetTextColor(tcell.ColorRed)
		}
		v.table.SetCell(row, 1, sentimentCell)
		v.table.SetCell(row, 2, tview.NewTableCell(string(result.Type.Type)))
		v.table.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%.2f", result.QualityScore)).SetAlign(tview.AlignRight))
	}

	v.summary.SetText(formatSummary(state.AnalysisResults))
}

func (v *AnalysisView) Root() tview.Primitive         { return v.root }
func (v *AnalysisView) GetFocusable() tview.Primitive { return v.table }

func formatSummary(results []models.ClassifiedCommit) string {
	summary, err := stats.Summarize(results)
	if err != nil {
		return fmt.Sprintf("[red]%v[-]", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[::b]%d commits analyzed[-:-:-]\n\n", summary.Count)

	sb.WriteString("[yellow]Sentiment[-]\n")
	for _, label := range models.SentimentLabels() {
		count := summary.SentimentDistribution[label]
		fmt.Fprintf(&sb, "  %-9s %3d  (%.0f%%)\n", label, count, stats.Percentage(count, summary.Count))
	}

	sb.WriteString("\n[yellow]Types[-]\n")
	for _, ct := range models.CommitTypes() {
		count := summary.TypeDistribution[ct]
		if count == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %-9s %3d  (%.0f%%)\n", ct, count, stats.Percentage(count, summary.Count))
	}

	fmt.Fprintf(&sb, "\n[yellow]Averages[-]\n  quality   %.2f\n  sentiment %.2f\n",
		summary.AverageQualityScore, summary.AverageSentimentScore)

	return sb.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
