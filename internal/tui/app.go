// Package tui is the interactive dashboard over the pipeline state machine.
// Every user action goes through the orchestrator; the views only render the
// resulting state.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	"github.com/Tomas-vilte/VidCommit/internal/domain/ports"
	"github.com/Tomas-vilte/VidCommit/internal/extractor"
	"github.com/Tomas-vilte/VidCommit/internal/pipeline"
)

// App represents the dashboard application.
type App struct {
	tview        *tview.Application
	pages        *tview.Pages
	orchestrator *pipeline.Orchestrator

	channelView  *ChannelView
	videosView   *VideosView
	commitsView  *CommitsView
	analysisView *AnalysisView
	statusBar    *tview.TextView
	header       *tview.TextView
	root         *tview.Flex
}

// NewApp wires the views over a fresh pipeline session.
func NewApp(lister ports.VideoLister, classifier ports.CommitClassifier) *App {
	app := &App{
		tview:        tview.NewApplication(),
		pages:        tview.NewPages(),
		orchestrator: pipeline.NewOrchestrator(lister, classifier),
	}

	app.setupViews()
	return app
}

func (a *App) setupViews() {
	a.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.header.SetBackgroundColor(tcell.ColorDarkBlue)
	a.header.SetText("[::b]VidCommit[-:-:-] - commit analytics for YouTube channels")

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.statusBar.SetBackgroundColor(tcell.ColorDarkBlue)

	a.channelView = NewChannelView(a.onFetch)
	a.videosView = NewVideosView(a.onSelectVideo)
	a.commitsView = NewCommitsView(a.onAnalyze)
	a.analysisView = NewAnalysisView()

	a.pages.AddPage(string(pipeline.StageChannel), a.channelView.Root(), true, true)
	a.pages.AddPage(string(pipeline.StageVideos), a.videosView.Root(), true, false)
	a.pages.AddPage(string(pipeline.StageCommits), a.commitsView.Root(), true, false)
	a.pages.AddPage(string(pipeline.StageAnalysis), a.analysisView.Root(), true, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.header, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.root.SetInputCapture(a.handleInput)
	a.tview.SetRoot(a.root, true)
	a.render(a.orchestrator.State())
}

func (a *App) handleInput(event *tcell.EventKey) *tcell.EventKey {
	state := a.orchestrator.State()

	// no navigation while a fetch or analysis is in flight
	if state.Loading {
		return event
	}

	switch event.Key() {
	case tcell.KeyEsc:
		a.render(a.orchestrator.Back())
		return nil
	case tcell.KeyCtrlR:
		a.render(a.orchestrator.Reset())
		return nil
	case tcell.KeyCtrlC:
		a.tview.Stop()
		return nil
	}

	// the channel input consumes plain runes
	if state.Stage != pipeline.StageChannel {
		switch event.Rune() {
		case 'q', 'Q':
			a.tview.Stop()
			return nil
		}
	}

	return event
}

func (a *App) onFetch(channelURL string) {
	a.statusBar.SetText("Fetching channel videos...")
	go func() {
		state := a.orchestrator.FetchVideos(context.Background(), channelURL)
		a.tview.QueueUpdateDraw(func() {
			a.render(state)
		})
	}()
}

func (a *App) onSelectVideo(video models.Video) {
	a.render(a.orchestrator.SelectVideo(video))
}

func (a *App) onAnalyze() {
	a.statusBar.SetText("Classifying commits...")
	go func() {
		state := a.orchestrator.AnalyzeCommits(context.Background())
		a.tview.QueueUpdateDraw(func() {
			a.render(state)
		})
	}()
}

// render projects the pipeline state onto the pages. The active stage is the
// single source of truth for which page is visible.
func (a *App) render(state pipeline.State) {
	switch state.Stage {
	case pipeline.StageChannel:
		a.channelView.Refresh(state)
	case pipeline.StageVideos:
		a.videosView.Refresh(state)
	case pipeline.StageCommits:
		a.commitsView.Refresh(state)
	case pipeline.StageAnalysis:
		a.analysisView.Refresh(state)
	}

	a.pages.SwitchToPage(string(state.Stage))
	a.updateStatusBar(state)
	a.focusStage(state)
}

func (a *App) focusStage(state pipeline.State) {
	switch state.Stage {
	case pipeline.StageChannel:
		a.tview.SetFocus(a.channelView.GetFocusable())
	case pipeline.StageVideos:
		a.tview.SetFocus(a.videosView.GetFocusable())
	case pipeline.StageCommits:
		a.tview.SetFocus(a.commitsView.GetFocusable())
	case pipeline.StageAnalysis:
		a.tview.SetFocus(a.analysisView.GetFocusable())
	}
}

func (a *App) updateStatusBar(state pipeline.State) {
	if state.Loading {
		a.statusBar.SetText("Working...")
		return
	}
	if state.HasError() {
		a.statusBar.SetText(fmt.Sprintf("[red]%s[-]", state.Error))
		return
	}

	switch state.Stage {
	case pipeline.StageChannel:
		a.statusBar.SetText("[yellow]Enter[-] Fetch videos  [yellow]Ctrl+C[-] Quit")
	case pipeline.StageVideos:
		a.statusBar.SetText("[yellow]Enter[-] Pick video  [yellow]Esc[-] Back  [yellow]q[-] Quit")
	case pipeline.StageCommits:
		if state.EmptyCommits() {
			a.statusBar.SetText("[yellow]No commit-like lines in this description[-]  [yellow]Esc[-] Back  [yellow]q[-] Quit")
			return
		}
		a.statusBar.SetText("[yellow]a[-] Analyze  [yellow]Esc[-] Back  [yellow]q[-] Quit")
	case pipeline.StageAnalysis:
		a.statusBar.SetText("[yellow]Esc[-] New session  [yellow]q[-] Quit")
	}
}

// Run starts the dashboard event loop.
func (a *App) Run() error {
	return a.tview.Run()
}

// commitCount is shown next to each video in the list so users can pick a
// video worth analyzing without opening it first.
func commitCount(video models.Video) int {
	return len(extractor.Extract(video.Description))
}
