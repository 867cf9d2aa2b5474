package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/wheel-of-fortune/internal/config"
	"github.com/tatianab/wheel-of-fortune/internal/engine"
	"github.com/tatianab/wheel-of-fortune/internal/models"
	"github.com/tatianab/wheel-of-fortune/internal/players"
)

type sessionState int

const (
	stateHumanCount sessionState = iota
	stateHumanName
	stateComputerCount
	stateDifficulty
	stateSpinning
	stateResolved
	stateGuessing
	stateMoveResult
	stateGameOver
	stateError
)

const (
	maxPlayers    = 10
	maxDifficulty = 10

	spinDelay    = 1200 * time.Millisecond
	advanceDelay = 1500 * time.Millisecond
	computerWait = 900 * time.Millisecond
)

type model struct {
	state sessionState

	wheel   models.Wheel
	catalog models.PhraseCatalog
	seed    int64
	game    *engine.Game

	textInput textinput.Model
	spin      spinner.Model

	humanCount    int
	computerCount int
	difficulty    int
	names         []string

	seg      models.WheelSegment
	status   string
	inputErr string
	err      error
	width    int
}

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)

	phraseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1C3C8C")).
			Bold(true).
			Padding(0, 1)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	currentPlayerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EEEEEE")).
				Background(lipgloss.Color("#5F5F87")).
				Bold(true).
				Padding(0, 1)

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// NewModel builds the setup wizard over a validated wheel and phrase
// catalog.
func NewModel(wheel models.Wheel, catalog models.PhraseCatalog, seed int64) model {
	ti := textinput.New()
	ti.Placeholder = "0-10"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Moon

	return model{
		state:     stateHumanCount,
		wheel:     wheel,
		catalog:   catalog,
		seed:      seed,
		textInput: ti,
		spin:      sp,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type spinDoneMsg struct{}

type advanceMsg struct{}

type computerTurnMsg struct{}

type errMsg struct{ err error }

func waitThen(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// parseCount reads a bounded integer answer. Out-of-range or non-numeric
// input is refused with a reason and asked again.
func parseCount(raw string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("that has to be a number")
	}
	if n < min || n > max {
		return 0, fmt.Errorf("must be between %d and %d", min, max)
	}
	return n, nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
		if m.state == stateGameOver {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case spinDoneMsg:
		m.seg = m.game.Spin()
		player := m.game.CurrentPlayer()
		switch m.game.Resolve(m.seg) {
		case engine.PhaseGuessing:
			m.status = fmt.Sprintf("%s landed on %s.", player.Name, m.seg.Text)
			m.state = stateGuessing
			m.inputErr = ""
			if _, auto := m.game.Current().(*players.Computer); auto {
				return m, waitThen(computerWait, computerTurnMsg{})
			}
			m.textInput.Placeholder = "letter, phrase, PASS or EXIT"
			m.textInput.Reset()
			return m, textinput.Blink
		default:
			if m.seg.Kind == models.Bankrupt {
				m.status = fmt.Sprintf("%s landed on %s and loses everything!", player.Name, m.seg.Text)
			} else {
				m.status = fmt.Sprintf("%s landed on %s and loses the turn.", player.Name, m.seg.Text)
			}
			m.state = stateResolved
			return m, waitThen(advanceDelay, advanceMsg{})
		}

	case computerTurnMsg:
		res, err := m.game.RequestMove(m.seg)
		if err != nil {
			return m, func() tea.Msg { return errMsg{err} }
		}
		return m.applyMove(res)

	case advanceMsg:
		m.game.AdvanceTurn()
		if m.game.Done() {
			m.state = stateGameOver
			return m, nil
		}
		m.state = stateSpinning
		m.status = fmt.Sprintf("%s spins the wheel...", m.game.CurrentPlayer().Name)
		return m, tea.Batch(m.spin.Tick, waitThen(spinDelay, spinDoneMsg{}))

	case spinner.TickMsg:
		if m.state == stateSpinning {
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	if m.state <= stateDifficulty || m.state == stateGuessing {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	raw := m.textInput.Value()

	switch m.state {
	case stateHumanCount:
		n, err := parseCount(raw, 0, maxPlayers)
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.humanCount = n
		m.inputErr = ""
		m.textInput.Reset()
		if n > 0 {
			m.state = stateHumanName
			m.textInput.Placeholder = "name"
		} else {
			m.state = stateComputerCount
			m.textInput.Placeholder = "0-10"
		}
		return m, nil

	case stateHumanName:
		name := strings.TrimSpace(raw)
		if name == "" {
			m.inputErr = "a name is required"
			return m, nil
		}
		m.names = append(m.names, name)
		m.inputErr = ""
		m.textInput.Reset()
		if len(m.names) == m.humanCount {
			m.state = stateComputerCount
			m.textInput.Placeholder = "0-10"
		}
		return m, nil

	case stateComputerCount:
		n, err := parseCount(raw, 0, maxPlayers)
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.computerCount = n
		m.inputErr = ""
		m.textInput.Reset()
		if n > 0 {
			m.state = stateDifficulty
			m.textInput.Placeholder = "1-10, 1 = hardest"
			return m, nil
		}
		return m.startGame()

	case stateDifficulty:
		n, err := parseCount(raw, 1, maxDifficulty)
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.difficulty = n
		m.inputErr = ""
		m.textInput.Reset()
		return m.startGame()

	case stateGuessing:
		if _, auto := m.game.Current().(*players.Computer); auto {
			return m, nil
		}
		if strings.TrimSpace(raw) == "" {
			return m, nil
		}
		m.textInput.Reset()
		res := m.game.Play(m.seg, raw)
		if res.Rejected {
			m.inputErr = res.Reason
			return m, nil
		}
		m.inputErr = ""
		return m.applyMove(res)

	case stateGameOver:
		return m, tea.Quit
	}

	return m, nil
}

func (m model) startGame() (tea.Model, tea.Cmd) {
	contestants := make([]players.Contestant, 0, m.humanCount+m.computerCount)
	for _, name := range m.names {
		contestants = append(contestants, players.NewHuman(name, nil))
	}
	for i := 0; i < m.computerCount; i++ {
		contestants = append(contestants, players.NewComputer(
			fmt.Sprintf("Computer %d", i+1), m.difficulty, m.seed+int64(i)+1))
	}

	game, err := engine.New(engine.Setup{
		Wheel:       m.wheel,
		Catalog:     m.catalog,
		Contestants: contestants,
		Seed:        m.seed,
	})
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}

	m.game = game
	m.state = stateSpinning
	m.status = fmt.Sprintf("%s spins the wheel...", game.CurrentPlayer().Name)
	return m, tea.Batch(m.spin.Tick, waitThen(spinDelay, spinDoneMsg{}))
}

// applyMove renders an accepted move's outcome and schedules the next turn.
func (m model) applyMove(res engine.MoveResult) (tea.Model, tea.Cmd) {
	player := m.game.CurrentPlayer()

	switch {
	case res.Exited:
		m.state = stateGameOver
		return m, nil
	case res.Won:
		m.state = stateGameOver
		return m, nil
	case res.Action.Kind == engine.ActionPass:
		m.status = fmt.Sprintf("%s passes.", player.Name)
	case res.Action.Kind == engine.ActionGuessLetter && res.Revealed > 0:
		m.status = fmt.Sprintf("%s guesses %c: %d on the board, +$%d!",
			player.Name, res.Action.Letter, res.Revealed, res.Awarded)
	case res.Action.Kind == engine.ActionGuessLetter:
		m.status = fmt.Sprintf("%s guesses %c: not in the phrase.", player.Name, res.Action.Letter)
	case res.Action.Kind == engine.ActionGuessPhrase:
		m.status = fmt.Sprintf("%s guesses %q: not it.", player.Name, res.Action.Phrase)
	}

	m.state = stateMoveResult
	return m, waitThen(advanceDelay, advanceMsg{})
}

// renderBoard shows the category, the obscured phrase and the guessed
// letters.
func renderBoard(category, obscured string, guessed models.GuessedLetters) string {
	letters := make([]string, 0, len(guessed))
	for _, ch := range guessed.Sorted() {
		letters = append(letters, string(ch))
	}
	guessedLine := "(none)"
	if len(letters) > 0 {
		guessedLine = strings.Join(letters, ", ")
	}

	return fmt.Sprintf("%s %s\n\n  %s\n\n%s %s",
		categoryStyle.Render("Category:"), category,
		phraseStyle.Render(spacedOut(obscured)),
		helpStyle.Render("Guessed:"), guessedLine)
}

// spacedOut pads the board glyphs so underscores read as separate slots.
func spacedOut(phrase string) string {
	runes := strings.Split(phrase, "")
	return strings.Join(runes, " ")
}

func (m model) renderPlayers() string {
	var parts []string
	for _, c := range m.game.Contestants() {
		style := playerStyle
		if m.game.Current() == c && !m.game.Done() {
			style = currentPlayerStyle
		}
		parts = append(parts, style.Render(c.Info().String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m model) View() string {
	var s string

	banner := bannerStyle.Render("WHEEL OF FORTUNE")

	switch m.state {
	case stateHumanCount:
		s = m.wizardView(banner, "How many human players?")
	case stateHumanName:
		s = m.wizardView(banner, fmt.Sprintf("Name of player #%d:", len(m.names)+1))
	case stateComputerCount:
		s = m.wizardView(banner, "How many computer players?")
	case stateDifficulty:
		s = m.wizardView(banner, "Computer difficulty (1-10, 1 = hardest)?")

	case stateSpinning:
		s = fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s %s",
			banner, m.board(), m.renderPlayers(),
			m.spin.View(), statusStyle.Render(m.status))

	case stateResolved, stateMoveResult:
		s = fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s",
			banner, m.board(), m.renderPlayers(), statusStyle.Render(m.status))

	case stateGuessing:
		s = fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", banner, m.board(), m.renderPlayers(), statusStyle.Render(m.status))
		if _, auto := m.game.Current().(*players.Computer); auto {
			s += "\n\n" + helpStyle.Render(m.game.CurrentPlayer().Name+" is thinking...")
		} else {
			if m.inputErr != "" {
				s += "\n\n" + errStyle.Render("Invalid move: "+m.inputErr)
			}
			s += fmt.Sprintf("\n\n%s\n%s",
				m.textInput.View(),
				helpStyle.Render("Guess a letter, the whole phrase, or type PASS or EXIT."))
		}

	case stateGameOver:
		s = fmt.Sprintf("%s\n\n%s", banner, m.gameOverView())

	case stateError:
		s = fmt.Sprintf("Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) wizardView(banner, question string) string {
	s := fmt.Sprintf("%s\n\n%s\n\n%s", banner, statusStyle.Render(question), m.textInput.View())
	if m.inputErr != "" {
		s += "\n\n" + errStyle.Render(m.inputErr)
	}
	return s
}

func (m model) board() string {
	return renderBoard(m.game.Category(), m.game.Obscured(), m.game.Guessed())
}

func (m model) gameOverView() string {
	winner, ok := m.game.Winner()
	if !ok {
		return statusStyle.Render("Goodbye!") + "\n\n" + helpStyle.Render("Press any key to quit.")
	}

	p := winner.Info()
	s := fmt.Sprintf("%s\n\n%s wins with $%d! The phrase was: %s",
		m.board(), p.Name, p.Money, m.game.Phrase())
	if len(p.Prizes) > 0 {
		var prizes []string
		for prize := range p.Prizes {
			prizes = append(prizes, prize)
		}
		s += fmt.Sprintf("\nPrizes won: %s", strings.Join(prizes, ", "))
	}
	return statusStyle.Render(s) + "\n\n" + helpStyle.Render("Press any key to quit.")
}

// Run plays one game over the given catalogs.
func Run(wheel models.Wheel, catalog models.PhraseCatalog, seed int64) error {
	p := tea.NewProgram(NewModel(wheel, catalog, seed))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// Start wires the whole game from configuration: load config, load the
// wheel and phrase catalogs, then run the TUI.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	wheel, err := models.LoadWheel(cfg.WheelFile)
	if err != nil {
		return err
	}
	catalog, err := models.LoadPhrases(cfg.PhrasesFile)
	if err != nil {
		return err
	}

	return Run(wheel, catalog, cfg.Seed)
}
