package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-infaq/internal/app"
	"github.com/MKhiriev/go-infaq/internal/ledger"
	"github.com/MKhiriev/go-infaq/internal/utils"
	"github.com/MKhiriev/go-infaq/models"
)

// visibleRows is how many transactions the list shows at once.
const visibleRows = 12

type dashboardModel struct {
	ctx       context.Context
	session   Session
	ledger    Ledger
	updates   <-chan models.SessionState
	buildInfo models.AppBuildInfo
	now       func() time.Time

	state   models.SessionState
	items   []models.Transaction
	summary models.TransactionSummary
	idx     int

	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	confirming    bool
	creating      bool
	saving        bool
	form          transactionForm
	showBuildInfo bool

	logout       bool
	logoutErr    error
	sessionEnded bool
}

func newDashboardModel(ctx context.Context, session Session, ledger Ledger, updates <-chan models.SessionState, buildInfo models.AppBuildInfo) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:       ctx,
		session:   session,
		ledger:    ledger,
		updates:   updates,
		buildInfo: buildInfo,
		now:       time.Now,
		state:     session.Snapshot(),
		loading:   true,
		spinner:   s,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), m.waitForSession())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		if !msg.open {
			return m, nil
		}
		m.state = msg.state
		if m.state.User == nil {
			m.sessionEnded = true
			m.logout = true
			return m, tea.Quit
		}
		return m, m.waitForSession()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.summary = ledger.Summarize(m.items, m.state.Capabilities().CanViewPenyisihan)
		m.clampIndex()
		return m, nil

	case createDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.creating = false
		m.status = "Transaksi tersimpan"
		m.loading = true
		return m, m.cmdLoad()

	case updateDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.creating = false
		m.status = "Transaksi diperbarui"
		m.loading = true
		return m, m.cmdLoad()

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = "Gagal menghapus: " + humanizeError(msg.err)
			return m, nil
		}
		m.status = "Transaksi dihapus"
		m.loading = true
		return m, m.cmdLoad()

	case logoutDoneMsg:
		// the local session is gone either way; the error is reported on the
		// login page
		m.logout = true
		m.logoutErr = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.creating {
		var cmd tea.Cmd
		m.form, _, _, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil

	case m.creating:
		if key.Matches(msg, keys.esc) {
			m.creating = false
			return m, nil
		}
		if m.saving {
			return m, nil
		}
		form, tx, submitted, cmd := m.form.Update(msg)
		m.form = form
		if submitted {
			m.saving = true
			if form.editing() {
				return m, m.cmdUpdate(tx)
			}
			return m, m.cmdCreate(tx)
		}
		return m, cmd

	case m.confirming:
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			if tx, ok := m.current(); ok {
				return m, m.cmdDelete(tx.ID)
			}
		case key.Matches(msg, keys.no):
			m.confirming = false
		}
		return m, nil
	}

	m.status = ""
	caps := m.state.Capabilities()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.newItem):
		if !caps.CanCreateTransaction {
			m.status = app.MsgCannotCreate
			return m, nil
		}
		m.form = newTransactionForm(m.now())
		m.creating = true
	case key.Matches(msg, keys.edit):
		if !caps.CanCreateTransaction {
			m.status = app.MsgCannotEdit
			return m, nil
		}
		if tx, ok := m.current(); ok {
			m.form = editTransactionForm(tx)
			m.creating = true
		}
	case key.Matches(msg, keys.delete):
		if !caps.CanCreateTransaction {
			m.status = app.MsgCannotDelete
			return m, nil
		}
		if _, ok := m.current(); ok {
			m.confirming = true
		}
	case key.Matches(msg, keys.copy):
		tx, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(tx.ID); err != nil {
			m.errMsg = "Gagal menyalin: " + err.Error()
			return m, nil
		}
		m.status = "ID transaksi disalin"
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if m.creating {
		view := m.form.View()
		if m.saving {
			view += "\n  " + m.spinner.View() + " menyimpan..."
		}
		return view
	}

	var b strings.Builder
	b.WriteString(m.renderProfile())
	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	b.WriteString(m.renderList())

	if m.confirming {
		if tx, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(overlayBoxStyle.Render(fmt.Sprintf(
				"Hapus transaksi %s %s?\n\ny ya    n tidak", tx.TransactionDate, utils.FormatRupiah(tx.Amount))))
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	title := "INFAQ"
	if m.loading {
		title += "  " + m.spinner.View()
	}

	hotKeys := "↑/↓: pilih │ r: muat ulang │ c: salin ID │ v: versi │ l: keluar akun │ q: keluar"
	if m.state.Capabilities().CanCreateTransaction {
		hotKeys = "n: baru │ e: ubah │ d: hapus │ " + hotKeys
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m dashboardModel) renderProfile() string {
	user := m.state.User
	if user == nil {
		return "Belum masuk\n"
	}
	caps := m.state.Capabilities()

	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s>  %s\n", user.Name, user.Email, user.Role.Title())
	fmt.Fprintf(&b, "Lihat penyisihan: %s   Tambah transaksi: %s\n",
		yesNo(caps.CanViewPenyisihan), yesNo(caps.CanCreateTransaction))
	return b.String()
}

func (m dashboardModel) renderSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Infaq masuk: %s   Pengeluaran: %s   Saldo: %s\n",
		utils.FormatRupiah(m.summary.TotalInfaq),
		utils.FormatRupiah(m.summary.TotalPengeluaran),
		utils.FormatRupiah(m.summary.Saldo))
	if m.summary.TotalPenyisihan != nil {
		fmt.Fprintf(&b, "Penyisihan: %s\n", utils.FormatRupiah(*m.summary.TotalPenyisihan))
	}
	return b.String()
}

func (m dashboardModel) renderList() string {
	if m.loading && len(m.items) == 0 {
		return "Memuat...\n"
	}
	if len(m.items) == 0 {
		return "Belum ada transaksi\n"
	}

	start := 0
	if m.idx >= visibleRows {
		start = m.idx - visibleRows + 1
	}
	end := min(start+visibleRows, len(m.items))

	var b strings.Builder
	for i := start; i < end; i++ {
		tx := m.items[i]
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		kind := masukStyle.Render(padRight("Masuk", 6))
		if tx.Type == models.TransactionPengeluaran {
			kind = keluarStyle.Render(padRight("Keluar", 6))
		}
		marker := ""
		if tx.IsPenyisihan {
			marker = " [P]"
		}

		fmt.Fprintf(&b, "%s%s  %s  %s  %s  %s%s\n",
			cursor,
			padRight(tx.TransactionDate, 10),
			kind,
			fmt.Sprintf("%15s", utils.FormatRupiah(tx.Amount)),
			padRight(tx.Description, 24),
			fitText(tx.OwnerName(), 16),
			marker)
	}
	if len(m.items) > visibleRows {
		fmt.Fprintf(&b, "  (%d/%d)\n", m.idx+1, len(m.items))
	}
	return b.String()
}

func (m dashboardModel) current() (models.Transaction, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Transaction{}, false
	}
	return m.items[m.idx], true
}

func (m *dashboardModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) waitForSession() tea.Cmd {
	updates := m.updates
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		state, open := <-updates
		return sessionChangedMsg{state: state, open: open}
	}
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx, l := m.ctx, m.ledger
	return func() tea.Msg {
		items, err := l.List(ctx, 0)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m dashboardModel) cmdCreate(tx models.Transaction) tea.Cmd {
	ctx, l := m.ctx, m.ledger
	return func() tea.Msg {
		created, err := l.Create(ctx, tx)
		return createDoneMsg{tx: created, err: err}
	}
}

func (m dashboardModel) cmdUpdate(tx models.Transaction) tea.Cmd {
	ctx, l := m.ctx, m.ledger
	return func() tea.Msg {
		updated, err := l.Update(ctx, tx)
		return updateDoneMsg{tx: updated, err: err}
	}
}

func (m dashboardModel) cmdDelete(id string) tea.Cmd {
	ctx, l := m.ctx, m.ledger
	return func() tea.Msg {
		return deleteDoneMsg{err: l.Delete(ctx, id)}
	}
}

func (m dashboardModel) cmdLogout() tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return logoutDoneMsg{err: s.Logout(ctx)}
	}
}
