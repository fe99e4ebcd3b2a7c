package survival

// messageTTLTicks is how long a HUD message stays visible.
const messageTTLTicks = 120

// maxVisibleMessages caps the HUD message log.
const maxVisibleMessages = 3

// Message is one timed HUD line.
type Message struct {
	Text      string
	expiresAt uint64
}

// MessageLog collects player-facing warnings and notices for the HUD.
type MessageLog struct {
	now     uint64
	entries []Message
}

// Push adds a message that expires after messageTTLTicks.
func (m *MessageLog) Push(text string) {
	m.entries = append(m.entries, Message{Text: text, expiresAt: m.now + messageTTLTicks})
	if len(m.entries) > maxVisibleMessages {
		m.entries = m.entries[len(m.entries)-maxVisibleMessages:]
	}
}

// Tick advances time and drops expired messages.
func (m *MessageLog) Tick() {
	m.now++
	live := m.entries[:0]
	for _, e := range m.entries {
		if e.expiresAt > m.now {
			live = append(live, e)
		}
	}
	m.entries = live
}

// Visible returns the current messages, oldest first.
func (m *MessageLog) Visible() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Text
	}
	return out
}

// Ledger is the player's point balance. It implements
// interact.PointLedger; warnings land in the HUD message log.
type Ledger struct {
	balance int
	earned  int
	spent   int
	log     *MessageLog
}

// NewLedger creates a ledger that reports warnings to log.
func NewLedger(log *MessageLog) *Ledger {
	return &Ledger{log: log}
}

// Balance returns the spendable point balance.
func (l *Ledger) Balance() int {
	return l.balance
}

// Adjust credits (positive) or debits (negative) the balance and keeps
// running earned/spent totals for the run stats.
func (l *Ledger) Adjust(delta int) {
	l.balance += delta
	if delta >= 0 {
		l.earned += delta
	} else {
		l.spent += -delta
	}
}

// Warn surfaces a player-facing message on the HUD.
func (l *Ledger) Warn(msg string) {
	if l.log != nil {
		l.log.Push(msg)
	}
}

// Earned returns total points credited over the run.
func (l *Ledger) Earned() int {
	return l.earned
}

// Spent returns total points debited over the run.
func (l *Ledger) Spent() int {
	return l.spent
}
