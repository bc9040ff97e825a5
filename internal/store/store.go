package store

// Fixed record keys. These match the keys the original web edition of the
// app used in browser storage, so an imported dump stays readable.
const (
	// ProgressKey holds a JSON object mapping checklist item id → bool.
	ProgressKey = "topik_study_progress"

	// WordBankKey holds a JSON array of VocabEntry records.
	WordBankKey = "user_word_bank"
)

// Backend is the raw persistence layer beneath the Adapter: a synchronous
// key-value store for JSON records plus an append-only LLM request log.
type Backend interface {
	// GetRaw returns the stored value for key, or (nil, nil) when absent.
	GetRaw(key string) ([]byte, error)

	// SetRaw stores value under key. The write is durable on return.
	SetRaw(key string, value []byte) error

	// AppendLLMEvent records an LLM API call.
	AppendLLMEvent(ev LLMEvent) error

	// ListLLMEvents returns the most recent events, newest first.
	// limit <= 0 means no limit.
	ListLLMEvents(limit int) ([]LLMEvent, error)

	Close() error
}

// Adapter is the single owner of the persisted study records. Views never
// cache its data beyond one render cycle; they re-read on mount and on each
// sync notification. The Adapter also owns the cross-view sync channel
// (see Notifier): checklist writes broadcast an invalidation, readers pull.
type Adapter struct {
	backend  Backend
	notifier *Notifier
}

// NewAdapter wraps a Backend.
func NewAdapter(b Backend) *Adapter {
	return &Adapter{
		backend:  b,
		notifier: NewNotifier(),
	}
}

// Subscribe registers a listener on the sync channel.
func (a *Adapter) Subscribe() Subscription {
	return a.notifier.Subscribe()
}

// Unsubscribe releases a subscription.
func (a *Adapter) Unsubscribe(s Subscription) {
	a.notifier.Unsubscribe(s)
}

// Close closes the underlying backend.
func (a *Adapter) Close() error {
	return a.backend.Close()
}
