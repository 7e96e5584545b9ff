// Package quota keeps the per-address cooldown and daily quota state of the
// faucet. It performs no I/O; callers pass the current time explicitly.
package quota

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var (
	ErrCooldownActive     = errors.New("cooldown active")
	ErrDailyLimitExceeded = errors.New("daily limit exceeded")
	ErrInvalidAmount      = errors.New("invalid amount")
	// ErrReservationSettled is returned when a reservation is committed after
	// it was already committed or released.
	ErrReservationSettled = errors.New("reservation already settled")
)

// Denial is returned by CheckAndReserve when a request is not allowed.
// It matches its Reason through errors.Is.
type Denial struct {
	Reason     error
	RetryAfter time.Duration
}

func (d *Denial) Error() string {
	return fmt.Sprintf("%v, retry after %s", d.Reason, d.RetryAfter)
}

func (d *Denial) Unwrap() error {
	return d.Reason
}

// Record is the rate-limit state of a single requester address.
type Record struct {
	Address             common.Address
	LastRequestTime     time.Time
	DailyTotalSent      *big.Int
	DailyResetTimestamp time.Time
}

func (r Record) clone() Record {
	r.DailyTotalSent = new(big.Int).Set(r.DailyTotalSent)
	return r
}

type Config struct {
	Cooldown time.Duration
	// Window is the length of a daily quota window, Cooldown if zero.
	Window     time.Duration
	DailyLimit *big.Int
	// PendingRetryAfter is the retry hint for a request arriving while another
	// one for the same address is in flight. DefaultPendingRetryAfter if zero,
	// never longer than Cooldown.
	PendingRetryAfter time.Duration
}

const DefaultPendingRetryAfter = 10 * time.Second

type entry struct {
	mu      sync.Mutex
	rec     Record
	pending *Reservation
}

// Reservation is the right to commit one disbursement for an address. At most
// one reservation per address is outstanding at any time.
type Reservation struct {
	Address common.Address
	Amount  *big.Int

	entry   *entry
	settled bool
}

// Ledger maps requester addresses to their records. The ledger mutex only
// guards the map; every record has its own lock, so requests for different
// addresses never wait on each other.
type Ledger struct {
	cfg Config

	mu      sync.Mutex
	entries map[common.Address]*entry
}

func NewLedger(cfg Config) *Ledger {
	if cfg.Window <= 0 {
		cfg.Window = cfg.Cooldown
	}
	if cfg.DailyLimit == nil {
		cfg.DailyLimit = new(big.Int)
	}
	if cfg.PendingRetryAfter <= 0 {
		cfg.PendingRetryAfter = DefaultPendingRetryAfter
	}
	if cfg.Cooldown > 0 && cfg.PendingRetryAfter > cfg.Cooldown {
		cfg.PendingRetryAfter = cfg.Cooldown
	}

	return &Ledger{
		cfg:     cfg,
		entries: make(map[common.Address]*entry),
	}
}

func (l *Ledger) entry(addr common.Address, now time.Time) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[addr]
	if !ok {
		e = &entry{rec: Record{
			Address:             addr,
			DailyTotalSent:      new(big.Int),
			DailyResetTimestamp: now,
		}}
		l.entries[addr] = e
	}

	return e
}

// window returns the quota total and reset time that apply at now, rolling
// the window over if it has expired.
func (l *Ledger) window(rec Record, now time.Time) (*big.Int, time.Time) {
	if !rec.DailyResetTimestamp.After(now) {
		return new(big.Int), now.Add(l.cfg.Window)
	}
	return rec.DailyTotalSent, rec.DailyResetTimestamp
}

// CheckAndReserve decides whether addr may receive amount at now. On success
// the returned reservation must be settled with Commit or Release. Denials are
// returned as *Denial.
func (l *Ledger) CheckAndReserve(addr common.Address, amount *big.Int, now time.Time) (*Reservation, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidAmount, "amount %v", amount)
	}

	e := l.entry(addr, now)

	e.mu.Lock()
	defer e.mu.Unlock()

	// A concurrent request for the same address is still in flight. It ends
	// in Commit, after which the cooldown answers the retry, or in Release.
	if e.pending != nil {
		return nil, &Denial{Reason: ErrCooldownActive, RetryAfter: l.cfg.PendingRetryAfter}
	}

	if last := e.rec.LastRequestTime; !last.IsZero() {
		if elapsed := now.Sub(last); elapsed < l.cfg.Cooldown {
			return nil, &Denial{Reason: ErrCooldownActive, RetryAfter: l.cfg.Cooldown - elapsed}
		}
	}

	total, resetAt := l.window(e.rec, now)
	e.rec.DailyTotalSent = total
	e.rec.DailyResetTimestamp = resetAt

	if new(big.Int).Add(total, amount).Cmp(l.cfg.DailyLimit) > 0 {
		return nil, &Denial{Reason: ErrDailyLimitExceeded, RetryAfter: resetAt.Sub(now)}
	}

	res := &Reservation{
		Address: addr,
		Amount:  new(big.Int).Set(amount),
		entry:   e,
	}
	e.pending = res

	return res, nil
}

// Commit charges a reservation to its address: the last request time becomes
// now and the amount is added to the current window's total.
func (l *Ledger) Commit(res *Reservation, now time.Time) error {
	e := res.entry

	e.mu.Lock()
	defer e.mu.Unlock()

	if res.settled || e.pending != res {
		return ErrReservationSettled
	}

	total, resetAt := l.window(e.rec, now)
	e.rec.LastRequestTime = now
	e.rec.DailyTotalSent = new(big.Int).Add(total, res.Amount)
	e.rec.DailyResetTimestamp = resetAt

	res.settled = true
	e.pending = nil

	return nil
}

// Release cancels a reservation without charging it. Releasing a settled
// reservation is a no-op.
func (l *Ledger) Release(res *Reservation) {
	e := res.entry

	e.mu.Lock()
	defer e.mu.Unlock()

	if res.settled || e.pending != res {
		return
	}

	res.settled = true
	e.pending = nil
}

// Record returns a copy of the record of addr.
func (l *Ledger) Record(addr common.Address) (Record, bool) {
	l.mu.Lock()
	e, ok := l.entries[addr]
	l.mu.Unlock()

	if !ok {
		return Record{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.rec.clone(), true
}

// Len returns the number of addresses ever seen.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
