package save

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/boardkeeper/internal/models"
)

// ErrClosed возвращается при обращении к сервису после Close
var ErrClosed = errors.New("save service is closed")

// Default-значения конфигурации сервиса сохранения
const (
	DefaultDebounceInterval = 1 * time.Second
	DefaultRetryBase        = 1 * time.Second
	DefaultMaxRetries       = 3
	DefaultEmptyFlushDelay  = 300 * time.Millisecond
)

// Config настраивает тайминги сервиса сохранения.
// Нулевые поля заменяются default-значениями.
type Config struct {
	// DebounceInterval — пауза тишины после последнего изменения,
	// по истечении которой запускается фоновое сохранение
	DebounceInterval time.Duration

	// RetryBase — базовая задержка экспоненциального backoff
	// (RetryBase, 2·RetryBase, 4·RetryBase, ...)
	RetryBase time.Duration

	// EmptyFlushDelay — длительность искусственного перехода
	// saving → saved при flush с пустым pending patch
	EmptyFlushDelay time.Duration

	// MaxRetries — максимум повторов фонового сохранения
	// (итого 1 + MaxRetries попыток)
	MaxRetries uint64
}

func (c Config) withDefaults() Config {
	if c.DebounceInterval <= 0 {
		c.DebounceInterval = DefaultDebounceInterval
	}
	if c.RetryBase <= 0 {
		c.RetryBase = DefaultRetryBase
	}
	if c.EmptyFlushDelay <= 0 {
		c.EmptyFlushDelay = DefaultEmptyFlushDelay
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	return c
}

// Service определяет интерфейс сервиса сохранения доски.
//
// Один инстанс владеет ровно одной активной доской. Все изменения доски
// проходят через QueueChange/Flush; сервис превращает поток локальных
// мутаций в упорядоченную последовательность PATCH-запросов с debounce,
// повторами и single-flight дисциплиной.
type Service interface {
	// InitializeState задаёт доску, которой владеет сервис, и заполняет
	// цель отката (LastSaved) её текущими значениями. Вызывается до
	// первого QueueChange.
	InitializeState(board *models.Board)

	// QueueChange вливает частичный patch в pending-изменения и
	// перевзводит debounce-таймер. Пустой patch — сигнал активности:
	// таймер перевзводится, изменения не добавляются.
	// После Close возвращает ErrClosed.
	QueueChange(patch Patch) error

	// Flush немедленно сохраняет pending-изменения без повторов
	// (fail-fast) и возвращает серверное состояние доски. При пустом
	// pending выполняет короткий переход saving → saved без похода в
	// сеть и возвращает (nil, nil). Если сохранение уже в полёте,
	// перевзводит debounce-таймер и возвращает (nil, nil).
	Flush(ctx context.Context) (*models.Board, error)

	// Subscribe регистрирует подписчика и немедленно синхронно вызывает
	// его с текущим состоянием. Возвращает функцию отписки.
	Subscribe(l Listener) (unsubscribe func())

	// State возвращает текущее состояние сохранения.
	State() State

	// Close останавливает таймеры, отменяет попытку в полёте и снимает
	// подписчиков. Pending-изменения НЕ сохраняются — известный риск
	// потери при быстрой навигации, унаследованный от прежнего
	// поведения продукта.
	Close() error
}

type subscriber struct {
	fn Listener
	id int
}

// notification — снимок состояния и адресаты, зафиксированные в момент
// перехода. Очередь сохраняет порядок переходов при конкурирующих
// горутинах (таймер, фоновый повтор, вызовы пользователя).
type notification struct {
	st   State
	subs []Listener
}

// service реализует Service. Всё состояние под одним мьютексом:
// single-flight обеспечивается флагом inFlight, проверяемым под mu.
type service struct {
	lastSavedAt   time.Time
	transport     Transport
	logger        *slog.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	err           error
	pending       Patch
	lastSaved     Patch
	debounce      *time.Timer
	boardID       string
	status        Status
	subs          []*subscriber
	notifications []notification
	cfg           Config
	mu            sync.Mutex
	nextSubID     int
	inFlight      bool
	notifying     bool
	closed        bool
}

// NewService creates a new save service for a single board.
func NewService(transport Transport, logger *slog.Logger, cfg Config) Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &service{
		transport: transport,
		logger:    logger,
		cfg:       cfg.withDefaults(),
		ctx:       ctx,
		cancel:    cancel,
		pending:   Patch{},
		lastSaved: Patch{},
		status:    StatusIdle,
	}
}

// armDebounceLocked перевзводит debounce-таймер: отменяет прежний и
// взводит новый. Таймер срабатывает только если в течение
// DebounceInterval не было новых вызовов.
func (s *service) armDebounceLocked() {
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.cfg.DebounceInterval, s.onDebounce)
}

func (s *service) stopDebounceLocked() {
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
}

func (s *service) InitializeState(board *models.Board) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.boardID = board.ID
	s.pending = Patch{}
	s.lastSaved = Patch{
		"title":  board.Title,
		"slug":   board.Slug,
		"config": board.Config,
		"blocks": board.Blocks,
	}
	s.status = StatusIdle
	s.err = nil
	s.stopDebounceLocked()
	s.enqueueNotifyLocked()
	s.mu.Unlock()

	s.notify()
}

func (s *service) QueueChange(patch Patch) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}

	for k, v := range patch {
		s.pending[k] = v
	}

	// свежие изменения сбрасывают финальные статусы обратно к idle
	if s.status == StatusSaved || s.status == StatusError {
		s.status = StatusIdle
		s.err = nil
	}

	s.armDebounceLocked()
	s.enqueueNotifyLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *service) Flush(ctx context.Context) (*models.Board, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	s.stopDebounceLocked()

	if s.inFlight {
		// single-flight: попытка уже в полёте, переоценим после неё
		s.armDebounceLocked()
		s.mu.Unlock()
		return nil, nil
	}

	empty := len(s.pending) == 0
	s.inFlight = true
	s.status = StatusSaving
	s.err = nil
	s.enqueueNotifyLocked()
	s.mu.Unlock()

	s.notify()

	if empty {
		// Нечего сохранять, но кнопка Save не должна выглядеть мёртвой:
		// короткая пауза и saving → saved без похода в сеть.
		select {
		case <-time.After(s.cfg.EmptyFlushDelay):
		case <-ctx.Done():
		}
		s.settle(nil)
		return nil, nil
	}

	// foreground: ровно одна попытка, ошибка уходит вызывающему
	board, err := s.attempt(ctx)
	s.settle(err)
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (s *service) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs = append(s.subs, &subscriber{id: id, fn: l})
	st := s.stateLocked()
	s.mu.Unlock()

	// немедленный replay текущего состояния новому подписчику
	l(st)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.stopDebounceLocked()
	s.subs = nil
	// недоставленные уведомления после Close не доставляются
	s.notifications = nil
	s.mu.Unlock()

	// отменяет retry-паузы и транспортный запрос в полёте
	s.cancel()
	return nil
}

// onDebounce вызывается из таймерной горутины по истечении паузы тишины
func (s *service) onDebounce() {
	s.mu.Lock()
	if s.closed || len(s.pending) == 0 {
		// пустой pending: таймер был только сигналом активности
		s.mu.Unlock()
		return
	}
	if s.inFlight {
		// single-flight: не стартуем вторую попытку, переоценим позже
		s.armDebounceLocked()
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.status = StatusSaving
	s.err = nil
	boardID := s.boardID
	s.enqueueNotifyLocked()
	s.mu.Unlock()

	s.notify()
	s.backgroundSave(boardID)
}

// backgroundSave выполняет фоновую попытку сохранения с экспоненциальным
// backoff. Статус остаётся saving на протяжении всей цепочки повторов;
// error выставляется только после исчерпания повторов.
func (s *service) backgroundSave(boardID string) {
	backoff := retry.WithMaxRetries(s.cfg.MaxRetries, retry.NewExponential(s.cfg.RetryBase))

	attempts := 0
	err := retry.Do(s.ctx, backoff, func(ctx context.Context) error {
		attempts++
		if _, attemptErr := s.attempt(ctx); attemptErr != nil {
			s.logger.Warn("background save attempt failed",
				"board_id", boardID,
				"attempt", attempts,
				"error", attemptErr)
			return retry.RetryableError(attemptErr)
		}
		return nil
	})

	s.settle(err)

	if err != nil {
		s.logger.Error("background save failed, retries exhausted",
			"board_id", boardID,
			"attempts", attempts,
			"error", err)
	}
}

// attempt снимает снимок pending patch и отправляет его транспортом.
// Инвариант: на инстанс существует не более одного снимка в полёте
// (гарантируется флагом inFlight у вызывающих). При ошибке снимок
// возвращается в pending так, что более свежие правки побеждают.
func (s *service) attempt(ctx context.Context) (*models.Board, error) {
	s.mu.Lock()
	snapshot := s.pending.Clone()
	s.pending = Patch{}
	boardID := s.boardID
	s.mu.Unlock()

	board, err := s.transport.UpdateBoard(ctx, boardID, snapshot)
	if err != nil {
		s.mu.Lock()
		s.pending = merge(snapshot, s.pending)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.lastSaved = merge(s.lastSaved, snapshot)
	s.mu.Unlock()
	return board, nil
}

// settle завершает попытку (включая цепочку повторов): снимает
// single-flight флаг, выставляет финальный статус и уведомляет
// подписчиков. Правки, накопившиеся за время попытки, уходят в
// следующий debounce-цикл, а не сохраняются синхронно.
func (s *service) settle(err error) {
	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.status = StatusError
		s.err = err
	} else {
		s.status = StatusSaved
		s.lastSavedAt = time.Now()
		s.err = nil
		if len(s.pending) > 0 && !s.closed {
			s.armDebounceLocked()
		}
	}
	s.enqueueNotifyLocked()
	s.mu.Unlock()

	s.notify()
}

func (s *service) stateLocked() State {
	return State{
		Status:            s.status,
		LastSavedAt:       s.lastSavedAt,
		Err:               s.err,
		HasUnsavedChanges: len(s.pending) > 0,
		LastSaved:         s.lastSaved.Clone(),
	}
}

func (s *service) listenersLocked() []Listener {
	fns := make([]Listener, 0, len(s.subs))
	for _, sub := range s.subs {
		fns = append(fns, sub.fn)
	}
	return fns
}

// enqueueNotifyLocked фиксирует текущее состояние и адресатов в очереди
// уведомлений. Вызывается под mu в точке перехода — очередь хранит
// переходы в том порядке, в котором они произошли.
func (s *service) enqueueNotifyLocked() {
	s.notifications = append(s.notifications, notification{
		st:   s.stateLocked(),
		subs: s.listenersLocked(),
	})
}

// notify разгребает очередь уведомлений. Разгребает ровно одна горутина;
// остальные просто оставляют свои уведомления в очереди. Подписчики
// вызываются без mu и могут повторно обращаться к сервису: вложенный
// вызов notify вернется сразу, а его уведомление доставит активная
// горутина после текущего.
func (s *service) notify() {
	s.mu.Lock()
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	for len(s.notifications) > 0 {
		n := s.notifications[0]
		s.notifications = s.notifications[1:]
		s.mu.Unlock()

		for _, fn := range n.subs {
			fn(n.st)
		}

		s.mu.Lock()
	}
	s.notifying = false
	s.mu.Unlock()
}
