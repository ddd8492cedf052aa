// Package taskqueue is an in-process scheduling queue built on heap.
//
// Tasks are ordered by ScheduledAt, then by higher Priority.
// Unlike heap.Heap, Queue is safe for concurrent use.
package taskqueue

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ngicks/fastheap/heap"
	"github.com/ngicks/gommon/pkg/common"
	"github.com/robfig/cron/v3"
)

type Task struct {
	Id          string
	ScheduledAt time.Time
	// Higher is popped first among tasks scheduled at the same time.
	Priority int
	Param    any
	// Cron expression of a recurring task. Empty for one-shot tasks.
	Schedule  string
	CreatedAt time.Time
}

type taskKey struct {
	at       time.Time
	priority int
}

func lessKey(i, j taskKey) bool {
	if !i.at.Equal(j.at) {
		return i.at.Before(j.at)
	}
	return i.priority > j.priority
}

type wrappedTask struct {
	Task
	schedule cron.Schedule
}

func (w *wrappedTask) key() taskKey {
	return taskKey{at: w.ScheduledAt, priority: w.Priority}
}

type Queue struct {
	mu sync.RWMutex

	heap  *heap.Identity[*wrappedTask, taskKey]
	tasks map[string]*wrappedTask

	getNow         common.NowGetter
	timer          common.Timer
	isTimerStarted bool
	logger         Logger
	parser         cron.ScheduleParser

	capacity      int
	trimThreshold int
	popCount      int
}

func New(options ...Option) *Queue {
	q := &Queue{
		tasks:  make(map[string]*wrappedTask),
		getNow: common.NowGetterReal{},
		timer:  common.NewTimerReal(),
		logger: nopLogger{},
		parser: cron.NewParser(
			cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
		),
	}
	for _, opt := range options {
		q = opt(q)
	}
	q.heap = heap.NewIdentity[*wrappedTask, taskKey](lessKey, heap.WithCapacity(q.capacity))
	return q
}

// Push schedules a one-shot task.
func (q *Queue) Push(scheduledAt time.Time, priority int, param any) (Task, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	wrapped := &wrappedTask{
		Task: Task{
			Id:          uuid.NewString(),
			ScheduledAt: scheduledAt,
			Priority:    priority,
			Param:       param,
			CreatedAt:   q.getNow.GetNow(),
		},
	}
	q.push(wrapped)
	return wrapped.Task, nil
}

// PushCron schedules a recurring task.
// expr is a standard cron expression or a descriptor like "@every 1h",
// unless another parser is set by WithScheduleParser.
// The task is first scheduled at the next activation after now,
// and every time it is popped it is pushed back at its next activation.
func (q *Queue) PushCron(expr string, priority int, param any) (Task, error) {
	schedule, err := q.parser.Parse(expr)
	if err != nil {
		return Task{}, &QueueError{Kind: InvalidSchedule, Raw: err}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.getNow.GetNow()
	next := schedule.Next(now)
	if next.IsZero() {
		return Task{}, &QueueError{Kind: InvalidSchedule}
	}

	wrapped := &wrappedTask{
		Task: Task{
			Id:          uuid.NewString(),
			ScheduledAt: next,
			Priority:    priority,
			Param:       param,
			Schedule:    expr,
			CreatedAt:   now,
		},
		schedule: schedule,
	}
	q.push(wrapped)
	return wrapped.Task, nil
}

func (q *Queue) push(wrapped *wrappedTask) {
	ent := q.heap.Push(wrapped, wrapped.key())
	q.tasks[wrapped.Id] = wrapped
	if ent.Index() == 0 {
		q.resetTimer()
	}
}

// Cancel removes the task. A recurring task is not rescheduled afterwards.
func (q *Queue) Cancel(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	wrapped, ok := q.tasks[id]
	if !ok {
		return &QueueError{Id: id, Kind: IdNotFound}
	}

	top, _ := q.heap.Peek()
	wasTop := top != nil && top.Value() == wrapped

	q.heap.RemoveIdentity(wrapped)
	delete(q.tasks, id)

	if wasTop {
		q.resetTimer()
	}
	return nil
}

func (q *Queue) Get(id string) (Task, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	wrapped, ok := q.tasks[id]
	if !ok {
		return Task{}, &QueueError{Id: id, Kind: IdNotFound}
	}
	return wrapped.Task, nil
}

func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.heap.Len()
}

// Next returns the earliest task without removing it.
func (q *Queue) Next() (Task, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	next, err := q.heap.Peek()
	if err != nil {
		return Task{}, &QueueError{Kind: Empty, Raw: err}
	}
	return next.Value().Task, nil
}

// PopDue removes and returns, in order, every task scheduled at or before now.
// Recurring tasks are pushed back at their next activation after now,
// keeping their id.
func (q *Queue) PopDue(now time.Time) []Task {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []Task
	var recurring []*wrappedTask
	for {
		top, err := q.heap.Peek()
		if err != nil || top.Value().ScheduledAt.After(now) {
			break
		}
		_, _ = q.heap.Pop()
		wrapped := top.Value()
		delete(q.tasks, wrapped.Id)
		due = append(due, wrapped.Task)

		if wrapped.schedule != nil {
			recurring = append(recurring, wrapped)
		}
		q.countPop()
	}

	for _, wrapped := range recurring {
		next := wrapped.schedule.Next(now)
		if next.IsZero() {
			q.logger.Error(
				&QueueError{Id: wrapped.Id, Kind: InvalidSchedule},
				"id", wrapped.Id, "schedule", wrapped.Schedule,
			)
			continue
		}
		rescheduled := &wrappedTask{Task: wrapped.Task, schedule: wrapped.schedule}
		rescheduled.ScheduledAt = next
		q.heap.Push(rescheduled, rescheduled.key())
		q.tasks[rescheduled.Id] = rescheduled
		q.logger.Info(
			"rescheduled",
			"id", rescheduled.Id, "scheduled_at", next.Format(time.RFC3339Nano),
		)
	}

	// re-arm even when nothing was due; the timer may have fired for a task cancelled since.
	q.resetTimer()
	return due
}

func (q *Queue) countPop() {
	if q.trimThreshold <= 0 {
		return
	}
	q.popCount++
	if q.popCount >= q.trimThreshold {
		q.popCount = 0
		q.heap.Trim()
		q.logger.Info("trimmed", "len", strconv.Itoa(q.heap.Len()))
	}
}

// StartTimer arms the timer for the earliest task and keeps it armed
// as the queue changes.
func (q *Queue) StartTimer() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.isTimerStarted = true

	q.resetTimer()
}

func (q *Queue) resetTimer() {
	if !q.isTimerStarted {
		return
	}
	if peeked, err := q.heap.Peek(); err == nil {
		q.timer.Reset(peeked.Value().ScheduledAt.Sub(q.getNow.GetNow()))
	} else {
		q.stopTimer()
	}
}

// stopTimer stops the timer and drops a tick that fired but was not received,
// so that TimerChannel never delivers a stale one.
func (q *Queue) stopTimer() {
	if !q.timer.Stop() {
		select {
		case <-q.timer.C():
		default:
		}
	}
}

// StopTimer stops the timer. Queue changes no longer arm it until StartTimer.
func (q *Queue) StopTimer() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.isTimerStarted = false

	q.stopTimer()
}

// TimerChannel fires when the earliest task is due while the timer is started.
func (q *Queue) TimerChannel() <-chan time.Time {
	return q.timer.C()
}
