package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ngicks/fastheap/taskqueue"
)

func main() {
	if err := _main(); err != nil {
		panic(err)
	}
}

type stdoutLogger struct{}

func (stdoutLogger) Info(v any, logValues ...string) {
	fmt.Println("info:", v, logValues)
}

func (stdoutLogger) Error(e error, logValues ...string) {
	fmt.Println("error:", e, logValues)
}

func _main() error {
	q := taskqueue.New(
		taskqueue.WithLogger(stdoutLogger{}),
		taskqueue.WithTrimThreshold(8),
	)

	now := time.Now()
	_, _ = q.Push(now, 0, 0)
	_, _ = q.Push(now.Add(time.Second), 0, 1)
	// Same time as 1 but higher priority, so it is popped first.
	_, _ = q.Push(now.Add(time.Second), 10, 2)
	_, _ = q.Push(now.Add(2*time.Second+500*time.Millisecond), 0, 3)
	cancelled, _ := q.Push(now.Add(3*time.Second), 0, 4)
	if _, err := q.PushCron("@every 2s", 0, "cron"); err != nil {
		return err
	}

	go func() {
		time.Sleep(2 * time.Second)
		_ = q.Cancel(cancelled.Id)
	}()

	ctx, cancel := context.WithDeadline(context.Background(), now.Add(7*time.Second))
	defer cancel()

	q.StartTimer()
	defer q.StopTimer()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("deadline reached, remaining:", q.Len())
			return nil
		case fired := <-q.TimerChannel():
			for _, task := range q.PopDue(fired) {
				fmt.Printf(
					"param: %v, scheduled: %s, diff to now: %s\n",
					task.Param,
					task.ScheduledAt.Format(time.RFC3339Nano),
					time.Since(task.ScheduledAt).String(),
				)
			}
		}
	}
}
