package taskqueue

import (
	"github.com/ngicks/gommon/pkg/common"
	"github.com/robfig/cron/v3"
)

type Option = func(q *Queue) *Queue

func WithNowGetter(getNow common.NowGetter) Option {
	return func(q *Queue) *Queue {
		q.getNow = getNow
		return q
	}
}

func WithTimer(timer common.Timer) Option {
	return func(q *Queue) *Queue {
		q.timer = timer
		return q
	}
}

func WithLogger(logger Logger) Option {
	return func(q *Queue) *Queue {
		q.logger = logger
		return q
	}
}

// WithTrimThreshold makes the queue trim its storage after every n pops.
// n <= 0 disables trimming.
func WithTrimThreshold(n int) Option {
	return func(q *Queue) *Queue {
		q.trimThreshold = n
		return q
	}
}

// WithCapacity preallocates storage for n tasks.
func WithCapacity(n int) Option {
	return func(q *Queue) *Queue {
		q.capacity = n
		return q
	}
}

// WithScheduleParser replaces the parser PushCron uses.
// The default accepts standard 5 field expressions and descriptors.
func WithScheduleParser(parser cron.ScheduleParser) Option {
	return func(q *Queue) *Queue {
		q.parser = parser
		return q
	}
}
