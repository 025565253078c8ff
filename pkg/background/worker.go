package background

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"console/pkg/logger"
	"golang.org/x/sync/errgroup"
)

var ErrAlreadyStarted = errors.New("background worker already started")

// Task определяет интерфейс для фоновых задач, которые могут выполняться периодически.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи. TTL <= 0 отключает задачу.
	TTL() time.Duration

	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Option func(*Worker)

// WithWarmup включает синхронный прогон задач в Start до запуска тикеров.
// Ошибки и паники прогрева логируются, периодический запуск не отменяют.
// Отключённые задачи (TTL <= 0) не прогреваются.
func WithWarmup() Option {
	return func(w *Worker) {
		w.warmup = true
	}
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log    handlerLogger
	tasks  []Task
	warmup bool
	group  *errgroup.Group
}

func New(log handlerLogger, tasks []Task, opts ...Option) *Worker {
	w := &Worker{
		log:   log,
		tasks: tasks,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start запускает периодическое выполнение задач до отмены ctx.
func (w *Worker) Start(ctx context.Context) error {
	if w.group != nil {
		return ErrAlreadyStarted
	}

	if w.warmup {
		w.warmupTasks(ctx)
	}

	w.group = &errgroup.Group{}
	for i := 0; i < len(w.tasks); i++ {
		task := w.tasks[i]
		w.group.Go(func() error {
			w.runBackgroundTask(ctx, task)
			return nil
		})
	}
	return nil
}

// Wait блокируется до остановки всех задач.
func (w *Worker) Wait() error {
	if w.group == nil {
		return nil
	}
	return w.group.Wait()
}

func (w *Worker) warmupTasks(ctx context.Context) {
	var initGroup errgroup.Group
	for i := 0; i < len(w.tasks); i++ {
		task := w.tasks[i]
		if task.TTL() <= 0 {
			continue
		}
		initGroup.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					w.log.Error("Task panic during warmup",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					)
				}
			}()
			w.log.Info("Warming up",
				logger.NewField("task", task.Info()),
			)
			if err := task.Do(ctx); err != nil {
				w.log.Warn("Task warmup failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
			return nil
		})
	}
	_ = initGroup.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
