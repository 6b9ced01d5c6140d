// Package provider фоновая синхронизация статусов заказов с вышестоящим SMM провайдером.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 15 * time.Second
	defaultInterval               = 30 * time.Second
	defaultLimitPerIteration uint = 500
	defaultChunkSize              = 100
	defaultSyncWorkers       uint = 4
)

// Processor периодически запрашивает у провайдера статусы незавершенных заказов и сохраняет их через
// сервисный слой.
type Processor struct {
	client            StatusClient
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	chunkSize         int
	syncWorkers       uint
	interval          time.Duration
}

func New(svs Servicer, client StatusClient, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "provider",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		chunkSize:         defaultChunkSize,
		syncWorkers:       defaultSyncWorkers,
		interval:          defaultInterval,
	}
}

// SetLimitPerIteration устанавливает кол-во заказов, обрабатываемых в одной итерации.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetChunkSize устанавливает кол-во id заказов в одном запросе status к провайдеру.
func (p *Processor) SetChunkSize(size int) *Processor {
	if size > 0 {
		p.chunkSize = size
	}
	return p
}

// SetSyncWorkers устанавливает кол-во воркеров, параллельно опрашивающих провайдера.
func (p *Processor) SetSyncWorkers(workers uint) *Processor {
	if workers > 0 {
		p.syncWorkers = workers
	}
	return p
}

// SetInterval устанавливает паузу между итерациями.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// Run запускает синхронизацию до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации запрашивает у сервисного слоя незавершенные заказы, давно не синхронизированные
//     первыми. Объем лимитируется через SetLimitPerIteration.
//  2. Id заказов режутся на пачки (SetChunkSize), пачки раздаются N воркерам (SetSyncWorkers), каждый
//     делает запрос status к провайдеру.
//  3. Полученные статусы сохраняются одной транзакцией, заказы без статуса отмечаются как
//     синхронизированные, чтобы не блокировать очередь.
//  4. Между итерациями пауза interval с разбросом 15%.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"chunkSize":         p.chunkSize,
		"syncWorkers":       p.syncWorkers,
		"interval":          p.interval,
	}).Info("Starting")

	for {
		if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoOrders) {
			p.l.WithError(err).Error("process error")
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(jitter(p.interval, 0.15, 0.15)):
		}
	}
}

// process выполняет одну итерацию: получение заказов, опрос провайдера и сохранение статусов.
// Возвращает ErrNoOrders, если синхронизировать нечего.
func (p *Processor) process(ctx context.Context) error {
	orders, ordersErr := p.produce(ctx)
	if ordersErr != nil {
		return fmt.Errorf("process: %w", ordersErr)
	}

	byProviderID := make(map[string]domain.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byProviderID[o.ProviderOrderID] = o
		ids = append(ids, o.ProviderOrderID)
	}

	results := p.runWorkers(ctx, chunk(ids, p.chunkSize))

	var (
		answered = make([]domain.Order, 0, len(orders))
		statuses = make(map[string]domain.ProviderOrderStatus, len(orders))
		failed   int
	)
	for _, result := range results {
		if result.Error != nil {
			failed++
			continue
		}
		for _, id := range result.OrderIDs {
			answered = append(answered, byProviderID[id])
			if st, ok := result.Statuses[id]; ok {
				statuses[id] = st
			}
		}
	}

	updates := service.StatusUpdatesFor(answered, statuses)
	if err := p.apply(ctx, updates); err != nil {
		return fmt.Errorf("process: %w", err)
	}
	if err := p.markSynced(ctx, answered, updates); err != nil {
		return fmt.Errorf("process: %w", err)
	}

	p.l.WithFields(logrus.Fields{
		"orders":       len(orders),
		"updated":      len(updates),
		"failedChunks": failed,
	}).Debug("iteration done")

	if failed > 0 && failed == len(results) {
		return fmt.Errorf("process: all %d status requests failed", failed)
	}
	return nil
}

func (p *Processor) apply(ctx context.Context, updates []repoargs.UpdateOrderStatus) error {
	if len(updates) == 0 {
		return nil
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if err := p.svs.ApplyStatuses(reqCtx, updates); err != nil {
		return fmt.Errorf("apply statuses: %s", err.Error())
	}
	return nil
}

// markSynced отмечает заказы, на которые провайдер ответил, но статуса не дал.
func (p *Processor) markSynced(ctx context.Context, answered []domain.Order, updates []repoargs.UpdateOrderStatus) error {
	updated := make(map[string]struct{}, len(updates))
	for _, u := range updates {
		updated[u.ID] = struct{}{}
	}
	var stale []string
	for _, o := range answered {
		if _, ok := updated[o.ID]; !ok {
			stale = append(stale, o.ID)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if err := p.svs.MarkSynced(reqCtx, stale); err != nil {
		return fmt.Errorf("mark synced: %s", err.Error())
	}
	return nil
}

// workerResult ответ провайдера на одну пачку id.
type workerResult struct {
	WorkerID uint
	OrderIDs []string
	Statuses map[string]domain.ProviderOrderStatus
	Error    error
}

// runWorkers раздает пачки воркерам и ожидает конца их работы (fan-out/fan-in).
func (p *Processor) runWorkers(ctx context.Context, chunks [][]string) []workerResult {
	var taskCh = make(chan []string, len(chunks))
	for _, c := range chunks {
		taskCh <- c
	}
	close(taskCh)

	workers := min(p.syncWorkers, uint(len(chunks))) // nolint:gosec

	wg := new(sync.WaitGroup)
	wg.Add(int(workers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(chunks))

	for i := range workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(chunks))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker": result.WorkerID,
			"orders": len(result.OrderIDs),
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("get statuses for orders")
		} else {
			l.WithField("statuses", len(result.Statuses)).Debug("Success")
		}
		results = append(results, *result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan []string,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, ids []string) *workerResult {
	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	defer cancel()

	statuses, err := p.client.Status(reqCtx, ids)
	return &workerResult{
		WorkerID: workerID,
		OrderIDs: ids,
		Statuses: statuses,
		Error:    err,
	}
}

// produce получает список заказов для синхронизации. Возвращает ErrNoOrders, если заказов нет.
func (p *Processor) produce(ctx context.Context) ([]domain.Order, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	orders, ordersErr := p.svs.ListForSync(produceCtx, p.limitPerIteration)
	if ordersErr != nil {
		return nil, fmt.Errorf("produce: %w", ordersErr)
	}

	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}
