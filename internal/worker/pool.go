package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/model"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueUserLogs = "jobs:user_logs"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// UserLogJob records one login event. Written asynchronously so a slow
// insert never delays the login response.
type UserLogJob struct {
	UsuarioID string `json:"usuario_id"`
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueUserLog pushes a session-log job to Redis. Failures are logged
// and swallowed: the audit trail is best-effort, the login is not.
func (d *Dispatcher) EnqueueUserLog(ctx context.Context, payload UserLogJob) {
	if err := d.enqueue(ctx, QueueUserLogs, "user_log", payload); err != nil {
		log.Error().Err(err).Msg("no se pudo encolar el log de sesión")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes the job queues and persists their effects.
type Pool struct {
	rdb      *redis.Client
	userLogs repository.UserLogRepository
}

func NewPool(rdb *redis.Client, userLogs repository.UserLogRepository) *Pool {
	return &Pool{rdb: rdb, userLogs: userLogs}
}

// Start launches numWorkers goroutines consuming the queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool iniciado con %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d detenido", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, QueueUserLogs).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.process(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) process(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("job ilegible")
		return
	}
	switch job.Type {
	case "user_log":
		p.processUserLog(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Msg("tipo de job desconocido")
	}
}

func (p *Pool) processUserLog(ctx context.Context, payload json.RawMessage) {
	var j UserLogJob
	if err := json.Unmarshal(payload, &j); err != nil {
		log.Error().Err(err).Msg("payload de user_log ilegible")
		return
	}
	usuarioID, err := uuid.Parse(j.UsuarioID)
	if err != nil {
		log.Error().Str("usuario_id", j.UsuarioID).Msg("usuario_id inválido en user_log")
		return
	}
	entry := &model.UserLog{
		UsuarioID: usuarioID,
		UserAgent: j.UserAgent,
		IPAddress: j.IPAddress,
	}
	if err := p.userLogs.Create(ctx, entry); err != nil {
		log.Error().Err(err).Msg("no se pudo persistir el log de sesión")
	}
}
