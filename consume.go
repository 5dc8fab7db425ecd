package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"

	"github.com/muhammadolammi/resumeparser/internal/database"
	"github.com/muhammadolammi/resumeparser/internal/logger"
	"github.com/muhammadolammi/resumeparser/internal/metrics"
	"github.com/muhammadolammi/resumeparser/internal/pipeline"
	"github.com/muhammadolammi/resumeparser/internal/textextract"
)

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusFailed     = "failed"
)

var errMissingResumeID = errors.New("message has no resume_id")

func decodeJob(body []byte) (ResumeJob, error) {
	job := ResumeJob{}
	if err := json.Unmarshal(body, &job); err != nil {
		return job, err
	}
	if job.ResumeID == uuid.Nil {
		return job, errMissingResumeID
	}
	return job, nil
}

// ensureText returns the resume with its text filled in. Resumes that were
// never extracted are downloaded from R2 and their text stored.
func ensureText(ctx context.Context, resume database.Resume, workerConfig *WorkerConfig) (database.Resume, error) {
	if strings.TrimSpace(resume.TextExtracted) != "" {
		return resume, nil
	}

	client := r2Client(*workerConfig.AwsConfig, workerConfig.R2.AccountID)
	fileBytes, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, client, workerConfig.R2.Bucket, resume.ObjectKey)
	})
	if err != nil {
		return resume, fmt.Errorf("file download error: %w", err)
	}

	text := textextract.Extract(fileBytes, resume.OriginalFilename)
	if strings.TrimSpace(text) == "" {
		metrics.EmptyText()
		return resume, nil
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.UpdateResumeText(ctx, database.UpdateResumeTextParams{
			TextExtracted: text,
			ID:            resume.ID,
		})
	})
	if err != nil {
		return resume, fmt.Errorf("failed to store extracted text: %w", err)
	}

	resume.TextExtracted = text
	return resume, nil
}

// processResume runs one job end to end.
func processResume(ctx context.Context, job ResumeJob, workerConfig *WorkerConfig) error {
	resume, err := workerConfig.DB.GetResume(ctx, job.ResumeID)
	if err != nil {
		return fmt.Errorf("error getting resume: %w", err)
	}

	resume, err = ensureText(ctx, resume, workerConfig)
	if err != nil {
		return err
	}

	if err := workerConfig.Processor.Process(ctx, resume); err != nil {
		return err
	}

	counts, err := workerConfig.DB.CountResumeChildren(ctx, resume.ID)
	if err != nil {
		logger.Warn().Err(err).Str("resume_id", resume.ID.String()).Msg("failed to count stored rows")
		return nil
	}
	logger.Info().
		Str("resume_id", resume.ID.String()).
		Int64("experiences", counts.Experiences).
		Int64("educations", counts.Educations).
		Int64("skills", counts.Skills).
		Int64("languages", counts.Languages).
		Int64("certifications", counts.Certifications).
		Int64("projects", counts.Projects).
		Msg("stored rows for resume")
	return nil
}

func setStatus(ctx context.Context, workerConfig *WorkerConfig, job ResumeJob, status, message string) {
	err := workerConfig.DB.UpdateResumeStatus(ctx, database.UpdateResumeStatusParams{
		Status: status,
		ID:     job.ResumeID,
	})
	if err != nil {
		logger.Warn().Err(err).Str("resume_id", job.ResumeID.String()).Str("status", status).Msg("failed to update resume status")
	}

	if err := publishResumeUpdate(workerConfig.RabbitConn, newResumeUpdate(job.ResumeID, status, message)); err != nil {
		logger.Warn().Err(err).Str("resume_id", job.ResumeID.String()).Msg("failed to publish update")
	}
}

func worker(ctx context.Context, id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	log := logger.Logger.With().Int("worker", id+1).Logger()

	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("error dialling rabbitmq")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to rabbitmq channel")
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		resumesQueue, // queue name
		true,         // durable (survives broker restarts)
		false,        // auto-delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to declare queue")
	}

	msgs, err := ch.Consume(
		resumesQueue, // queue name
		"",           // consumer tag
		true,         // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error consuming rabbitmq message")
	}

	for {
		var msg amqp.Delivery
		var ok bool
		select {
		case <-ctx.Done():
			log.Info().Msg("worker stopping")
			return
		case msg, ok = <-msgs:
			if !ok {
				log.Warn().Msg("delivery channel closed")
				return
			}
		}

		// A started job runs to completion even if shutdown was requested.
		jobCtx := context.WithoutCancel(ctx)

		job, err := decodeJob(msg.Body)
		if err != nil {
			// Without a resume id there is no row to mark failed and no
			// routing key to publish the update on.
			log.Error().Err(err).Bytes("body", msg.Body).Msg("error unmarshalling message body")
			continue
		}
		log.Info().Str("resume_id", job.ResumeID.String()).Msg("processing resume")
		setStatus(jobCtx, workerConfig, job, statusProcessing, "extraction started")

		err = metrics.TrackJob(pipeline.ErrNoText, func() error {
			return processResume(jobCtx, job, workerConfig)
		})
		if err != nil {
			log.Error().Err(err).Str("resume_id", job.ResumeID.String()).Msg("error processing resume")
			message := "extraction failed"
			if errors.Is(err, pipeline.ErrNoText) {
				message = "no text could be extracted"
			}
			setStatus(jobCtx, workerConfig, job, statusFailed, message)
			continue
		}

		setStatus(jobCtx, workerConfig, job, statusCompleted, "extraction completed")
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(ctx context.Context, numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		logger.Info().Int("worker", i+1).Msg("worker started")
		go worker(ctx, i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
