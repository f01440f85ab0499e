package session

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/keyfold/internal/config"
	"github.com/dgallion1/keyfold/internal/parser"
)

// Loader parses and indexes uploaded documents on a bounded worker pool.
// Parallelism is across sessions only; a single session is always loaded
// by exactly one worker.
type Loader struct {
	sessions *Store
	queue    chan *Session
	cfg      config.Config
	log      *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewLoader(cfg config.Config, sessions *Store, log *slog.Logger) *Loader {
	return &Loader{
		sessions: sessions,
		queue:    make(chan *Session, cfg.MaxQueueSize),
		cfg:      cfg,
		log:      log,
	}
}

// Start launches worker goroutines and the store cleanup ticker.
func (l *Loader) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	for i := 0; i < l.cfg.WorkerCount; i++ {
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case sess, ok := <-l.queue:
					if !ok {
						return
					}
					l.load(sess)
				}
			}
		}()
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				l.sessions.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pool.
func (l *Loader) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	close(l.queue)
	l.wg.Wait()
}

// Submit queues a new session for loading.
func (l *Loader) Submit(sess *Session) error {
	l.sessions.Put(sess)
	select {
	case l.queue <- sess:
		return nil
	default:
		sess.SetStatus(StatusFailed)
		sess.AddError("load queue is full")
		return fmt.Errorf("load queue is full (%d)", l.cfg.MaxQueueSize)
	}
}

// load runs the full load pipeline for one session: parse, lay out the
// display text, and build the keyword universe.
func (l *Loader) load(sess *Session) {
	log := l.log.With("session_id", sess.ID, "doc_id", sess.DocID, "filename", sess.Filename)

	sess.SetStatus(StatusParsing)
	p, err := parser.ForFile(sess.Filename, l.cfg.KeysAttr)
	if err != nil {
		log.Error("unsupported format", "error", err)
		sess.AddError(err.Error())
		sess.SetStatus(StatusFailed)
		return
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = l.cfg.PDFFallbackPdftotext
	}

	doc, err := p.Parse(bytes.NewReader(sess.FileData()), sess.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		sess.AddError(fmt.Sprintf("parse: %s", err))
		sess.SetStatus(StatusFailed)
		return
	}

	sess.SetStatus(StatusIndexing)
	doc.Layout()
	sess.SetDocument(doc)
	sess.SetStatus(StatusReady)

	// Warm the keyword universe so the first keywords request is instant.
	if all, _, _, err := sess.Keywords(); err == nil {
		log.Info("document ready", "keywords", len(all))
	}
}
