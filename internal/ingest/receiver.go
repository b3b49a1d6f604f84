package ingest

import (
	"context"
	"log/slog"
	"time"

	"showboat/internal/chunk"
	"showboat/internal/logging"
)

// Request carries one inbound command. Fields irrelevant to the command are
// ignored during dispatch.
type Request struct {
	DocumentID string
	Command    string
	Fields     chunk.Fields
}

// Receiver validates commands and dispatches them into store appends.
type Receiver struct {
	store  *chunk.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewReceiver constructs a Receiver over the given store.
func NewReceiver(store *chunk.Store, logger *slog.Logger) *Receiver {
	return &Receiver{
		store:  store,
		logger: logging.WithComponent(logger, "receiver"),
		now:    time.Now,
	}
}

// Receive validates req and appends exactly one chunk. The assigned id is
// deliberately not returned; the write path is fire-and-forget for clients.
func (r *Receiver) Receive(ctx context.Context, req Request) error {
	if req.DocumentID == "" || req.Command == "" {
		return ErrMissingFields
	}

	command, ok := chunk.ParseCommand(req.Command)
	if !ok {
		return &UnknownCommandError{Name: req.Command}
	}

	appended, err := r.store.Append(ctx, req.DocumentID, command, extractFields(command, req.Fields), r.now().UTC())
	if err != nil {
		return err
	}

	r.logger.Info("chunk appended",
		logging.String(logging.FieldDocumentID, appended.DocumentID),
		logging.Int64(logging.FieldChunkID, appended.ID),
		logging.String(logging.FieldCommand, string(appended.Command)),
	)
	return nil
}

// extractFields keeps only the fields the command defines so stray form
// values never leak into storage.
func extractFields(command chunk.Command, fields chunk.Fields) chunk.Fields {
	switch command {
	case chunk.CommandInit:
		return chunk.Fields{Title: fields.Title}
	case chunk.CommandNote:
		return chunk.Fields{Markdown: fields.Markdown}
	case chunk.CommandExec:
		return chunk.Fields{
			Language: fields.Language,
			Input:    fields.Input,
			Output:   fields.Output,
		}
	case chunk.CommandImage:
		return chunk.Fields{
			Filename: fields.Filename,
			Alt:      fields.Alt,
			Image:    fields.Image,
		}
	default:
		return chunk.Fields{}
	}
}
