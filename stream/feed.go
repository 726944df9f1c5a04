// Package stream applies DynamoDB stream events to live record trees.
//
// A Handler translates INSERT and MODIFY stream records into plain
// attribute payloads and routes them through Record.Set on whichever local
// tree tracks the entity, so remote writes flow through the same nested
// merge path as local ones.
package stream

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/loomworks/weft/record"
)

// managedKeys are store bookkeeping attributes never applied to records.
var managedKeys = []string{"record_type", "created_at", "updated_at"}

// Resolver locates the live root record tracking the given entity, or nil
// when no local tree does.
type Resolver func(typeName, id string) *record.Record

// Handler processes DynamoDB stream events into record updates.
type Handler struct {
	types   *record.Registry
	resolve Resolver
	logger  *slog.Logger
}

// NewHandler creates a new stream handler.
func NewHandler(types *record.Registry, resolve Resolver, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		types:   types,
		resolve: resolve,
		logger:  logger,
	}
}

// HandleChanges applies a batch of stream events. This function is designed
// to be used as an AWS Lambda handler.
func (h *Handler) HandleChanges(ctx context.Context, event events.DynamoDBEvent) error {
	for _, rec := range event.Records {
		if err := h.processRecord(rec); err != nil {
			h.logger.Error("failed to process record",
				"eventID", rec.EventID,
				"error", err,
			)
			return err // Will retry, eventually DLQ
		}
	}
	return nil
}

// processRecord applies a single stream record.
func (h *Handler) processRecord(rec events.DynamoDBEventRecord) error {
	if rec.EventName != "INSERT" && rec.EventName != "MODIFY" {
		return nil
	}

	image := rec.Change.NewImage
	typeName := stringAttr(image, "record_type")
	id := stringAttr(image, "id")
	if typeName == "" || id == "" {
		h.logger.Debug("skipping untyped stream record", "eventID", rec.EventID)
		return nil
	}

	typ, ok := h.types.Lookup(typeName)
	if !ok {
		h.logger.Warn("unknown record type", "type", typeName)
		return nil
	}

	root := h.resolve(typeName, id)
	if root == nil {
		return nil
	}

	attrs := attrsFromImage(image)
	for _, k := range managedKeys {
		delete(attrs, k)
	}
	if typ.Parse != nil {
		attrs = typ.Parse(attrs)
	}

	h.logger.Info("applying remote change",
		"type", typeName,
		"id", id,
	)
	root.Set(attrs)
	return nil
}
